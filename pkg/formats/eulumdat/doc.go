// Package eulumdat reads and writes EULUMDAT (.ldt) photometric files.
//
// EULUMDAT is strictly one value per line. Lines 1–26 are fixed header
// fields; they are followed by six sections of n lamp set values, ten
// direct ratios, Mc C-angles, Ng G-angles and the intensities of the
// C-planes the symmetry indicator says are stored (see [Document.Mc1] and
// [Document.Mc2]).
//
// [Document.Web] rebuilds the full ring of C-planes from the stored ones.
package eulumdat
