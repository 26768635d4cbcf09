// Package formats dispatches photometric files to their format package.
//
// A file's format is chosen by extension: .ies files are read by package
// ies, .ldt and .eul files by package eulumdat. Matching ignores case.
//
//	web, err := formats.FromFile("downlight.ldt").Build()
//
// Any other extension fails with an UNSUPPORTED_EXTENSION error.
package formats
