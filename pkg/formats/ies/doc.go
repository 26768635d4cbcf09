// Package ies reads and writes IES LM-63 photometric files.
//
// # File Layout
//
// An IES file opens with an optional standard tag (IESNA91,
// IESNA:LM-63-1995, IESNA:LM-63-2002; untagged files are LM-63-1986),
// followed by [KEYWORD] lines up to a TILT= line. [MORE] continues the
// previous keyword. TILT=INCLUDE embeds a four-part table; any value other
// than NONE or INCLUDE names an external tilt file.
//
// Everything after the TILT section is one stream of values separated by
// whitespace or commas. Values are consumed by position, so a record may
// wrap across lines: thirteen scalar fields, then the vertical angles, the
// horizontal angles, and the candela values in one block per horizontal
// angle.
//
// # Usage
//
//	doc, err := ies.ParseFile("downlight.ies")
//	if err != nil {
//	    return err
//	}
//	web := doc.Web()
//	fmt.Println(web.TotalIntensity())
//
// [Format] adapts the package to the photweb Reader and Writer contracts.
package ies
