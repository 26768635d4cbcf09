package ies

// Standard identifies the LM-63 revision a file declares on its first line.
type Standard int

const (
	LM63_1986 Standard = iota
	LM63_1991
	LM63_1995
	LM63_2002
)

var standardTags = map[Standard]string{
	LM63_1991: "IESNA91",
	LM63_1995: "IESNA:LM-63-1995",
	LM63_2002: "IESNA:LM-63-2002",
}

// StandardFromTag maps a first-line tag to a revision. The second return
// value is false for anything unrecognized, which is read as LM-63-1986.
func StandardFromTag(tag string) (Standard, bool) {
	for s, t := range standardTags {
		if t == tag {
			return s, true
		}
	}
	return LM63_1986, false
}

// Tag returns the first-line identifier; LM-63-1986 files carry none.
func (s Standard) Tag() string { return standardTags[s] }

// String returns a readable revision name.
func (s Standard) String() string {
	switch s {
	case LM63_1991:
		return "LM-63-1991"
	case LM63_1995:
		return "LM-63-1995"
	case LM63_2002:
		return "LM-63-2002"
	default:
		return "LM-63-1986"
	}
}
