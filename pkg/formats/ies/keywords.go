package ies

import "strings"

// Keyword is one [KEY] value entry. Free-form text lines in the header
// (common in LM-63-1986 files) are kept with an empty Key.
type Keyword struct {
	Key   string
	Value string
}

// Keywords is the ordered header block. Order is kept so that files
// re-serialize with their keywords where they were.
type Keywords []Keyword

// Get returns the value of the first entry named key.
func (k Keywords) Get(key string) (string, bool) {
	for _, kw := range k {
		if kw.Key == key {
			return kw.Value, true
		}
	}
	return "", false
}

// Len returns the number of named keywords, ignoring free-form lines.
func (k Keywords) Len() int {
	n := 0
	for _, kw := range k {
		if kw.Key != "" {
			n++
		}
	}
	return n
}

// Set replaces the first entry named key or appends a new one.
func (k *Keywords) Set(key, value string) {
	for i := range *k {
		if (*k)[i].Key == key {
			(*k)[i].Value = value
			return
		}
	}
	*k = append(*k, Keyword{Key: key, Value: value})
}

// add records one header line. [MORE] continues the previous keyword,
// joining with a single space.
func (k *Keywords) add(line string) {
	key, value, ok := splitKeyword(line)
	if !ok {
		*k = append(*k, Keyword{Value: line})
		return
	}
	if key == "MORE" {
		for i := len(*k) - 1; i >= 0; i-- {
			if (*k)[i].Key != "" {
				(*k)[i].Value += " " + value
				return
			}
		}
	}
	*k = append(*k, Keyword{Key: key, Value: value})
}

// splitKeyword parses "[KEY] value".
func splitKeyword(line string) (key, value string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.IndexByte(line, ']')
	if end < 2 {
		return "", "", false
	}
	return line[1:end], strings.TrimSpace(line[end+1:]), true
}

func (k Keywords) lines() []string {
	out := make([]string, 0, len(k))
	for _, kw := range k {
		if kw.Key == "" {
			out = append(out, kw.Value)
			continue
		}
		out = append(out, strings.TrimSpace("["+kw.Key+"] "+kw.Value))
	}
	return out
}
