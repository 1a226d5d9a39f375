package token

import "strings"

// SplitConstraint splits a raw value segment into the value text and the
// opaque constraint that trails it, if any. A constraint is the text
// between the last "(" and a ")" at the segment's end, where the "(" is
// preceded by whitespace:
//
//	age = 54 (int, >= 0)      value "54", constraint "int, >= 0"
//	note = see figure (2)     value "see figure", constraint "2"
//	f = call(x)               no constraint: "(" not preceded by space
//
// When no constraint is found the whole (trimmed) segment is the value.
func SplitConstraint(s string) (value, constraint string) {
	t := strings.TrimSpace(s)
	if !strings.HasSuffix(t, ")") {
		return t, ""
	}
	open := strings.LastIndex(t, "(")
	if open <= 0 {
		return t, ""
	}
	if pre := t[open-1]; pre != ' ' && pre != '\t' {
		return t, ""
	}
	c := strings.TrimSpace(t[open+1 : len(t)-1])
	if c == "" {
		return t, ""
	}
	return strings.TrimRight(t[:open], " \t"), c
}
