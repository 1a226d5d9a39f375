package ir

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of object keys addressing a node from the
// document root. The empty (nil) path denotes the root itself.
//
// In text form segments are joined with dots. A segment is either a bare
// identifier of letters, digits and underscores, or arbitrary text
// wrapped in double quotes; quoted segments may contain literal dots:
//
//	person.name
//	upgrade."max. speed".value
type Path []string

// ParsePath parses the text form of a path. The empty string yields the
// empty (root) path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var (
		res      Path
		seg      strings.Builder
		inQuotes bool
		quoted   bool
	)
	flush := func() error {
		v := seg.String()
		if quoted {
			res = append(res, v)
		} else {
			if !BareSegment(v) {
				return fmt.Errorf("%w: %q in path %q", ErrInvalidKey, v, s)
			}
			res = append(res, v)
		}
		seg.Reset()
		quoted = false
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			quoted = true
		case c == '.' && !inQuotes:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			seg.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("%w: unterminated quote in path %q", ErrInvalidKey, s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return res, nil
}

// ValidPathText reports whether s parses as a path. It is what header
// recognition uses: a line ending in ":" is only a header when the text
// before the colon is a valid path.
func ValidPathText(s string) bool {
	_, err := ParsePath(s)
	return err == nil
}

// BareSegment reports whether v can be written without quotes.
func BareSegment(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		if BareSegment(seg) {
			parts[i] = seg
		} else {
			parts[i] = `"` + seg + `"`
		}
	}
	return strings.Join(parts, ".")
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Child returns p extended by one segment. The receiver is not modified.
func (p Path) Child(seg string) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = seg
	return res
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
