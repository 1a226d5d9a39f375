package token

import (
	"strings"

	"github.com/adf-format/go-adf/ir"
)

// lexState is the only state carried across lines, reset per call.
type lexState struct {
	inMultiline bool
	quoteLen    int
}

// Tokenize converts ADF text into its token stream, one token per source
// line, appending to dst. The only possible error is an unterminated
// multiline block at end of input.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	ls := &lexState{}
	lines := splitLines(src)
	for i, line := range lines {
		dst = append(dst, ls.line(line, Pos{Line: i + 1}))
	}
	if ls.inMultiline {
		return nil, NewTokenizeErr(ErrUnterminatedMultiline, Pos{Line: len(lines)})
	}
	return dst, nil
}

func (ls *lexState) line(line string, pos Pos) Token {
	if ls.inMultiline {
		return ls.continuation(line, pos)
	}
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return Token{Type: TBlank, Pos: pos, Raw: line}
	}
	if tok, ok := ls.header(line, stripped, pos); ok {
		return tok
	}
	if eq := eqIndex(line); eq >= 0 {
		return ls.keyValue(line, eq, pos)
	}
	return Token{Type: TScalar, Pos: pos, Raw: line, Value: stripped}
}

func (ls *lexState) header(line, stripped string, pos Pos) (Token, bool) {
	if !strings.HasSuffix(stripped, ":") {
		return Token{}, false
	}
	pathPart := strings.TrimSpace(stripped[:len(stripped)-1])
	abs := strings.HasPrefix(pathPart, "#")
	if abs {
		pathPart = strings.TrimSpace(pathPart[1:])
	}
	if pathPart == "" {
		if abs {
			// "#:" addresses the document root
			return Token{Type: TAbsHeader, Pos: pos, Raw: line}, true
		}
		// a bare ":" is not a header
		return Token{}, false
	}
	if !ir.ValidPathText(pathPart) {
		if abs {
			// unambiguous header intent, malformed path
			return Token{Type: TBadHeader, Pos: pos, Raw: line, Path: pathPart}, true
		}
		return Token{}, false
	}
	typ := TRelHeader
	if abs {
		typ = TAbsHeader
	}
	return Token{Type: typ, Pos: pos, Raw: line, Path: pathPart}, true
}

func (ls *lexState) keyValue(line string, eq int, pos Pos) Token {
	key := strings.TrimSpace(line[:eq])
	region := strings.TrimLeft(line[eq+1:], " \t")
	n := leadingQuotes(region)
	if n == 0 {
		val, cons := SplitConstraint(region)
		return Token{Type: TKeyValue, Pos: pos, Raw: line, Key: key, Value: val, Constraint: cons}
	}
	// single-line quoted value, optionally followed by a constraint
	if core, cons := SplitConstraint(region); cons != "" && completeQuoted(core, n) {
		return Token{
			Type: TKeyValue, Pos: pos, Raw: line,
			Key: key, Value: core[n : len(core)-n], Constraint: cons, Quoted: true,
		}
	}
	if completeQuoted(region, n) {
		return Token{
			Type: TKeyValue, Pos: pos, Raw: line,
			Key: key, Value: region[n : len(region)-n], Quoted: true,
		}
	}
	ls.inMultiline = true
	ls.quoteLen = n
	return Token{
		Type: TMultilineStart, Pos: pos, Raw: line,
		Key: key, Value: region[n:], QuoteLen: n,
	}
}

// continuation closes a block only on a trailing run of exactly the
// opening length at line end; everything else, constraint-shaped
// suffixes included, is content.
func (ls *lexState) continuation(line string, pos Pos) Token {
	if m := trailingQuotes(line); m == ls.quoteLen {
		ls.inMultiline = false
		return Token{
			Type: TMultilineEnd, Pos: pos, Raw: line,
			Value: strings.TrimRight(line[:len(line)-m], " \t"),
		}
	}
	return Token{Type: TMultilineContent, Pos: pos, Raw: line, Value: line}
}

// eqIndex returns the index of the first "=" that is not inside an open
// quote run, or -1.
func eqIndex(line string) int {
	inQ := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQ = !inQ
		case '=':
			if !inQ {
				return i
			}
		}
	}
	return -1
}

func leadingQuotes(s string) int {
	n := 0
	for n < len(s) && s[n] == '"' {
		n++
	}
	return n
}

func trailingQuotes(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '"' {
		n++
	}
	return n
}

// completeQuoted reports whether s is a whole quoted value for an opening
// run of length n: long enough that the opening and closing runs are
// distinct, and ending in a run of exactly n quotes.
func completeQuoted(s string, n int) bool {
	return len(s) > 2*n && trailingQuotes(s) == n
}

func splitLines(src []byte) []string {
	s := string(src)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
