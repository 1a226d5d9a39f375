package parse

import (
	"fmt"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/token"
)

// section is a maximal run of tokens between one header (exclusive) and
// the next. The implicit pre-header run is an absolute section at the
// document root.
type section struct {
	abs      bool
	pathText string
	pos      token.Pos
	toks     []token.Token
}

func splitSections(toks []token.Token) []section {
	var res []section
	cur := section{abs: true}
	for _, t := range toks {
		if !t.IsHeader() {
			cur.toks = append(cur.toks, t)
			continue
		}
		res = append(res, cur)
		cur = section{
			abs:      t.Type == token.TAbsHeader,
			pathText: t.Path,
			pos:      t.Pos,
		}
	}
	return append(res, cur)
}

// event is a section content token after multiline collapse: every
// multiline run becomes a single key/value event carrying the joined
// string value.
type event struct {
	pos        token.Pos
	blank      bool
	isKV       bool
	key        string
	value      string
	constraint string
	// verbatim values (quoted or multiline) are never type-inferred
	verbatim bool
}

// collapse folds multiline token runs into key/value events and screens
// out malformed headers. Tokenize has already rejected unterminated
// blocks, so every TMultilineStart here has its TMultilineEnd.
func collapse(toks []token.Token, doc *adf.Document, opts *parseOpts) ([]event, error) {
	var res []event
	for i := 0; i < len(toks); i++ {
		t := &toks[i]
		switch t.Type {
		case token.TBlank:
			res = append(res, event{pos: t.Pos, blank: true})
		case token.TScalar:
			res = append(res, event{pos: t.Pos, value: t.Value})
		case token.TKeyValue:
			res = append(res, event{
				pos: t.Pos, isKV: true,
				key: t.Key, value: t.Value,
				constraint: t.Constraint, verbatim: t.Quoted,
			})
		case token.TMultilineStart:
			ev := event{pos: t.Pos, isKV: true, key: t.Key, verbatim: true}
			parts := []string{}
			if t.Value != "" {
				parts = append(parts, t.Value)
			}
			for i++; i < len(toks); i++ {
				tt := &toks[i]
				if tt.Type == token.TMultilineContent {
					parts = append(parts, tt.Value)
					continue
				}
				// TMultilineEnd; close lines carry no constraint
				if tt.Value != "" {
					parts = append(parts, tt.Value)
				}
				break
			}
			ev.value = joinLines(parts)
			res = append(res, ev)
		case token.TBadHeader:
			err := fmt.Errorf("%w: %q at %s", ErrHeaderSyntax, t.Raw, t.Pos)
			if !opts.strict {
				doc.AddDiagnostic(t.Pos, err)
				continue
			}
			return nil, err
		}
	}
	return res, nil
}

func joinLines(parts []string) string {
	res := ""
	for i, p := range parts {
		if i > 0 {
			res += "\n"
		}
		res += p
	}
	return res
}
