package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	path, node := s.resolveLine(doc, line)
	if node == nil {
		return nil, nil
	}

	hoverText := buildHoverText(path, node)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// resolveLine maps a 1-based source line to the data it produced: the
// section value for header lines, the assigned value for key/value
// lines. Lines inside relative sections resolve against the fragment.
func (s *Server) resolveLine(doc *document, line int) (ir.Path, *ir.Node) {
	toks, err := token.Tokenize(nil, []byte(doc.content))
	if err != nil {
		return nil, nil
	}
	var (
		secPath ir.Path
		rel     bool
		fragIdx = -1
	)
	for i := range toks {
		t := &toks[i]
		if t.IsHeader() {
			p, perr := ir.ParsePath(t.Path)
			if perr != nil {
				continue
			}
			secPath = p
			rel = t.Type == token.TRelHeader
			if rel {
				fragIdx++
			}
		}
		if t.Pos.Line != line {
			continue
		}
		switch {
		case t.IsHeader():
			return secPath, s.valueAt(doc, secPath, rel, fragIdx, nil)
		case t.Type == token.TKeyValue || t.Type == token.TMultilineStart:
			keyPath, perr := ir.ParsePath(t.Key)
			if perr != nil {
				return nil, nil
			}
			full := append(append(ir.Path{}, secPath...), keyPath...)
			return full, s.valueAt(doc, secPath, rel, fragIdx, keyPath)
		}
		return nil, nil
	}
	return nil, nil
}

func (s *Server) valueAt(doc *document, secPath ir.Path, rel bool, fragIdx int, keyPath ir.Path) *ir.Node {
	var base *ir.Node
	if rel {
		frags := doc.doc.Fragments()
		if fragIdx < 0 || fragIdx >= len(frags) {
			return nil
		}
		base = frags[fragIdx].Value
	} else {
		base = doc.doc.Get(secPath)
	}
	if base == nil || keyPath == nil {
		return base
	}
	cur := base
	for _, seg := range keyPath {
		if cur == nil || cur.Type != ir.ObjectType {
			return nil
		}
		cur = ir.Get(cur, seg)
	}
	return cur
}

func buildHoverText(path ir.Path, node *ir.Node) string {
	var parts []string

	if len(path) > 0 {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path.String()))
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(node)))
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	if node.Constraint != "" {
		parts = append(parts, fmt.Sprintf("**Constraint:** `(%s)`", node.Constraint))
	}

	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		if node.Bool {
			return "`true`"
		}
		return "`false`"
	case ir.NumberType:
		if node.Number != "" {
			return fmt.Sprintf("`%s`", node.Number)
		}
	case ir.StringType:
		val := node.String
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	}
	return ""
}
