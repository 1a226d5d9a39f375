package libdiff

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/adf-format/go-adf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// String renders the diff for humans, one change per line. Multiline
// string replacements get an inline character diff instead of the full
// before and after texts.
func (d Diff) String() string {
	buf := bytes.NewBuffer(nil)
	for i := range d {
		ch := &d[i]
		switch ch.Op {
		case OpAdd:
			buf.WriteString("+ " + ch.Path.String() + " = " + nodeText(ch.To) + "\n")
		case OpDelete:
			buf.WriteString("- " + ch.Path.String() + "\n")
		case OpReplace:
			if isMultiline(ch.From) || isMultiline(ch.To) {
				buf.WriteString("~ " + ch.Path.String() + ":\n")
				buf.WriteString(indent(StringDiff(ch.From.String, ch.To.String)) + "\n")
				continue
			}
			buf.WriteString("~ " + ch.Path.String() + ": " +
				nodeText(ch.From) + " -> " + nodeText(ch.To) + "\n")
		}
	}
	return buf.String()
}

// StringDiff renders a character-level diff between two texts.
func StringDiff(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

func isMultiline(y *ir.Node) bool {
	return y != nil && y.Type == ir.StringType && strings.Contains(y.String, "\n")
}

func nodeText(y *ir.Node) string {
	if y == nil {
		return "<nil>"
	}
	var res string
	switch y.Type {
	case ir.NullType:
		res = "null"
	case ir.BoolType:
		res = strconv.FormatBool(y.Bool)
	case ir.NumberType:
		res = y.Number
		if res == "" {
			switch {
			case y.Int64 != nil:
				res = strconv.FormatInt(*y.Int64, 10)
			case y.Float64 != nil:
				res = strconv.FormatFloat(*y.Float64, 'g', -1, 64)
			}
		}
	case ir.StringType:
		res = strconv.Quote(y.String)
	default:
		d, err := y.MarshalJSON()
		if err != nil {
			return "<" + y.Type.String() + ">"
		}
		res = string(d)
	}
	if y.Constraint != "" {
		res += " (" + y.Constraint + ")"
	}
	return res
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, ln := range lines {
		lines[i] = "    " + ln
	}
	return strings.Join(lines, "\n")
}
