package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adf-format/go-adf/format"
	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/token"
)

type EncState struct {
	format          format.Format
	dropConstraints bool
	wroteAny        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as section text. The node plays the part of a
// document root and must be an object.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeDocument(node, nil, w, opts...)
}

// EncodeDocument writes a root and its fragments. Absolute sections for
// the root come first, then one relative section per fragment, in order.
func EncodeDocument(root *ir.Node, frags []ir.Fragment, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if root == nil {
		root = ir.Object()
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(root, w)
	case es.format.IsYAML():
		return encodeYAML(root, w)
	}
	if root.Type != ir.ObjectType {
		return fmt.Errorf("%w: document root is %s, want %s", ErrEncoding, root.Type, ir.ObjectType)
	}
	if err := es.encodeObject(w, nil, root, true); err != nil {
		return err
	}
	for i := range frags {
		if err := es.encodeFragment(w, &frags[i]); err != nil {
			return err
		}
	}
	return nil
}

// encodeObject emits obj's fields in order: runs of leaf fields become
// key/value lines under the object's header, object and array fields
// become their own sections. A leaf following a sub-section re-opens
// the object's section with a repeated header, so augmentation on
// reread rebuilds the original field order.
func (es *EncState) encodeObject(w io.Writer, path ir.Path, obj *ir.Node, isRoot bool) error {
	if len(obj.Fields) == 0 {
		if isRoot {
			return nil
		}
		// an empty object is just its header
		if err := es.writeHeader(w, path, true); err != nil {
			return err
		}
		es.wroteAny = true
		return nil
	}
	// the root starts inside its implicit headerless section
	inSection := isRoot
	for i, v := range obj.Values {
		if !v.Type.IsLeaf() {
			child := path.Child(obj.Fields[i].String)
			var err error
			if v.Type == ir.ObjectType {
				err = es.encodeObject(w, child, v, false)
			} else {
				err = es.encodeArray(w, child, v, true)
			}
			if err != nil {
				return err
			}
			inSection = false
			continue
		}
		if !inSection {
			if err := es.writeHeader(w, path, true); err != nil {
				return err
			}
			inSection = true
		}
		if err := es.writeKVLine(w, ir.Path{obj.Fields[i].String}, v); err != nil {
			return err
		}
		es.wroteAny = true
	}
	return nil
}

func (es *EncState) encodeArray(w io.Writer, path ir.Path, arr *ir.Node, abs bool) error {
	if err := es.writeHeader(w, path, abs); err != nil {
		return err
	}
	es.wroteAny = true
	leaves, objects := 0, 0
	for _, v := range arr.Values {
		switch {
		case v.Type.IsLeaf():
			leaves++
		case v.Type == ir.ObjectType:
			objects++
		default:
			return fmt.Errorf("%w: array nested in array at %q", ErrEncoding, path.String())
		}
	}
	if leaves > 0 && objects > 0 {
		return fmt.Errorf("%w: mixed scalar and object array at %q", ErrEncoding, path.String())
	}
	if leaves > 0 {
		return es.encodeScalarElems(w, path, arr)
	}
	for i, v := range arr.Values {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := es.encodeElemObject(w, path, nil, v); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) encodeScalarElems(w io.Writer, path ir.Path, arr *ir.Node) error {
	for _, v := range arr.Values {
		text, err := es.scalarElemText(path, v)
		if err != nil {
			return err
		}
		if err := writeString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// encodeElemObject writes one object array element as key/value lines.
// Nested objects flatten into dot-path keys; the notation has no way to
// nest an array inside an element.
func (es *EncState) encodeElemObject(w io.Writer, path ir.Path, prefix ir.Path, obj *ir.Node) error {
	for i, v := range obj.Values {
		key := prefix.Child(obj.Fields[i].String)
		switch {
		case v.Type.IsLeaf():
			if err := es.writeKVLine(w, key, v); err != nil {
				return err
			}
		case v.Type == ir.ObjectType:
			if err := es.encodeElemObject(w, path, key, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: array inside array element at %q", ErrEncoding, path.String())
		}
	}
	return nil
}

func (es *EncState) encodeFragment(w io.Writer, f *ir.Fragment) error {
	switch f.Value.Type {
	case ir.ObjectType:
		if err := es.writeHeader(w, f.Path, false); err != nil {
			return err
		}
		es.wroteAny = true
		return es.encodeElemObject(w, f.Path, nil, f.Value)
	case ir.ArrayType:
		return es.encodeArray(w, f.Path, f.Value, false)
	}
	return fmt.Errorf("%w: fragment %q holds a bare %s", ErrEncoding, f.Path.String(), f.Value.Type)
}

func (es *EncState) writeHeader(w io.Writer, path ir.Path, abs bool) error {
	if es.wroteAny {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	text := path.String() + ":"
	switch {
	case abs && len(path) == 0:
		text = "#:"
	case abs:
		text = "# " + text
	}
	return writeString(w, es.color(ir.ObjectType, HeaderColor, text)+"\n")
}

func (es *EncState) writeKVLine(w io.Writer, key ir.Path, v *ir.Node) error {
	if err := es.checkConstraint(v, key); err != nil {
		return err
	}
	keyText := es.color(v.Type, FieldColor, key.String())
	sep := es.color(v.Type, SepColor, " = ")
	if v.Type == ir.StringType && needsBlock(v.String) {
		if v.Constraint != "" && !es.dropConstraints {
			// block close lines have no constraint syntax
			return fmt.Errorf("%w: constraint %q on multiline value at %q",
				ErrEncoding, v.Constraint, key.String())
		}
		return es.writeBlock(w, keyText, sep, v)
	}
	text, err := es.leafText(v, false)
	if err != nil {
		return err
	}
	line := keyText + sep + text + es.constraintText(v)
	return writeString(w, line+"\n")
}

// writeBlock emits a multiline quote block. The run length exceeds
// every quote run inside the value, so no content line can close the
// block early.
func (es *EncState) writeBlock(w io.Writer, keyText, sep string, v *ir.Node) error {
	run := strings.Repeat(`"`, longestQuoteRun(v.String)+1)
	runText := es.color(ir.StringType, LiteralMultiColor, run)
	if err := writeString(w, keyText+sep+runText+"\n"); err != nil {
		return err
	}
	for _, ln := range strings.Split(v.String, "\n") {
		if err := writeString(w, es.color(ir.StringType, ValueColor, ln)+"\n"); err != nil {
			return err
		}
	}
	return writeString(w, runText+"\n")
}

func (es *EncState) scalarElemText(path ir.Path, v *ir.Node) (string, error) {
	if v.Constraint != "" && !es.dropConstraints {
		// bare element lines have no constraint syntax
		return "", fmt.Errorf("%w: constraint on array element at %q", ErrEncoding, path.String())
	}
	if v.Type == ir.StringType {
		s := v.String
		if s == "" || strings.Contains(s, "\n") {
			return "", fmt.Errorf("%w: array element %q at %q needs a quote block, which only key/value lines carry",
				ErrEncoding, s, path.String())
		}
		// edge quotes merge into an inline wrapping run, and a bare
		// complete quoted value would be stripped on reread
		edge := s[0] == '"' || s[len(s)-1] == '"'
		if _, strips := token.Unquote(s); edge && (strips || needsQuote(s, true)) {
			return "", fmt.Errorf("%w: array element %q at %q does not survive a reread",
				ErrEncoding, s, path.String())
		}
	}
	return es.leafText(v, true)
}

func (es *EncState) leafText(v *ir.Node, inArray bool) (string, error) {
	switch v.Type {
	case ir.NullType:
		return es.color(v.Type, ValueColor, "null"), nil
	case ir.BoolType:
		return es.color(v.Type, ValueColor, strconv.FormatBool(v.Bool)), nil
	case ir.NumberType:
		return es.color(v.Type, ValueColor, numberText(v)), nil
	case ir.StringType:
		s := v.String
		if needsQuote(s, inArray) {
			run := strings.Repeat(`"`, longestQuoteRun(s)+1)
			return es.color(v.Type, ValueColor, run+s+run), nil
		}
		return es.color(v.Type, ValueColor, s), nil
	}
	return "", fmt.Errorf("%w: %s is not a leaf value", ErrEncoding, v.Type)
}

// checkConstraint rejects constraints the reader cannot recover: the
// splitter anchors on the last "(" of the line, so a "(" inside the
// constraint text shifts the split.
func (es *EncState) checkConstraint(v *ir.Node, key ir.Path) error {
	c := v.Constraint
	if c == "" || es.dropConstraints {
		return nil
	}
	if strings.Contains(c, "(") || strings.TrimSpace(c) != c {
		return fmt.Errorf("%w: constraint %q at %q does not survive a reread",
			ErrEncoding, c, key.String())
	}
	return nil
}

func (es *EncState) constraintText(v *ir.Node) string {
	if v.Constraint == "" || es.dropConstraints {
		return ""
	}
	return " " + es.color(v.Type, ConstraintColor, "("+v.Constraint+")")
}

func numberText(v *ir.Node) string {
	switch {
	case v.Number != "":
		return v.Number
	case v.Int64 != nil:
		return strconv.FormatInt(*v.Int64, 10)
	case v.Float64 != nil:
		return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	}
	return "0"
}

// needsBlock reports string values only a quote block represents
// faithfully: embedded newlines, emptiness, and quotes touching either
// end, which inline quoting cannot delimit.
func needsBlock(s string) bool {
	if s == "" {
		return true
	}
	if strings.Contains(s, "\n") {
		return true
	}
	return s[0] == '"' || s[len(s)-1] == '"'
}

// needsQuote reports single-line strings that would re-read as
// something else if written bare.
func needsQuote(s string, inArray bool) bool {
	if strings.TrimSpace(s) != s {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	if intPat.MatchString(s) || floatPat.MatchString(s) {
		return true
	}
	if _, cons := token.SplitConstraint(s); cons != "" {
		return true
	}
	if !inArray {
		return false
	}
	// bare lines have more syntax to collide with
	if strings.ContainsAny(s, "=") {
		return true
	}
	if strings.HasPrefix(s, "#") {
		return true
	}
	return strings.HasSuffix(s, ":")
}

func longestQuoteRun(s string) int {
	best, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
