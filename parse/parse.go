package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/debug"
	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/token"
)

// Parse consumes ADF text and returns the assembled Document. In lenient
// mode (the default) recoverable problems are skipped and recorded as
// diagnostics on the Document; strict mode returns the first error and
// no Document. Unterminated multiline blocks abort in either mode.
func Parse(d []byte, opts ...Option) (*adf.Document, error) {
	pOpts := &parseOpts{inferTypes: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	doc := adf.NewDocument()
	for _, sec := range splitSections(toks) {
		if err := buildSection(doc, &sec, pOpts); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...Option) (*adf.Document, error) {
	return Parse([]byte(s), opts...)
}

type sectionShape int

const (
	shapeEmpty sectionShape = iota
	shapeScalarArray
	shapeObjectArray
	shapePlainObject
)

// classify decides a section's shape from its collapsed events. Exactly
// one branch applies:
//
//   - no key/value events: scalar array
//   - key/value events with a blank line strictly between two of them:
//     object array
//   - key/value events otherwise: plain object
//
// Scalar lines interleaved with key/value events have no classification
// and are reported via mixed.
func classify(events []event) (shape sectionShape, mixed bool) {
	hasKV, hasScalar := false, false
	for i := range events {
		switch {
		case events[i].blank:
		case events[i].isKV:
			hasKV = true
		default:
			hasScalar = true
		}
	}
	switch {
	case !hasKV && !hasScalar:
		return shapeEmpty, false
	case !hasKV:
		return shapeScalarArray, false
	}
	mixed = hasScalar
	if hasSeparatingBlank(events) {
		return shapeObjectArray, mixed
	}
	return shapePlainObject, mixed
}

// hasSeparatingBlank reports a blank line with key/value events both
// before and after it.
func hasSeparatingBlank(events []event) bool {
	seenKV, blankAfterKV := false, false
	for i := range events {
		switch {
		case events[i].blank:
			if seenKV {
				blankAfterKV = true
			}
		case events[i].isKV:
			if blankAfterKV {
				return true
			}
			seenKV = true
		}
	}
	return false
}

func buildSection(doc *adf.Document, sec *section, opts *parseOpts) error {
	events, err := collapse(sec.toks, doc, opts)
	if err != nil {
		return err
	}
	shape, mixed := classify(events)
	if debug.Parse() {
		debug.Logf("section %q shape %d (%d events)\n", sec.pathText, shape, len(events))
	}
	if mixed {
		err := fmt.Errorf("%w: scalar lines between key/value lines in section %q at %s",
			ErrMixedSection, sec.pathText, sec.pos)
		if opts.strict {
			return err
		}
		// keep the object shape, drop the scalar lines
		doc.AddDiagnostic(sec.pos, err)
	}
	var value *ir.Node
	switch shape {
	case shapeEmpty:
		// a bare header materializes an empty object, so writing one
		// out and reading it back lands on the same document
		value = ir.Object()
	case shapeScalarArray:
		value = buildScalarArray(events, opts)
	case shapeObjectArray:
		value, err = buildObjectArray(events, doc, opts)
	case shapePlainObject:
		value, err = buildObject(events, doc, opts)
	}
	if err != nil {
		return err
	}
	return place(doc, sec, value, opts)
}

func place(doc *adf.Document, sec *section, value *ir.Node, opts *parseOpts) error {
	// lexer validated header paths; root headers have empty text
	path, err := ir.ParsePath(sec.pathText)
	if err != nil {
		return err
	}
	if !sec.abs {
		doc.AddFragment(path, value)
		return nil
	}
	if err := doc.Assign(path, value, false); err != nil {
		if opts.strict {
			return err
		}
		doc.AddDiagnostic(sec.pos, err)
		// retry with conflict replacement; an error here means the
		// section is unplaceable (bare array at the root) and skipped
		_ = doc.Assign(path, value, true)
	}
	return nil
}

func buildScalarArray(events []event, opts *parseOpts) *ir.Node {
	var vals []*ir.Node
	for i := range events {
		ev := &events[i]
		if ev.blank || ev.isKV {
			continue
		}
		if inner, ok := token.Unquote(ev.value); ok {
			vals = append(vals, ir.FromString(inner))
			continue
		}
		vals = append(vals, infer(ev.value, opts))
	}
	return ir.FromSlice(vals)
}

func buildObjectArray(events []event, doc *adf.Document, opts *parseOpts) (*ir.Node, error) {
	var objs []*ir.Node
	cur := ir.Object()
	flush := func() {
		if len(cur.Fields) > 0 {
			objs = append(objs, cur)
			cur = ir.Object()
		}
	}
	for i := range events {
		ev := &events[i]
		switch {
		case ev.blank:
			flush()
		case ev.isKV:
			if err := setEvent(cur, ev, doc, opts); err != nil {
				return nil, err
			}
		}
	}
	flush()
	return ir.FromSlice(objs), nil
}

func buildObject(events []event, doc *adf.Document, opts *parseOpts) (*ir.Node, error) {
	obj := ir.Object()
	for i := range events {
		ev := &events[i]
		if !ev.isKV {
			continue
		}
		if err := setEvent(obj, ev, doc, opts); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// setEvent assigns one key/value event under obj. Keys are dot-paths
// themselves, resolved like header paths; later assignments to the same
// key within one section build overwrite earlier ones.
func setEvent(obj *ir.Node, ev *event, doc *adf.Document, opts *parseOpts) error {
	path, err := ir.ParsePath(ev.key)
	if err != nil || len(path) == 0 {
		if err == nil {
			err = fmt.Errorf("%w: empty key", ir.ErrInvalidKey)
		}
		err = fmt.Errorf("%w at %s", err, ev.pos)
		if opts.strict {
			return err
		}
		doc.AddDiagnostic(ev.pos, err)
		return nil
	}
	var v *ir.Node
	if ev.verbatim {
		v = ir.FromString(ev.value)
	} else {
		v = infer(ev.value, opts)
	}
	v.Constraint = ev.constraint
	setNested(obj, path, v)
	return nil
}

func setNested(obj *ir.Node, path ir.Path, v *ir.Node) {
	cur := obj
	for _, seg := range path[:len(path)-1] {
		next := ir.Get(cur, seg)
		if next == nil || next.Type != ir.ObjectType {
			next = ir.Object()
			ir.Set(cur, seg, next)
		}
		cur = next
	}
	ir.Set(cur, path[len(path)-1], v)
}

var (
	intRe   = regexp.MustCompile(`^-?[0-9]+$`)
	floatRe = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// infer applies scalar type inference: boolean literals (any case),
// decimal integers, then simple floats; everything else stays a string.
// The lexical form of numbers is kept for faithful re-emission.
func infer(value string, opts *parseOpts) *ir.Node {
	if !opts.inferTypes {
		return ir.FromString(value)
	}
	switch strings.ToLower(value) {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if intRe.MatchString(value) {
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			// out of int64 range: keep the text
			return ir.FromString(value)
		}
		return &ir.Node{Type: ir.NumberType, Number: value, Int64: &i}
	}
	if floatRe.MatchString(value) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return ir.FromString(value)
		}
		return &ir.Node{Type: ir.NumberType, Number: value, Float64: &f}
	}
	return ir.FromString(value)
}
