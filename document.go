package adf

import (
	"bytes"
	"fmt"

	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/token"
)

// Document is the result of a parse: one owned root object holding all
// absolute data, plus the ordered list of fragments produced by relative
// sections. Fragments are never merged into the root; duplicates at the
// same path are kept as separate entries.
type Document struct {
	root      *ir.Node
	fragments []ir.Fragment
	diags     []Diagnostic
}

func NewDocument() *Document {
	return &Document{root: ir.Object()}
}

// Root returns the owned root object. Callers must not share subtrees
// into other documents without cloning.
func (d *Document) Root() *ir.Node {
	return d.root
}

// Get resolves path against the root, returning nil when any segment is
// missing or an intermediate value is not an object. The empty path
// yields the root itself.
func (d *Document) Get(path ir.Path) *ir.Node {
	cur := d.root
	for _, seg := range path {
		if cur.Type != ir.ObjectType {
			return nil
		}
		cur = ir.Get(cur, seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// GetPath is Get on the text form of a path.
func (d *Document) GetPath(s string) (*ir.Node, error) {
	p, err := ir.ParsePath(s)
	if err != nil {
		return nil, err
	}
	return d.Get(p), nil
}

// Set places v at path, replacing whatever is there. Missing
// intermediates are created; intermediates occupied by non-objects are
// replaced by fresh objects. No merging happens here — Set is the
// direct mutator, Assign the augmenting one.
func (d *Document) Set(path ir.Path, v *ir.Node) {
	if path.IsRoot() {
		if v.Type == ir.ObjectType {
			d.root = v
		}
		return
	}
	cur := d.root
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

// Assign walks path from the root, creating empty objects for missing
// intermediates, and combines v with any existing value at the final
// segment via Merge. This is what augmentation means for absolute
// sections. An intermediate occupied by a non-object is a conflict,
// reported as ErrDuplicatePathConflict; in lenient use the caller
// replaces and continues (see parse).
func (d *Document) Assign(path ir.Path, v *ir.Node, lenient bool) error {
	if path.IsRoot() {
		if v.Type != ir.ObjectType {
			return fmt.Errorf("%w: root value must be an object, got %s",
				ErrDuplicatePathConflict, v.Type)
		}
		d.root = Merge(d.root, v)
		return nil
	}
	cur := d.root
	for _, seg := range path[:len(path)-1] {
		next := ir.Get(cur, seg)
		if next == nil {
			next = ir.Object()
			ir.Set(cur, seg, next)
		} else if next.Type != ir.ObjectType {
			if !lenient {
				return fmt.Errorf("%w: %q at path %s is a %s, not an object",
					ErrDuplicatePathConflict, seg, path, next.Type)
			}
			next = ir.Object()
			ir.Set(cur, seg, next)
		}
		cur = next
	}
	last := path[len(path)-1]
	if existing := ir.Get(cur, last); existing != nil {
		v = Merge(existing, v)
	}
	ir.Set(cur, last, v)
	return nil
}

// AddFragment appends relative-section data in source order.
func (d *Document) AddFragment(path ir.Path, v *ir.Node) {
	d.fragments = append(d.fragments, ir.Fragment{Path: path, Value: v})
}

func (d *Document) Fragments() []ir.Fragment {
	return d.fragments
}

// MergeDocument augments d with other: roots merge, other's fragments
// are appended after d's, both orders preserved. other is not modified.
func (d *Document) MergeDocument(other *Document) {
	d.root = Merge(d.root, other.root)
	for _, f := range other.fragments {
		d.fragments = append(d.fragments, f.Clone())
	}
}

// ToAny exports the root as plain Go values (map/slice/scalars).
func (d *Document) ToAny() any {
	return ir.ToAny(d.root)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.root.MarshalJSON()
}

// Equal reports structural equality of roots and fragment lists.
func (d *Document) Equal(other *Document) bool {
	if !ir.Equal(d.root, other.root) {
		return false
	}
	if len(d.fragments) != len(other.fragments) {
		return false
	}
	for i, f := range d.fragments {
		o := other.fragments[i]
		if !f.Path.Equal(o.Path) || !ir.Equal(f.Value, o.Value) {
			return false
		}
	}
	return true
}

// Diagnostic records a problem a lenient parse recovered from.
type Diagnostic struct {
	Pos token.Pos
	Err error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Err)
}

// AddDiagnostic is used by the parser in lenient mode.
func (d *Document) AddDiagnostic(pos token.Pos, err error) {
	d.diags = append(d.diags, Diagnostic{Pos: pos, Err: err})
}

// Diagnostics returns the problems a lenient parse skipped over, in
// source order. Empty after a strict parse that succeeded.
func (d *Document) Diagnostics() []Diagnostic {
	return d.diags
}

func (d *Document) String() string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "Document(%d fragments)", len(d.fragments))
	return buf.String()
}
