package adf

import (
	"errors"
	"testing"

	"github.com/adf-format/go-adf/ir"
)

func TestDocumentGetSet(t *testing.T) {
	doc := NewDocument()
	doc.Set(ir.Path{"a", "b"}, ir.FromInt(1))
	if v := doc.Get(ir.Path{"a", "b"}); v.Int64 == nil || *v.Int64 != 1 {
		t.Fatal("set value not found")
	}
	if doc.Get(ir.Path{"a", "b", "c"}) != nil {
		t.Fatal("path through a leaf resolved")
	}
	if doc.Get(ir.Path{"nope"}) != nil {
		t.Fatal("missing path resolved")
	}
	if doc.Get(nil) != doc.Root() {
		t.Fatal("empty path is not the root")
	}
}

func TestAssignMerges(t *testing.T) {
	doc := NewDocument()
	if err := doc.Assign(ir.Path{"svc"}, obj("host", ir.FromString("a")), false); err != nil {
		t.Fatal(err)
	}
	if err := doc.Assign(ir.Path{"svc"}, obj("port", ir.FromInt(80)), false); err != nil {
		t.Fatal(err)
	}
	want := obj("host", ir.FromString("a"), "port", ir.FromInt(80))
	if !ir.Equal(doc.Get(ir.Path{"svc"}), want) {
		t.Fatalf("got %s", mustJSON(doc.Get(ir.Path{"svc"})))
	}
}

func TestAssignConflict(t *testing.T) {
	doc := NewDocument()
	doc.Set(ir.Path{"a"}, ir.FromInt(1))
	err := doc.Assign(ir.Path{"a", "b"}, ir.FromInt(2), false)
	if !errors.Is(err, ErrDuplicatePathConflict) {
		t.Fatalf("got %v", err)
	}
	// lenient replaces the occupied intermediate
	if err := doc.Assign(ir.Path{"a", "b"}, ir.FromInt(2), true); err != nil {
		t.Fatal(err)
	}
	if v := doc.Get(ir.Path{"a", "b"}); v.Int64 == nil || *v.Int64 != 2 {
		t.Fatal("lenient assign did not take")
	}
}

func TestAssignRootRequiresObject(t *testing.T) {
	doc := NewDocument()
	if err := doc.Assign(nil, ir.FromInt(3), false); err == nil {
		t.Fatal("bare scalar accepted at root")
	}
	if err := doc.Assign(nil, obj("k", ir.FromInt(1)), false); err != nil {
		t.Fatal(err)
	}
	if doc.Get(ir.Path{"k"}) == nil {
		t.Fatal("root assign did not merge")
	}
}

func TestFragmentsKeepOrderAndDuplicates(t *testing.T) {
	doc := NewDocument()
	doc.AddFragment(ir.Path{"patch"}, obj("a", ir.FromInt(1)))
	doc.AddFragment(ir.Path{"patch"}, obj("a", ir.FromInt(2)))
	frags := doc.Fragments()
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2", len(frags))
	}
	if !frags[0].Path.Equal(frags[1].Path) {
		t.Fatal("fragment paths differ")
	}
	if ir.Equal(frags[0].Value, frags[1].Value) {
		t.Fatal("duplicate fragments collapsed")
	}
}

func TestMergeDocument(t *testing.T) {
	a := NewDocument()
	a.Set(ir.Path{"x"}, ir.FromInt(1))
	a.AddFragment(ir.Path{"f"}, obj("p", ir.FromInt(0)))

	b := NewDocument()
	b.Set(ir.Path{"y"}, ir.FromInt(2))
	b.AddFragment(ir.Path{"f"}, obj("q", ir.FromInt(9)))

	a.MergeDocument(b)
	if a.Get(ir.Path{"x"}) == nil || a.Get(ir.Path{"y"}) == nil {
		t.Fatal("roots did not merge")
	}
	if len(a.Fragments()) != 2 {
		t.Fatalf("got %d fragments, want 2", len(a.Fragments()))
	}
	if b.Get(ir.Path{"x"}) != nil {
		t.Fatal("merge modified the argument")
	}
}

func TestDocumentEqual(t *testing.T) {
	a, b := NewDocument(), NewDocument()
	a.Set(ir.Path{"k"}, ir.FromInt(1))
	b.Set(ir.Path{"k"}, ir.FromInt(1))
	if !a.Equal(b) {
		t.Fatal("equal documents compare unequal")
	}
	b.AddFragment(ir.Path{"f"}, obj())
	if a.Equal(b) {
		t.Fatal("fragment lists ignored")
	}
}
