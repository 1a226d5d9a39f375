package adf

import (
	"testing"

	"github.com/adf-format/go-adf/ir"
)

func obj(kvs ...any) *ir.Node {
	res := ir.Object()
	for i := 0; i < len(kvs); i += 2 {
		ir.Set(res, kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return res
}

func TestMergeScalarsLastWins(t *testing.T) {
	got := Merge(ir.FromInt(1), ir.FromString("x"))
	if !ir.Equal(got, ir.FromString("x")) {
		t.Fatalf("got %v", got)
	}
}

func TestMergeObjectsUnion(t *testing.T) {
	existing := obj(
		"a", ir.FromInt(1),
		"b", obj("x", ir.FromInt(2), "y", ir.FromInt(3)),
	)
	incoming := obj(
		"b", obj("y", ir.FromInt(30), "z", ir.FromInt(40)),
		"c", ir.FromBool(true),
	)
	got := Merge(existing, incoming)
	want := obj(
		"a", ir.FromInt(1),
		"b", obj("x", ir.FromInt(2), "y", ir.FromInt(30), "z", ir.FromInt(40)),
		"c", ir.FromBool(true),
	)
	if !ir.Equal(got, want) {
		t.Fatalf("got %s, want %s", mustJSON(got), mustJSON(want))
	}
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	existing := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})
	incoming := ir.FromSlice([]*ir.Node{ir.FromInt(9)})
	got := Merge(existing, incoming)
	if !ir.Equal(got, incoming) {
		t.Fatalf("got %s", mustJSON(got))
	}
}

func TestMergeObjectOverScalar(t *testing.T) {
	got := Merge(ir.FromString("old"), obj("k", ir.FromInt(1)))
	if got.Type != ir.ObjectType {
		t.Fatalf("got %s", got.Type)
	}
	got = Merge(obj("k", ir.FromInt(1)), ir.FromString("new"))
	if !ir.Equal(got, ir.FromString("new")) {
		t.Fatalf("got %s", mustJSON(got))
	}
}

func TestMergeDoesNotMutateIncoming(t *testing.T) {
	incoming := obj("b", obj("z", ir.FromInt(1)))
	got := Merge(obj("a", ir.FromInt(0)), incoming)
	ir.Set(ir.Get(got, "b"), "z", ir.FromInt(99))
	if v := ir.Get(ir.Get(incoming, "b"), "z"); v.Int64 == nil || *v.Int64 != 1 {
		t.Fatal("merge shares structure with incoming")
	}
}

func TestMergeConstraintIncomingWins(t *testing.T) {
	got := Merge(ir.FromInt(1).WithConstraint("> 0"), ir.FromInt(2))
	if got.Constraint != "" {
		t.Fatalf("got constraint %q", got.Constraint)
	}
	got = Merge(ir.FromInt(1), ir.FromInt(2).WithConstraint("> 1"))
	if got.Constraint != "> 1" {
		t.Fatalf("got constraint %q", got.Constraint)
	}
}

func mustJSON(y *ir.Node) string {
	d, err := y.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(d)
}
