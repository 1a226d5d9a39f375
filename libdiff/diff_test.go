package libdiff

import (
	"sort"
	"strings"
	"testing"

	"github.com/adf-format/go-adf/ir"
	"github.com/google/go-cmp/cmp"
)

func obj(kvs ...any) *ir.Node {
	res := ir.Object()
	for i := 0; i < len(kvs); i += 2 {
		ir.Set(res, kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return res
}

func paths(d Diff) []string {
	var res []string
	for _, ch := range d {
		res = append(res, ch.Op.String()+" "+ch.Path.String())
	}
	return res
}

func TestComputeEmpty(t *testing.T) {
	a := obj("x", ir.FromInt(1), "sub", obj("k", ir.FromString("v")))
	if d := Compute(a, a.Clone()); !d.Empty() {
		t.Fatalf("got %v", paths(d))
	}
}

func TestComputeFields(t *testing.T) {
	from := obj("a", ir.FromInt(1), "b", ir.FromInt(2), "c", ir.FromInt(3))
	to := obj("a", ir.FromInt(1), "b", ir.FromInt(20), "d", ir.FromInt(4))
	d := Compute(from, to)
	want := []string{"add d", "delete c", "replace b"}
	got := paths(d)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeNested(t *testing.T) {
	from := obj("spec", obj("size", ir.FromInt(4), "name", ir.FromString("a")))
	to := obj("spec", obj("size", ir.FromInt(5), "name", ir.FromString("a")))
	d := Compute(from, to)
	if len(d) != 1 {
		t.Fatalf("got %v", paths(d))
	}
	ch := d[0]
	if ch.Op != OpReplace || ch.Path.String() != "spec.size" {
		t.Fatalf("got %s %s", ch.Op, ch.Path.String())
	}
	if *ch.From.Int64 != 4 || *ch.To.Int64 != 5 {
		t.Fatalf("got %v -> %v", ch.From, ch.To)
	}
}

// A field that only moves position produces no change; a moved field
// whose value also changed produces exactly one replace.
func TestComputeMovedField(t *testing.T) {
	from := obj("a", ir.FromInt(1), "b", ir.FromInt(2))
	to := obj("b", ir.FromInt(2), "a", ir.FromInt(1))
	if d := Compute(from, to); !d.Empty() {
		t.Fatalf("pure move: got %v", paths(d))
	}
	to = obj("b", ir.FromInt(2), "a", ir.FromInt(10))
	d := Compute(from, to)
	if len(d) != 1 || d[0].Op != OpReplace || d[0].Path.String() != "a" {
		t.Fatalf("moved+changed: got %v", paths(d))
	}
}

func TestComputeArraysReplaceWholesale(t *testing.T) {
	from := obj("xs", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))
	to := obj("xs", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)}))
	d := Compute(from, to)
	if len(d) != 1 || d[0].Op != OpReplace || d[0].Path.String() != "xs" {
		t.Fatalf("got %v", paths(d))
	}
}

func TestComputeTypeChange(t *testing.T) {
	from := obj("v", ir.FromInt(1))
	to := obj("v", obj("k", ir.FromInt(1)))
	d := Compute(from, to)
	if len(d) != 1 || d[0].Op != OpReplace {
		t.Fatalf("got %v", paths(d))
	}
}

func TestApplyRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		from, to *ir.Node
	}{
		{
			name: "scalars",
			from: obj("a", ir.FromInt(1), "b", ir.FromString("x")),
			to:   obj("a", ir.FromInt(2), "c", ir.FromString("y")),
		},
		{
			name: "nested",
			from: obj("spec", obj("size", ir.FromInt(4)), "keep", ir.FromBool(true)),
			to:   obj("spec", obj("size", ir.FromInt(5), "extra", ir.FromString("e")), "keep", ir.FromBool(true)),
		},
		{
			name: "add deep path",
			from: obj("a", ir.FromInt(1)),
			to:   obj("a", ir.FromInt(1), "x", obj("y", obj("z", ir.FromInt(9)))),
		},
		{
			name: "arrays",
			from: obj("xs", ir.FromSlice([]*ir.Node{ir.FromInt(1)})),
			to:   obj("xs", ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Compute(test.from, test.to)
			got, err := Apply(test.from, d)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if !ir.Equal(got, test.to) {
				t.Fatalf("got %s, want %s", nodeText(got), nodeText(test.to))
			}
			if !ir.Equal(test.from, test.from.Clone()) {
				t.Fatal("apply mutated its input")
			}
		})
	}
}

func TestApplyDeleteAbsentIsNoop(t *testing.T) {
	root := obj("a", ir.FromInt(1))
	d := Diff{{Op: OpDelete, Path: ir.Path{"missing"}}}
	got, err := Apply(root, d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, root) {
		t.Fatal("delete of absent field changed the document")
	}
}

func TestApplyErrors(t *testing.T) {
	root := obj("a", ir.FromInt(1))
	if _, err := Apply(root, Diff{{Op: OpReplace, Path: nil, To: obj()}}); err == nil {
		t.Fatal("root replace: want error")
	}
	d := Diff{{Op: OpAdd, Path: ir.Path{"a", "b"}, To: ir.FromInt(2)}}
	if _, err := Apply(root, d); err == nil {
		t.Fatal("scalar intermediate: want error")
	}
}

func TestDiffArrayByKey(t *testing.T) {
	from := obj("servers", ir.FromSlice([]*ir.Node{
		obj("name", ir.FromString("a"), "port", ir.FromInt(1)),
		obj("name", ir.FromString("b"), "port", ir.FromInt(2)),
	}))
	to := obj("servers", ir.FromSlice([]*ir.Node{
		obj("name", ir.FromString("b"), "port", ir.FromInt(2)),
		obj("name", ir.FromString("a"), "port", ir.FromInt(9)),
	}))
	d, err := DiffArrayByKey(ir.Get(from, "servers"), ir.Get(to, "servers"), "name")
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 1 || d[0].Op != OpReplace || d[0].Path.String() != "a.port" {
		t.Fatalf("got %v", paths(d))
	}
}

func TestDiffArrayByKeyMissingKey(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{obj("port", ir.FromInt(1))})
	if _, err := DiffArrayByKey(arr, arr, "name"); err == nil {
		t.Fatal("want error for element without key field")
	}
}

func TestDiffString(t *testing.T) {
	from := obj("a", ir.FromInt(1), "gone", ir.FromString("x"))
	to := obj("a", ir.FromInt(2), "new", ir.FromString("y"))
	s := Compute(from, to).String()
	for _, want := range []string{"~ a", "- gone", "+ new"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
}

func TestStringDiff(t *testing.T) {
	s := StringDiff("one two three", "one 2 three")
	if s == "" || !strings.Contains(s, "one") {
		t.Fatalf("got %q", s)
	}
}
