package constraint

import (
	"strings"
	"testing"

	"github.com/adf-format/go-adf/parse"
)

func TestCheckHolds(t *testing.T) {
	doc, err := parse.ParseString("w = 70 (value > 0)\nname = ann (value == \"ann\")\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	if vs := NewChecker().Check(doc); len(vs) != 0 {
		t.Fatalf("got %v", vs)
	}
}

func TestCheckFalse(t *testing.T) {
	doc, err := parse.ParseString("# spec:\nw = -3 (value > 0)\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	vs := NewChecker().Check(doc)
	if len(vs) != 1 {
		t.Fatalf("got %v", vs)
	}
	v := vs[0]
	if v.Path != "spec.w" || v.Constraint != "value > 0" || v.Err != nil {
		t.Fatalf("got %+v", v)
	}
	if !strings.Contains(v.String(), "spec.w") {
		t.Fatalf("got %q", v.String())
	}
}

func TestCheckNonBool(t *testing.T) {
	doc, err := parse.ParseString("w = 3 (value + 1)\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	vs := NewChecker().Check(doc)
	if len(vs) != 1 || vs[0].Err == nil {
		t.Fatalf("got %v", vs)
	}
}

func TestCheckCompileError(t *testing.T) {
	doc, err := parse.ParseString("a = 1 (value >)\nb = 2 (value >)\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	c := NewChecker()
	vs := c.Check(doc)
	if len(vs) != 2 {
		t.Fatalf("got %v", vs)
	}
	for _, v := range vs {
		if v.Err == nil {
			t.Fatalf("got %+v", v)
		}
	}
}

func TestCheckFragmentPaths(t *testing.T) {
	in := "a = 1\n\npatch.env:\nport = 0 (value > 1024)\n"
	doc, err := parse.ParseString(in, parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	vs := NewChecker().Check(doc)
	if len(vs) != 1 || vs[0].Path != "patch.env.port" {
		t.Fatalf("got %v", vs)
	}
}

func TestCheckArrayElementPaths(t *testing.T) {
	// element constraints cannot be read from text, so build one
	doc, err := parse.ParseString("# xs:\n1\n2\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	xs := doc.Get(nil).Values[0]
	xs.Values[1].Constraint = "value > 5"
	vs := NewChecker().Check(doc)
	if len(vs) != 1 || vs[0].Path != "xs.1" {
		t.Fatalf("got %v", vs)
	}
}
