package adf_test

import (
	"testing"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/ir"
	"github.com/adf-format/go-adf/parse"
)

// reread checks that serializing doc and reading it back in strict mode
// lands on an equal document.
func reread(t *testing.T, doc *adf.Document) {
	t.Helper()
	text, err := doc.SerializeString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	back, err := parse.ParseString(text, parse.Strict())
	if err != nil {
		t.Fatalf("reread %q: %v", text, err)
	}
	if !doc.Equal(back) {
		t.Fatalf("reread of:\n%s\nchanged the document", text)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "flat", in: "a = 1\nb = two\nc = true\n"},
		{name: "sections", in: "# server:\nhost = example.com\nport = 8080\n\n# server.tls:\nenabled = true\n"},
		{name: "scalar array", in: "# tags:\nred\ngreen\n\"42\"\n"},
		{name: "object array", in: "# users:\nname = ann\nrole = admin\n\nname = bob\n"},
		{name: "multiline", in: "# doc:\ntext = \"\"\nfirst line\n\nlast line\n\"\"\n"},
		{name: "constraints", in: "w = 70 (kg)\nh = 1.85 (m, > 0)\n"},
		{name: "quoted values", in: "a = \"54\"\nb = \" padded \"\nc = \"TRUE\"\n"},
		{name: "fragments", in: "# root:\na = 1\n\npatch.env:\nk = v\n\npatch.env:\nk = w\n"},
		{name: "nested element objects", in: "# items:\nname = a\nmeta.zone = east\n\nname = b\n"},
		{name: "lexical numbers", in: "a = 54.0\nb = -7\nc = 0.50\n"},
		{name: "interleaved fields", in: "# a:\nx = 1\n\n# a.b:\nc = 2\n\n# a:\ny = 3\n"},
		{name: "interleaved root fields", in: "x = 1\n\n# sub:\nk = 2\n\n#:\nafter = 3\n"},
		{name: "empty section", in: "# a.b.c:\n\n# d:\nk = 1\n"},
		{name: "constraint-shaped multiline content", in: "# doc:\ntext = \"\nfirst\nnote (soft)\n\"\n"},
		{name: "edge-quoted array elements", in: "# xs:\n\"partial\ntrail\"\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := parse.ParseString(test.in, parse.Strict())
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			reread(t, doc)
		})
	}
}

// Canonical text survives a read and a write byte for byte.
func TestRoundTripCanonical(t *testing.T) {
	in := `name = widget
count = 3

# spec:
size = 4
label = "54"

# spec.tags:
a
b

patch.extra:
k = v
`
	doc, err := parse.ParseString(in, parse.Strict())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := doc.SerializeString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if out != in {
		t.Fatalf("got:\n%s\nwant:\n%s", out, in)
	}
}

// Interleaved leaf and object fields survive a write and reread in
// their original order, via repeated section headers.
func TestRoundTripInterleavedFieldOrder(t *testing.T) {
	doc, err := parse.ParseString("# a:\nx = 1\n\n# a.b:\nc = 2\n\n# a:\ny = 3\n", parse.Strict())
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Get(ir.Path{"a"})
	wantOrder := []string{"x", "b", "y"}
	for i, f := range a.Fields {
		if f.String != wantOrder[i] {
			t.Fatalf("field %d: got %q, want %q", i, f.String, wantOrder[i])
		}
	}
	reread(t, doc)
}

// A lenient parse that skips a section's only line still leaves an
// empty object, and the empty object survives the round trip.
func TestRoundTripLenientSkippedSection(t *testing.T) {
	doc, err := parse.ParseString("# a:\n..b = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Diagnostics()) == 0 {
		t.Fatal("bad key produced no diagnostic")
	}
	a := doc.Get(ir.Path{"a"})
	if a == nil || a.Type != ir.ObjectType || len(a.Fields) != 0 {
		t.Fatalf("got %v", a)
	}
	reread(t, doc)
}

func TestRoundTripBuiltDocument(t *testing.T) {
	doc := adf.NewDocument()
	doc.Set(ir.Path{"app", "name"}, ir.FromString("web"))
	doc.Set(ir.Path{"app", "replicas"}, ir.FromInt(3))
	reread(t, doc)
}
