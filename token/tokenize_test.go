package token

import (
	"errors"
	"testing"
)

type lineTest struct {
	in   string
	want []Type
}

func TestTokenizeLineTypes(t *testing.T) {
	tests := []lineTest{
		{
			in:   "",
			want: nil,
		},
		{
			in:   "\n",
			want: []Type{TBlank},
		},
		{
			in:   "   \t\n",
			want: []Type{TBlank},
		},
		{
			in:   "# a.b:\n",
			want: []Type{TAbsHeader},
		},
		{
			in:   "#:\n",
			want: []Type{TAbsHeader},
		},
		{
			in:   "a.b:\n",
			want: []Type{TRelHeader},
		},
		{
			in:   "# a..b:\n",
			want: []Type{TBadHeader},
		},
		{
			in:   "a..b:\n",
			want: []Type{TScalar},
		},
		{
			in:   ":\n",
			want: []Type{TScalar},
		},
		{
			in:   "key = value\n",
			want: []Type{TKeyValue},
		},
		{
			in:   "just a scalar\n",
			want: []Type{TScalar},
		},
		{
			in:   "k = \"\"\nline\n\"\"\n",
			want: []Type{TMultilineStart, TMultilineContent, TMultilineEnd},
		},
	}
	for i, test := range tests {
		toks, err := Tokenize(nil, []byte(test.in))
		if err != nil {
			t.Errorf("test %d: %s", i, err)
			continue
		}
		if len(toks) != len(test.want) {
			t.Errorf("test %d: got %d tokens, want %d", i, len(toks), len(test.want))
			continue
		}
		for j := range toks {
			if toks[j].Type != test.want[j] {
				t.Errorf("test %d token %d: got %s, want %s", i, j, toks[j].Type, test.want[j])
			}
		}
	}
}

func TestTokenizeKeyValue(t *testing.T) {
	tests := []struct {
		in         string
		key, value string
		constraint string
		quoted     bool
	}{
		{in: "a = 1\n", key: "a", value: "1"},
		{in: "  a.b = hello world \n", key: "a.b", value: "hello world"},
		{in: "a = 70 (kg)\n", key: "a", value: "70", constraint: "kg"},
		{in: "a = \"70\"\n", key: "a", value: "70", quoted: true},
		{in: "a = \"has = sign\"\n", key: "a", value: "has = sign", quoted: true},
		{in: "a = \"\"x\"\"\n", key: "a", value: "x", quoted: true},
		{in: "a = \"quoted\" (unit)\n", key: "a", value: "quoted", constraint: "unit", quoted: true},
		{in: "a = f(x) (unit)\n", key: "a", value: "f(x)", constraint: "unit"},
		{in: "a = (solo)\n", key: "a", value: "(solo)"},
	}
	for i, test := range tests {
		toks, err := Tokenize(nil, []byte(test.in))
		if err != nil {
			t.Fatalf("test %d: %s", i, err)
		}
		if len(toks) != 1 || toks[0].Type != TKeyValue {
			t.Errorf("test %d: not a single key/value token", i)
			continue
		}
		tok := &toks[0]
		if tok.Key != test.key || tok.Value != test.value ||
			tok.Constraint != test.constraint || tok.Quoted != test.quoted {
			t.Errorf("test %d: got (%q, %q, %q, %v), want (%q, %q, %q, %v)", i,
				tok.Key, tok.Value, tok.Constraint, tok.Quoted,
				test.key, test.value, test.constraint, test.quoted)
		}
	}
}

func TestTokenizeMultiline(t *testing.T) {
	in := "text = \"\"\"\nfirst\nsecond \"\"\"\"\n\"\"\"\nafter = 1\n"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Type{TMultilineStart, TMultilineContent, TMultilineContent, TMultilineEnd, TKeyValue}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i].Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, want[i])
		}
	}
	// the four-quote run does not close a three-quote block
	if toks[2].Value != "second \"\"\"\"" {
		t.Errorf("content: got %q", toks[2].Value)
	}
}

// Block close lines are recognized by their trailing quote run alone;
// a line whose quote run is followed by more text is ordinary content.
func TestTokenizeMultilineContentNotClose(t *testing.T) {
	in := "text = \"\nsay \"hi\" (aside)\n\"\" (nonempty)\nplain\n\"\n"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	wantTypes := []Type{TMultilineStart, TMultilineContent, TMultilineContent, TMultilineContent, TMultilineEnd}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantTypes))
	}
	for i, want := range wantTypes {
		if toks[i].Type != want {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Type, want)
		}
	}
	if toks[1].Value != `say "hi" (aside)` {
		t.Errorf("content: got %q", toks[1].Value)
	}
	end := &toks[len(toks)-1]
	if end.Value != "" || end.Constraint != "" {
		t.Errorf("end: got value %q constraint %q", end.Value, end.Constraint)
	}
}

func TestTokenizeUnterminated(t *testing.T) {
	_, err := Tokenize(nil, []byte("a = \"\"\"\nnever closed\n"))
	if !errors.Is(err, ErrUnterminatedMultiline) {
		t.Fatalf("got %v, want %v", err, ErrUnterminatedMultiline)
	}
	var terr *TokenizeErr
	if !errors.As(err, &terr) {
		t.Fatal("error carries no position")
	}
}

func TestSplitConstraint(t *testing.T) {
	tests := []struct {
		in, value, constraint string
	}{
		{in: "70 (kg)", value: "70", constraint: "kg"},
		{in: "70(kg)", value: "70(kg)"},
		{in: "(kg)", value: "(kg)"},
		{in: "x ()", value: "x ()"},
		{in: "a (b) (c)", value: "a (b)", constraint: "c"},
		{in: "plain", value: "plain"},
		// the last "(" is inside the parens, not preceded by space
		{in: "v (f(x))", value: "v (f(x))"},
		{in: "a (x) y)", value: "a", constraint: "x) y"},
	}
	for i, test := range tests {
		v, c := SplitConstraint(test.in)
		if v != test.value || c != test.constraint {
			t.Errorf("test %d: got (%q, %q), want (%q, %q)", i, v, c, test.value, test.constraint)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{in: `"x"`, want: "x", ok: true},
		{in: `""x""`, want: "x", ok: true},
		{in: `x`, want: "x", ok: false},
		{in: `""`, want: `""`, ok: false},
		{in: `"a" b`, want: `"a" b`, ok: false},
	}
	for i, test := range tests {
		got, ok := Unquote(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("test %d: got (%q, %v), want (%q, %v)", i, got, ok, test.want, test.ok)
		}
	}
}
