package ir

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
		bad  bool
	}{
		{in: "", want: nil},
		{in: "a", want: Path{"a"}},
		{in: "a.b.c", want: Path{"a", "b", "c"}},
		{in: `a."b c".d`, want: Path{"a", "b c", "d"}},
		{in: `"x.y"`, want: Path{"x.y"}},
		{in: `""`, want: Path{""}},
		{in: "a..b", bad: true},
		{in: ".a", bad: true},
		{in: "a.", bad: true},
		{in: "a b", bad: true},
		{in: `"open`, bad: true},
	}
	for i, test := range tests {
		got, err := ParsePath(test.in)
		if test.bad {
			if err == nil {
				t.Errorf("test %d: %q parsed, want error", i, test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %q: %s", i, test.in, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("test %d: got %v, want %v", i, got, test.want)
		}
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	paths := []Path{
		nil,
		{"a"},
		{"a", "b"},
		{"a", "has space", "c"},
		{"has.dot"},
	}
	for i, p := range paths {
		back, err := ParsePath(p.String())
		if err != nil {
			t.Errorf("test %d: %s", i, err)
			continue
		}
		if !back.Equal(p) {
			t.Errorf("test %d: got %v, want %v", i, back, p)
		}
	}
}

func TestPathChild(t *testing.T) {
	p := Path{"a"}
	c1 := p.Child("b")
	c2 := p.Child("c")
	if !c1.Equal(Path{"a", "b"}) || !c2.Equal(Path{"a", "c"}) {
		t.Fatalf("got %v and %v", c1, c2)
	}
	if !p.Equal(Path{"a"}) {
		t.Fatal("receiver was modified")
	}
}
