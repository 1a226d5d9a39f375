package debug

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/adf-format/go-adf/ir"
)

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	f()
	w.Close()
	os.Stderr = old
	d, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestLogfRendersNodes(t *testing.T) {
	root := ir.Object()
	ir.Set(root, "a", ir.FromInt(1))
	out := captureStderr(t, func() {
		Logf("doc:\n%v", root)
	})
	if !strings.Contains(out, "a = 1") {
		t.Fatalf("got %q", out)
	}
}

func TestLogfRendersLeafNodes(t *testing.T) {
	out := captureStderr(t, func() {
		Logf("value: %v\n", ir.FromInt(3))
	})
	if !strings.Contains(out, "3") {
		t.Fatalf("got %q", out)
	}
}
