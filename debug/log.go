package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/adf-format/go-adf/encode"
	"github.com/adf-format/go-adf/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				// non-object nodes render as their plain value
				args[i] = fmt.Sprintf("%v", ir.ToAny(x))
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
