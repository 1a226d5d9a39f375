package encode

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/adf-format/go-adf/ir"

	"github.com/goccy/go-yaml"
)

func encodeJSON(root *ir.Node, w io.Writer) error {
	d, err := root.MarshalJSON()
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// encodeYAML goes through yaml.MapSlice to keep field order.
func encodeYAML(root *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlValue(root))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(y *ir.Node) any {
	switch y.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(y.Fields))
		for i := range y.Fields {
			res = append(res, yaml.MapItem{
				Key:   y.Fields[i].String,
				Value: yamlValue(y.Values[i]),
			})
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, len(y.Values))
		for _, v := range y.Values {
			res = append(res, yamlValue(v))
		}
		return res
	default:
		return ir.ToAny(y)
	}
}
