package adf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/adf-format/go-adf/ir"

	"github.com/goccy/go-yaml"
)

// FromJSON builds a Document from JSON. The top-level value must be an
// object; numbers keep their lexical form where possible.
func FromJSON(d []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return fromAny(v)
}

// FromYAML builds a Document from YAML.
func FromYAML(d []byte) (*Document, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return fromAny(v)
}

func fromAny(v any) (*Document, error) {
	y, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	if y.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: top-level value is %s, want %s", ir.ErrParse, y.Type, ir.ObjectType)
	}
	doc := NewDocument()
	doc.Set(nil, y)
	return doc, nil
}
