package adf

import (
	"bytes"
	"io"

	"github.com/adf-format/go-adf/debug"
	"github.com/adf-format/go-adf/encode"
)

// Serialize writes the document back out as ADF text: the root's
// absolute sections first, then one relative section per fragment.
// Parsing the output in strict mode reproduces an equal Document.
func (d *Document) Serialize(w io.Writer, opts ...encode.EncodeOption) error {
	if debug.Encode() {
		debug.Logf("serialize document with %d fragments\n", len(d.fragments))
	}
	return encode.EncodeDocument(d.root, d.fragments, w, opts...)
}

// SerializeString is Serialize into a string.
func (d *Document) SerializeString(opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := d.Serialize(buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
