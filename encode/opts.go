package encode

import "github.com/adf-format/go-adf/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeConstraints controls whether "(...)" annotations are written
// back out. On by default.
func EncodeConstraints(v bool) EncodeOption {
	return func(es *EncState) { es.dropConstraints = !v }
}
