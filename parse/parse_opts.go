package parse

type parseOpts struct {
	strict     bool
	inferTypes bool
}

type Option func(*parseOpts)

// Strict makes every error abort the parse. The default is lenient:
// recover locally, skip the offending line or section, and record a
// diagnostic on the Document.
func Strict() Option {
	return func(o *parseOpts) { o.strict = true }
}

// InferTypes controls scalar type inference (default on). When off,
// every leaf stays a string exactly as written. Multiline and quoted
// values are strings regardless.
func InferTypes(v bool) Option {
	return func(o *parseOpts) { o.inferTypes = v }
}
