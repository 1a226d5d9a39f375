package parse

import "errors"

var (
	// ErrHeaderSyntax reports a "#"-prefixed header line whose path
	// does not parse.
	ErrHeaderSyntax = errors.New("malformed section header")

	// ErrMixedSection reports a section interleaving bare scalar
	// lines with key/value lines, which has no classification.
	ErrMixedSection = errors.New("mixed section content")
)
