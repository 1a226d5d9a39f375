package encode

import "regexp"

// Mirrors the reader's scalar inference, so the writer knows which bare
// strings would come back as numbers.
var (
	intPat   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPat = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)
