package encode

import "errors"

// ErrEncoding wraps all encoding failures, most of them values the
// section notation cannot express, such as arrays nested directly
// inside arrays.
var ErrEncoding = errors.New("encoding error")
