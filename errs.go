package adf

import "errors"

// ErrDuplicatePathConflict reports a path whose intermediate segment is
// already occupied by a non-object value.
var ErrDuplicatePathConflict = errors.New("duplicate path conflict")
