package adf

import "github.com/adf-format/go-adf/libdiff"

// Diff computes the changes turning a's root into b's. Fragments are
// unattached data and have no stable address, so they do not
// participate; compare them with Equal.
func Diff(a, b *Document) libdiff.Diff {
	return libdiff.Compute(a.root, b.root)
}
