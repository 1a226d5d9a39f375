// Package libdiff computes diffs between IR values.
//
// # Usage
//
//	// Compute changes between two roots
//	d := libdiff.Compute(oldNode, newNode)
//
//	// Apply them elsewhere
//	patched, err := libdiff.Apply(original, d)
//
// A Diff is an ordered list of Changes addressed by dot-path. It can be
// rendered for humans, stored, and applied to reconstruct the target.
//
// # Related Packages
//
//   - github.com/adf-format/go-adf/ir - IR representation
package libdiff
