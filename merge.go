// Package adf assembles, merges and serializes ADF documents.
//
// ADF (Augmentable Data Format) is a line-oriented data notation:
// hierarchy comes from dot-path section headers, associative data from
// "key = value" lines, arrays from line and blank-line structure, and
// multiline strings from matched-length quote runs. Its defining feature
// is augmentation: independently authored fragments merge
// deterministically into one tree.
//
// Parsing lives in the parse package; this package owns the Document
// facade and the merge engine implementing augmentation.
package adf

import (
	"github.com/adf-format/go-adf/debug"
	"github.com/adf-format/go-adf/ir"
)

// Merge combines two values under augmentation semantics and returns a
// new tree; neither argument is modified.
//
// Two objects merge field-wise: existing keys keep their position,
// shared keys recurse, and incoming-only keys are appended in incoming
// order. Every other pairing is last-write-wins: the incoming value
// replaces the existing one wholesale, arrays included — augmentation
// never concatenates arrays.
//
// Merge is not commutative; callers must apply sections and documents in
// source order.
func Merge(existing, incoming *ir.Node) *ir.Node {
	if incoming == nil {
		if existing == nil {
			return nil
		}
		return existing.Clone()
	}
	if existing == nil {
		return incoming.Clone()
	}
	if debug.Merge() {
		debug.Logf("merge %s <- %s\n", existing.Type, incoming.Type)
	}
	if existing.Type != ir.ObjectType || incoming.Type != ir.ObjectType {
		return incoming.Clone()
	}
	res := ir.Object()
	res.Constraint = existing.Constraint
	if incoming.Constraint != "" {
		res.Constraint = incoming.Constraint
	}
	for i, f := range existing.Fields {
		name := f.String
		inV := ir.Get(incoming, name)
		if inV == nil {
			ir.Set(res, name, existing.Values[i].Clone())
			continue
		}
		ir.Set(res, name, Merge(existing.Values[i], inV))
	}
	for i, f := range incoming.Fields {
		if ir.Get(existing, f.String) != nil {
			continue
		}
		ir.Set(res, f.String, incoming.Values[i].Clone())
	}
	return res
}
