// Package ir provides the in-memory representation of ADF values.
//
// # Overview
//
// Every value in an ADF document (whether parsed from text or created
// programmatically) is represented as an ir.Node tree. The IR is a
// recursive tagged union: the Type field selects which of the remaining
// fields are meaningful, and consumers switch exhaustively on it.
//
// The IR carries no position information from input documents; it is
// purely semantic.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value; exactly one of Int64 or Float64 is set,
//     and Number keeps the lexical form for faithful re-emission
//   - StringType: string value
//   - ArrayType: ordered list of nodes (Values)
//   - ObjectType: key-value pairs (parallel Fields and Values slices,
//     insertion ordered, keys unique)
//
// A Node may additionally carry a Constraint: the opaque parenthesized
// annotation that followed its value in the source. Constraints are
// preserved through parsing, merging, and encoding but never interpreted
// here; see the constraint package for a layered checker.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Ownership
//
// Trees are acyclic and finite. Each node is owned by exactly one parent
// (Parent, ParentIndex, ParentField track the edge); sharing a node
// between two trees requires Clone. Node structures are not thread-safe;
// independent trees may be used from independent goroutines freely.
package ir
