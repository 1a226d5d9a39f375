package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Constraints participate in the comparison so that structural equality
// means "re-encodes identically".
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	if c := strings.Compare(a.Constraint, b.Constraint); c != 0 {
		return c
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports structural equality of two trees, including field order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 6
}

func compareNumbers(a, b *Node) int {
	av, bv := numValue(a), numValue(b)
	if c := cmp.Compare(av, bv); c != 0 {
		return c
	}
	// distinguish 54 from 54.0
	aInt := a.Int64 != nil
	bInt := b.Int64 != nil
	if aInt == bInt {
		return 0
	}
	if aInt {
		return -1
	}
	return 1
}

func numValue(a *Node) float64 {
	if a.Int64 != nil {
		return float64(*a.Int64)
	}
	if a.Float64 != nil {
		return *a.Float64
	}
	return 0
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
