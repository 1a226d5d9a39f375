package libdiff

import (
	"github.com/adf-format/go-adf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpAdd Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// Change is one edit at a dot-path. From is nil for adds, To is nil for
// deletes. Both nodes are owned by the inputs of Compute, not cloned.
type Change struct {
	Op   Op
	Path ir.Path
	From *ir.Node
	To   *ir.Node
}

type Diff []Change

func (d Diff) Empty() bool { return len(d) == 0 }

// Compute walks two values and returns the changes turning from into
// to. Objects recurse field-wise, with field ordering handled by a
// sequence diff so renames do not cascade. Everything else is replaced
// wholesale when unequal, mirroring augmentation semantics.
func Compute(from, to *ir.Node) Diff {
	var res Diff
	diffValue(nil, from, to, &res)
	return res
}

func diffValue(path ir.Path, from, to *ir.Node, res *Diff) {
	switch {
	case from == nil && to == nil:
	case from == nil:
		*res = append(*res, Change{Op: OpAdd, Path: path, To: to})
	case to == nil:
		*res = append(*res, Change{Op: OpDelete, Path: path, From: from})
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		diffObject(path, from, to, res)
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Op: OpReplace, Path: path, From: from, To: to})
		}
	}
}

// diffObject aligns the two field sequences with a rune-alphabet text
// diff, then recurses on fields both sides share.
func diffObject(path ir.Path, from, to *ir.Node, res *Diff) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				// a field deleted here may reappear as an insert
				if ir.Get(to, runeMap[r]) == nil {
					*res = append(*res, Change{
						Op: OpDelete, Path: path.Child(runeMap[r]), From: from.Values[fi],
					})
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				diffValue(path.Child(runeMap[r]), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				field := runeMap[r]
				if old := ir.Get(from, field); old != nil {
					// moved field, value may still differ
					diffValue(path.Child(field), old, to.Values[ti], res)
				} else {
					*res = append(*res, Change{
						Op: OpAdd, Path: path.Child(field), To: to.Values[ti],
					})
				}
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
