package libdiff

import (
	"errors"
	"fmt"

	"github.com/adf-format/go-adf/ir"
)

var ErrApply = errors.New("cannot apply diff")

// Apply returns a copy of root with d applied. Adds create missing
// intermediate objects; deletes of absent fields are no-ops. Replacing
// under a non-object intermediate is an error.
func Apply(root *ir.Node, d Diff) (*ir.Node, error) {
	res := root.Clone()
	for i := range d {
		if err := applyChange(res, &d[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyChange(root *ir.Node, ch *Change) error {
	if ch.Path.IsRoot() {
		return fmt.Errorf("%w: %s at document root", ErrApply, ch.Op)
	}
	cur := root
	for _, seg := range ch.Path[:len(ch.Path)-1] {
		next := ir.Get(cur, seg)
		if next == nil {
			if ch.Op == OpDelete {
				return nil
			}
			next = ir.Object()
			ir.Set(cur, seg, next)
		} else if next.Type != ir.ObjectType {
			return fmt.Errorf("%w: %q in path %s is a %s, not an object",
				ErrApply, seg, ch.Path, next.Type)
		}
		cur = next
	}
	last := ch.Path[len(ch.Path)-1]
	if ch.Op == OpDelete {
		ir.Delete(cur, last)
		return nil
	}
	ir.Set(cur, last, ch.To.Clone())
	return nil
}
