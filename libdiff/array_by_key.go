package libdiff

import (
	"fmt"

	"github.com/adf-format/go-adf/ir"
)

// DiffArrayByKey compares two object arrays by identity instead of
// position: elements pair up when they agree on the key field. The
// resulting change paths start with the pairing value.
func DiffArrayByKey(from, to *ir.Node, key string) (Diff, error) {
	fromObj, err := keyedObject(from, key)
	if err != nil {
		return nil, err
	}
	toObj, err := keyedObject(to, key)
	if err != nil {
		return nil, err
	}
	return Compute(fromObj, toObj), nil
}

func keyedObject(arr *ir.Node, key string) (*ir.Node, error) {
	if arr.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: keyed diff needs arrays, got %s", ErrApply, arr.Type)
	}
	res := ir.Object()
	for i, el := range arr.Values {
		if el.Type != ir.ObjectType {
			return nil, fmt.Errorf("keyed diff: element %d is a %s, not an object", i, el.Type)
		}
		kv := ir.Get(el, key)
		if kv == nil {
			return nil, fmt.Errorf("keyed diff: element %d has no field %q", i, key)
		}
		field := kv.String
		if kv.Type != ir.StringType {
			field = nodeText(kv)
		}
		// clone so reparenting into the keyed object leaves arr alone
		ir.Set(res, field, el.Clone())
	}
	return res, nil
}
