package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// ToAny converts a node tree into plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Constraints are dropped;
// object field order is lost (Go maps are unordered). It is the
// structural export used for bridging into JSON/YAML tooling.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain Go values into a node tree. Map keys are sorted
// so the result is deterministic.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		if x == float64(int64(x)) {
			return FromInt(int64(x)), nil
		}
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case string:
		return FromString(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			Set(res, key, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T in ir", v)
	}
}

// MarshalJSON renders the plain form of the tree, preserving object
// field order (unlike ToAny followed by encoding/json).
func (y *Node) MarshalJSON() ([]byte, error) {
	switch y.Type {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		return json.Marshal(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return []byte(strconv.FormatInt(*y.Int64, 10)), nil
		}
		if y.Float64 != nil {
			return json.Marshal(*y.Float64)
		}
		return []byte("null"), nil
	case StringType:
		return json.Marshal(y.String)
	case ArrayType:
		buf := []byte{'['}
		for i, v := range y.Values {
			if i > 0 {
				buf = append(buf, ',')
			}
			d, err := v.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, d...)
		}
		return append(buf, ']'), nil
	case ObjectType:
		buf := []byte{'{'}
		for i, f := range y.Fields {
			if i > 0 {
				buf = append(buf, ',')
			}
			key, err := json.Marshal(f.String)
			if err != nil {
				return nil, err
			}
			buf = append(buf, key...)
			buf = append(buf, ':')
			d, err := y.Values[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, d...)
		}
		return append(buf, '}'), nil
	}
	return nil, fmt.Errorf("cannot marshal type %s", y.Type)
}
