package ir

import "strconv"

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	// Constraint is the opaque "(...)" annotation attached to this
	// value in the source, if any. It is carried, never interpreted.
	Constraint string

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) WithConstraint(c string) *Node {
	y.Constraint = c
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Constraint = y.Constraint
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = &Node{Type: NullType}
		} else if kv.Key.Type == StringType {
			kv.Key.ParentField = kv.Key.String
			kv.Val.ParentField = kv.Key.ParentField
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Object returns a new empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set assigns field to v on an object node, replacing the value in place
// when the field exists and appending it otherwise. Insertion order of
// existing fields is preserved.
func Set(y *Node, field string, v *Node) {
	v.ParentField = field
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		v.Parent = y
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	yField := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.Parent = y
	v.ParentIndex = i
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, v)
}

// Delete removes field from an object node, reporting whether it was
// present. Remaining fields keep their order.
func Delete(y *Node, field string) bool {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
