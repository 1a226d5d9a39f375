package constraint

import (
	"fmt"

	adf "github.com/adf-format/go-adf"
	"github.com/adf-format/go-adf/debug"
	"github.com/adf-format/go-adf/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Violation is one annotation that failed: it did not compile, did not
// evaluate, did not produce a boolean, or produced false.
type Violation struct {
	Path       string
	Constraint string
	Value      any
	Err        error
}

func (v Violation) String() string {
	if v.Err != nil {
		return fmt.Sprintf("%s: (%s): %s", v.Path, v.Constraint, v.Err)
	}
	return fmt.Sprintf("%s: (%s) is false for %v", v.Path, v.Constraint, v.Value)
}

// Checker compiles annotations once and caches the programs, so
// repeated annotations across a document compile a single time.
type Checker struct {
	programs map[string]*vm.Program
	errs     map[string]error
}

func NewChecker() *Checker {
	return &Checker{
		programs: map[string]*vm.Program{},
		errs:     map[string]error{},
	}
}

// Check evaluates every annotation in the document, root first, then
// fragments in order. A nil result means all annotations hold.
func (c *Checker) Check(doc *adf.Document) []Violation {
	res := c.CheckNode(doc.Root(), nil)
	for _, f := range doc.Fragments() {
		res = append(res, c.CheckNode(f.Value, f.Path)...)
	}
	return res
}

// CheckNode walks one value. path is the prefix reported in violations.
func (c *Checker) CheckNode(y *ir.Node, path ir.Path) []Violation {
	var res []Violation
	c.walk(y, path, &res)
	return res
}

func (c *Checker) walk(y *ir.Node, path ir.Path, res *[]Violation) {
	if y.Constraint != "" {
		c.eval(y, path, res)
	}
	switch y.Type {
	case ir.ObjectType:
		for i := range y.Fields {
			c.walk(y.Values[i], path.Child(y.Fields[i].String), res)
		}
	case ir.ArrayType:
		for i, v := range y.Values {
			c.walk(v, path.Child(fmt.Sprintf("%d", i)), res)
		}
	}
}

func (c *Checker) eval(y *ir.Node, path ir.Path, res *[]Violation) {
	value := ir.ToAny(y)
	prog, err := c.compile(y.Constraint)
	if err != nil {
		*res = append(*res, Violation{
			Path: path.String(), Constraint: y.Constraint, Value: value, Err: err,
		})
		return
	}
	env := map[string]any{
		"value": value,
		"path":  path.String(),
	}
	out, err := expr.Run(prog, env)
	if debug.Check() {
		debug.Logf("constraint (%s) at %s: %v %v\n", y.Constraint, path, out, err)
	}
	if err != nil {
		*res = append(*res, Violation{
			Path: path.String(), Constraint: y.Constraint, Value: value, Err: err,
		})
		return
	}
	ok, isBool := out.(bool)
	if !isBool {
		*res = append(*res, Violation{
			Path: path.String(), Constraint: y.Constraint, Value: value,
			Err: fmt.Errorf("expression yields %T, want bool", out),
		})
		return
	}
	if !ok {
		*res = append(*res, Violation{
			Path: path.String(), Constraint: y.Constraint, Value: value,
		})
	}
}

func (c *Checker) compile(src string) (*vm.Program, error) {
	if prog, ok := c.programs[src]; ok {
		return prog, nil
	}
	if err, ok := c.errs[src]; ok {
		return nil, err
	}
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		c.errs[src] = err
		return nil, err
	}
	c.programs[src] = prog
	return prog, nil
}
