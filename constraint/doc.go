// Package constraint evaluates "(...)" annotations as expressions.
//
// The notation itself carries annotations opaquely; nothing in parsing
// or merging reads them. This package is the opt-in collaborator that
// does: each annotation is compiled as an expression over the annotated
// value and evaluated, and every annotation that does not come out true
// becomes a Violation.
//
//	checker := constraint.NewChecker()
//	for _, v := range checker.Check(doc) {
//	    fmt.Println(v)
//	}
//
// Inside an expression, "value" is the annotated value and "path" its
// dot-path.
package constraint
