// Package parse turns ADF text into a Document.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(src))
//	if err != nil {
//	    return err
//	}
//	v := doc.Get(ir.Path{"person", "name"})
//
//	// strict mode, no type inference
//	doc, err = parse.Parse(src, parse.Strict(), parse.InferTypes(false))
//
// Parsing is a single synchronous pass: tokenize, split the token stream
// into header-bounded sections, classify each section's shape (scalar
// array, object array, plain object), build a value for it, and assemble
// values into the document — absolute sections merge into the root under
// augmentation semantics, relative sections append to the fragment list.
//
// The default mode is lenient: malformed lines and sections are skipped
// and recorded on the Document as diagnostics. Strict mode aborts at the
// first error. An unterminated multiline block always aborts; there is
// no safe point to resume after one.
//
// # Related Packages
//
//   - github.com/adf-format/go-adf/ir - value representation
//   - github.com/adf-format/go-adf/token - line tokenization
//   - github.com/adf-format/go-adf/encode - Document back to text
package parse
