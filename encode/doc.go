// Package encode renders IR nodes and documents as ADF text.
//
// # Usage
//
//	// Encode a root object as section text
//	err := encode.Encode(node, w)
//
//	// Encode a whole document, fragments included
//	err := encode.EncodeDocument(root, frags, w)
//
//	// Convert to another format
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/adf-format/go-adf/ir - IR representation
//   - github.com/adf-format/go-adf/parse - Parse text to IR
package encode
