// Package token turns raw ADF text into a flat stream of line tokens.
//
// ADF is line oriented: every source line maps to exactly one token, and
// the only state carried across lines is whether a multiline quote-block
// is open and how long its closing quote run must be. That state lives in
// a per-call lexState threaded through Tokenize, so concurrent
// tokenizations cannot interfere.
//
// Token kinds follow the line shapes of the notation:
//
//	TBlank            an empty (or whitespace-only) line
//	TAbsHeader        "# path:" — absolute section header
//	TRelHeader        "path:" — relative section header
//	TBadHeader        "#"-prefixed header whose path does not parse
//	TKeyValue         "key = value" with optional "(constraint)"
//	TScalar           any other non-blank line (scalar array element)
//	TMultilineStart   "key = """..." opening a quote-block
//	TMultilineContent verbatim line inside an open quote-block
//	TMultilineEnd     line closing the block with an exact-length run
//
// Multiline blocks close only on a trailing quote run of exactly the
// opening length; longer runs are literal content, which is what lets a
// longer-delimited block embed shorter quoted spans.
package token
