package token

import "fmt"

type Type int

const (
	TBlank Type = iota
	TAbsHeader
	TRelHeader
	TBadHeader
	TKeyValue
	TScalar
	TMultilineStart
	TMultilineContent
	TMultilineEnd
)

func (t Type) String() string {
	return map[Type]string{
		TBlank:            "TBlank",
		TAbsHeader:        "TAbsHeader",
		TRelHeader:        "TRelHeader",
		TBadHeader:        "TBadHeader",
		TKeyValue:         "TKeyValue",
		TScalar:           "TScalar",
		TMultilineStart:   "TMultilineStart",
		TMultilineContent: "TMultilineContent",
		TMultilineEnd:     "TMultilineEnd",
	}[t]
}

type Token struct {
	Type Type
	Pos  Pos
	// Raw is the source line, exactly as read.
	Raw string

	// Path is the header path text, without the "#" prefix or the
	// terminating colon. Empty for the root header "#:".
	Path string

	Key        string
	Value      string
	Constraint string

	// QuoteLen is the opening quote-run length of a TMultilineStart.
	QuoteLen int

	// Quoted marks a TKeyValue whose value was written inside a
	// matched quote run. Quoted values are verbatim strings and are
	// never type-inferred.
	Quoted bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) IsHeader() bool {
	return t.Type == TAbsHeader || t.Type == TRelHeader
}

// IsKeyEvent reports whether the token begins a key/value-shaped event,
// counting multiline starts, which collapse into key/value events before
// section classification.
func (t *Token) IsKeyEvent() bool {
	return t.Type == TKeyValue || t.Type == TMultilineStart
}
