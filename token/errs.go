package token

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedMultiline is reported when input ends while a
	// quote-block is still open. There is no safe recovery point, so
	// it is surfaced even by lenient parsing.
	ErrUnterminatedMultiline = errors.New("unterminated multiline value")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
