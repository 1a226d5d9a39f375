package ir

import "errors"

var (
	ErrParse      = errors.New("parse error")
	ErrInvalidKey = errors.New("invalid key")
)
