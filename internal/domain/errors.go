package domain

import "errors"

var (
	ErrQuoteNotFound = errors.New("quote not found")
	ErrInvalidPair   = errors.New("invalid pair")
)
