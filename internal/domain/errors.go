package domain

import "errors"

var (
	// ErrNotFound - the upstream answered but had nothing for us.
	ErrNotFound = errors.New("record not found")
)
