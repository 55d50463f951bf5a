package hr

import "errors"

var (
	ErrNotFound      = errors.New("hr: record not found")
	ErrInvalidRecord = errors.New("hr: invalid record")
)
