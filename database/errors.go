package database

import "errors"

var (
	// ErrNotFound is returned by repositories when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when a conditional update matched nothing.
	ErrConflict = errors.New("document changed concurrently")
)
