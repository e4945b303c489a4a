package table

import "errors"

var (
	// ErrColumnCount is returned by Push when the number of values does not
	// match the number of columns.
	ErrColumnCount = errors.New("invalid number of columns")

	// ErrClosed is returned by Push after the table has been closed.
	ErrClosed = errors.New("table closed")
)
