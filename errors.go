package sqlite

import "errors"

var (
	// ErrInvalidArgument signals a nil bind value in a where-args list.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedWhere signals a mismatch between (?) placeholders in a
	// where clause and the number of args supplied for it.
	ErrMalformedWhere = errors.New("malformed where clause")
	// ErrDataAccess signals an underlying cursor read or close failure.
	ErrDataAccess = errors.New("data access error")
)
