package repository

import "errors"

// Sentinel errors returned by the data-access layer. Controllers map these
// to HTTP statuses.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
