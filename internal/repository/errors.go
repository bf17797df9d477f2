package repository

import "errors"

// ErrNotFound is returned when a referenced entity is absent from the
// document. Services translate it into the HTTP-aware error type.
var ErrNotFound = errors.New("record not found")

// errNotFound is the internal alias used inside update closures.
var errNotFound = ErrNotFound
