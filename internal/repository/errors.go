package repository

import "errors"

// ErrNotFound indicates the requested record does not exist.
// Repository implementations map their backend's no-rows condition to
// this sentinel so callers can branch with errors.Is.
var ErrNotFound = errors.New("not found")
