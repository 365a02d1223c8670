package typedmap

import "errors"

var (
	// ErrNotFound is returned by Require when a key has no entry.
	ErrNotFound = errors.New("key not found")
	// ErrTypeMismatch is returned by Require when the stored value does not
	// have the key's declared type. This only happens when an identity was
	// reinterpreted through FromIdentity.
	ErrTypeMismatch = errors.New("stored value does not match key type")
)
