package domain

import "errors"

// ErrPlayerNotFound is the single caller-facing failure of a lookup.
// Transport errors and malformed documents are folded into it: the
// contract is a complete record or this sentinel, nothing in between.
var ErrPlayerNotFound = errors.New("player not found")
