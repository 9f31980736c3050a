package btree

import "errors"

// ErrKeyNotFound is returned by Map.Delete when no record carries the key.
// The map is left unchanged.
var ErrKeyNotFound = errors.New("btree: key not found")
