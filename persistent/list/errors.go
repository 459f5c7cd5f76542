package list

import "errors"

// ErrEmptyCollection is returned if an operation needs at least one element,
// but has been called on an empty list.
var ErrEmptyCollection = errors.New("empty collection")

// ErrIndexOutOfBounds is returned for indexed access with an index outside
// of [0…length). It is wrapped with details about the failing index;
// use errors.Is to test for it.
var ErrIndexOutOfBounds = errors.New("index out of bounds")
