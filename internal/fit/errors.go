package fit

import "errors"

// ErrMissingModel is returned when a Problem is evaluated without a forward
// model callable and without a custom energy function. This is a
// configuration error, not recoverable at evaluation time.
var ErrMissingModel = errors.New("fit: no model function supplied")

// ErrDimensionMismatch is returned when data, parameter or bound lengths
// disagree.
var ErrDimensionMismatch = errors.New("fit: dimension mismatch")
