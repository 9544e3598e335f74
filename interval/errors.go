package interval

import "errors"

var (
	// ErrInvalidArgument indicates a malformed Partition call: an inverted
	// interval, a non-positive partition count, more partitions than
	// integers in the interval, or a non-integer input.
	ErrInvalidArgument = errors.New("interval: invalid argument")

	// ErrIndexOutOfRange indicates a sub-interval index outside [0, k).
	ErrIndexOutOfRange = errors.New("interval: index out of range")
)
