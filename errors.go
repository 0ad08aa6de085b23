package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals a rank outside [-Len(), Len()-1].
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidSliceStep signals a slice request with step 0.
	ErrInvalidSliceStep = errors.New("btree: slice step must not be zero")
	// ErrInvariantViolation is reported by Check for a structurally corrupt
	// tree. A corrupt tree cannot be repaired in place.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
