package afield

import (
	"github.com/pkg/errors"
)

var (
	// ErrRange marks a write outside a field's declared bounds, or a
	// bit/list index outside its valid range. The offending operation is
	// rejected and the underlying data is left untouched.
	ErrRange = errors.New("value out of range")

	// ErrCapacity marks an append or bulk fill that would exceed a
	// fixed-capacity structure.
	ErrCapacity = errors.New("capacity exceeded")
)
