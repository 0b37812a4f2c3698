package model

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when a row or column is outside the grid
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrAllocation is returned when width*height does not fit the 32-bit index space
	ErrAllocation = errors.New("grid too large to allocate")
	// ErrInvalidDimensions is returned for a zero width or height
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrStaleView is returned when a View is read after the grid was mutated
	ErrStaleView = errors.New("view invalidated by grid mutation")
)
