package mtarray

import "errors"

// Sentinel errors for the mtarray package.
var (
	// ErrShapeMismatch indicates Reshape was asked for a shape whose total
	// element count differs from the current one.
	ErrShapeMismatch = errors.New("mtarray: reshape changes total element count")

	// ErrOriginMismatch indicates two arrays participating in one operation
	// do not share an origin tag.
	ErrOriginMismatch = errors.New("mtarray: arrays have different origins")

	// ErrElementCountMismatch indicates a SetFrom call's property range or
	// component count disagrees between source and destination.
	ErrElementCountMismatch = errors.New("mtarray: source and destination shapes disagree")
)
