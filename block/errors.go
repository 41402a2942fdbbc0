package block

import "errors"

// Sentinel errors for the block package.
var (
	// ErrShapeMismatch indicates the array's shape disagrees with the
	// samples/components/properties axis counts.
	ErrShapeMismatch = errors.New("block: array shape does not match axis labels")

	// ErrGradientExists indicates AddGradient was called twice with the same name.
	ErrGradientExists = errors.New("block: gradient with this name already exists")

	// ErrReservedName indicates AddGradient was called with the reserved name "values".
	ErrReservedName = errors.New("block: \"values\" is a reserved gradient name")

	// ErrEmptyName indicates AddGradient was called with an empty name.
	ErrEmptyName = errors.New("block: gradient name must not be empty")

	// ErrOriginMismatch indicates the gradient array has a different origin
	// than the values array.
	ErrOriginMismatch = errors.New("block: gradient array origin does not match values array origin")

	// ErrGradientArity indicates the gradient samples table has arity < 1.
	ErrGradientArity = errors.New("block: gradient samples table must have arity >= 1")

	// ErrGradientFirstColumn indicates the gradient samples table's first
	// column is not named "sample".
	ErrGradientFirstColumn = errors.New("block: gradient samples table's first column must be named \"sample\"")

	// ErrGradientSampleRange indicates a gradient sample's first-column
	// value falls outside [0, values.samples.Count()).
	ErrGradientSampleRange = errors.New("block: gradient sample index out of range of values samples")
)
