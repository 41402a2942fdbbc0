package tensor

import "errors"

// Sentinel errors for the tensor package.
var (
	// ErrBlockCountMismatch indicates keys.Count() != len(blocks) at construction.
	ErrBlockCountMismatch = errors.New("tensor: number of keys does not match number of blocks")

	// ErrInconsistentNames indicates two blocks disagree on an axis' column names.
	ErrInconsistentNames = errors.New("tensor: blocks disagree on axis column names")

	// ErrInconsistentGradients indicates two blocks carry different gradient parameter sets.
	ErrInconsistentGradients = errors.New("tensor: blocks disagree on the set of gradient parameters")

	// ErrUnknownSelectionColumn indicates a requested column name is not a key column.
	ErrUnknownSelectionColumn = errors.New("tensor: column is not part of the keys labels")

	// ErrSelectionRowCount indicates a selection table does not contain exactly one row.
	ErrSelectionRowCount = errors.New("tensor: selection labels must contain a single row")

	// ErrNoUniqueMatch indicates block(selection) matched a number of blocks != 1.
	ErrNoUniqueMatch = errors.New("tensor: selection did not match exactly one block")

	// ErrDifferentComponents indicates a merge group's blocks do not share
	// one components table, and components_to_properties must run first.
	ErrDifferentComponents = errors.New("tensor: blocks in merge group have different components labels")

	// ErrDifferentProperties indicates a merge group's blocks do not share
	// one properties table (sparse_to_samples requires this today).
	ErrDifferentProperties = errors.New("tensor: blocks in merge group have different properties labels")

	// ErrGradientsUnsupported indicates components_to_properties was called
	// on a tensor map where at least one block carries gradients.
	ErrGradientsUnsupported = errors.New("tensor: components_to_properties does not support blocks with gradients")
)
