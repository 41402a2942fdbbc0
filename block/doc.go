// Package block implements the Basic Block and Block types: the dense
// (array, samples, components, properties) bundle and the value-plus-
// gradients wrapper around it.
//
// What:
//
//   - BasicBlock pairs one mtarray.Array with three labels.Table axes,
//     validated so array.Shape() == (samples.Count(), components.Count(),
//     properties.Count()).
//   - Block is a values BasicBlock plus a name -> gradient BasicBlock map,
//     with gradient names addressable both by string and by stable index.
//
// Why:
//
//   - This is the unit tensor.Map merges during a reshape: every operation
//     in the reshape algebra reads a block's three axes and its gradients,
//     and writes a freshly-merged one.
//
// Complexity:
//
//   - NewBasicBlock/NewBlock: O(1) beyond the shape check.
//   - AddGradient: O(1) beyond validating the gradient's sample column
//     values are in range, which is O(gradient samples.Count()).
//   - GetGradient/HasGradient: O(1) map lookup.
//   - GradientsList: O(number of gradients), returns a copy of the
//     insertion-ordered name slice.
//
// Errors:
//
//	ErrShapeMismatch        - array shape disagrees with the three axes.
//	ErrGradientExists       - AddGradient called twice with the same name.
//	ErrReservedName         - AddGradient("values", ...).
//	ErrEmptyName            - AddGradient("", ...).
//	ErrOriginMismatch       - gradient array origin != values array origin.
//	ErrGradientArity        - gradient samples table has arity 0.
//	ErrGradientFirstColumn  - gradient samples' first column isn't "sample".
//	ErrGradientSampleRange  - a gradient sample index is out of [0, samples.Count()).
package block
