// Package tensor implements the Tensor Map: a sparse key Label Table
// paired with a parallel vector of Blocks, plus the reshape algebra that
// moves key variables between the sparse-key axis, the sample axis, and
// the property axis.
//
// What:
//
//   - Map holds (keys, blocks) with keys.Count() == len(blocks) and the
//     cross-block invariants of spec §3: every block agrees on its values
//     samples/components/properties column names and on the full set of
//     gradient parameter names (and each parameter's samples column names).
//   - BlocksMatching/Block select blocks by a partial or full key row.
//   - SparseToProperties/SparseToSamples move key variables to the
//     properties/samples axis, merging heterogeneously-shaped blocks into
//     one rectangular block per remaining key value.
//   - ComponentsToProperties flattens the components axis into properties,
//     one block at a time, by a pure reshape (no data movement), with
//     gradients left unimplemented exactly as in the original this module
//     is grounded on.
//
// Why:
//
//   - This is the hard 50% of the system: it must merge blocks of
//     different shapes into one rectangular array while preserving
//     per-row sample/property identity, re-index gradient sample tables
//     through the merge, and do all of it only through the opaque
//     mtarray.Array abstraction (Create/SetFrom), never reading an
//     element value directly.
//
// Complexity:
//
//   - New: O(blocks) to check cross-block invariants.
//   - BlocksMatching: a linear scan of the keys, O(blocks · selection
//     arity) to project and compare every key row.
//   - SparseToProperties/SparseToSamples: O(total elements moved) for the
//     data copies, plus O(merged rows · log(merged rows)) for the
//     btree-backed sorted merge of sample/gradient-sample sets.
//   - ComponentsToProperties: O(components · properties) per block to
//     build the Cartesian-product property table; the array itself is
//     reshaped in place, not copied.
//
// Concurrency:
//
//   - A Map is not internally synchronized (spec §5): callers must not
//     mutate one concurrently, nor mutate while reading from another
//     goroutine. Read-only sharing of an immutable Map across goroutines
//     is safe provided the underlying Array implementation's reads are.
//
// Errors:
//
//	ErrBlockCountMismatch     - keys.Count() != len(blocks).
//	ErrInconsistentNames      - blocks disagree on an axis' column names.
//	ErrInconsistentGradients  - blocks disagree on the gradient parameter set.
//	ErrUnknownSelectionColumn - a selection/variable column isn't a key column.
//	ErrSelectionRowCount      - a non-wildcard selection table does not have exactly one row.
//	ErrNoUniqueMatch          - block(selection) matched != 1 block.
//	ErrDifferentComponents    - merge group's blocks don't share components.
//	ErrDifferentProperties    - merge group's blocks don't share properties
//	                            (sparse_to_samples only).
//	ErrGradientsUnsupported   - components_to_properties on a block with gradients.
package tensor
