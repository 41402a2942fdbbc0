// Package mtarray defines the Array Handle contract: the opaque,
// five-method interface the core calls into for every numeric backend
// (plain memory, an external ndarray, a GPU buffer), plus Dense, one
// in-memory reference implementation used to exercise and test the
// reshape algebra.
//
// What:
//
//   - Array is the polymorphic handle: Origin, Shape, Reshape, Create,
//     SetFrom. The core never reads element values through it.
//   - Dense is a row-major, float64-backed Array suitable for tests,
//     examples, and small real workloads.
//
// Why:
//
//   - Keeping the numeric backend behind a narrow interface is what lets
//     tensor.Map merge heterogeneous blocks without knowing how their
//     storage is laid out; it only ever allocates via Create and copies via
//     SetFrom.
//
// Complexity:
//
//   - All five methods are defined to run in time proportional to the data
//     they move (or O(1) for Origin/Shape); SetFrom is the hot path and
//     must be a contiguous memcpy when storage is row-major on the last two
//     axes (spec §4.B).
//
// Errors:
//
//	ErrShapeMismatch         - Reshape requested a shape with a different element count.
//	ErrOriginMismatch        - SetFrom given a source of a different origin.
//	ErrElementCountMismatch  - SetFrom given a prop range/shape that disagrees with src/dst.
package mtarray
