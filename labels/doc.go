// Package labels implements the Label Table: an ordered, named,
// duplicate-free table of signed 32-bit integer rows, plus the append-only
// Builder used to construct one.
//
// What:
//
//   - Value is a signed 32-bit label value, compared by value (no interning).
//   - Table is an immutable, ordered set of rows sharing one arity and one
//     sequence of distinct column names.
//   - Builder accumulates rows and rejects duplicates before Finish freezes
//     the result into a Table.
//   - Singleton() is the arity-1, name "_", single-row [0] neutral element
//     used for component and sparse axes that carry no real structure.
//
// Why:
//
//   - Every axis of a Basic Block (samples, components, properties) and the
//     sparse key axis of a Tensor Map is a Table; the reshape algebra spends
//     most of its time projecting, deduplicating and re-ordering rows of one.
//
// Complexity:
//
//   - Position: amortized O(1), backed by an xxhash bucket index built on
//     the first Position call (rows are immutable once Finish runs, so the
//     index never needs invalidating). Builder keeps its own incrementally
//     grown buckets for duplicate detection during Add.
//   - Row/Names/Count/Arity: O(1).
//
// Errors:
//
//	ErrBadName        - a column name is empty or contains a non-ASCII byte.
//	ErrDuplicateName  - two column names in one Builder are identical.
//	ErrArityMismatch  - Add() called with a row whose length != arity.
//	ErrDuplicateRow   - Add() called with a row already present in the table.
package labels
