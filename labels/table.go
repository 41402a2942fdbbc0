package labels

import (
	"sync"
)

// Table is an ordered, named, duplicate-free sequence of equal-arity rows.
// It is built once via Builder and is immutable afterward; Position is safe
// to call concurrently from multiple readers (the lazy index build is
// synchronized internally).
type Table struct {
	names []string
	rows  []row

	indexOnce sync.Once
	index     *rowIndex
}

// singleton is the shared neutral-element Table: arity 1, column "_", one
// row [0]. It never needs to be rebuilt so it is constructed once.
var singleton = &Table{names: []string{"_"}, rows: []row{{0}}}

// Singleton returns the arity-1, column "_", single-row [0] neutral element
// used for component and sparse axes that carry no real structure.
func Singleton() *Table {
	return singleton
}

// Names returns the table's column names, in order. Callers must not mutate
// the returned slice.
func (t *Table) Names() []string {
	return t.names
}

// Arity returns the number of columns (the length of every row).
func (t *Table) Arity() int {
	return len(t.names)
}

// Count returns the number of rows.
func (t *Table) Count() int {
	return len(t.rows)
}

// Row returns the i-th row. Callers must not mutate the returned slice.
func (t *Table) Row(i int) []Value {
	return t.rows[i]
}

// Position returns the index of row within the table, and true if found.
// Amortized O(1): the lookup hashes the row and probes a small bucket.
func (t *Table) Position(r []Value) (int, bool) {
	t.ensureIndex()

	i := t.index.position(t.rows, row(r))
	if i < 0 {
		return 0, false
	}

	return i, true
}

func (t *Table) ensureIndex() {
	t.indexOnce.Do(func() {
		t.index = newRowIndex(t.rows)
	})
}

// Equal reports whether two tables have identical column names and row
// sequences, in order. This is the value-equality relation spec §9 permits
// using in place of shared-table identity for the components/properties
// precondition of sparse_to_properties/sparse_to_samples.
func (t *Table) Equal(other *Table) bool {
	if t == other {
		return true
	}

	if other == nil || len(t.names) != len(other.names) || len(t.rows) != len(other.rows) {
		return false
	}

	for i, name := range t.names {
		if other.names[i] != name {
			return false
		}
	}

	for i, r := range t.rows {
		if !r.equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// Project returns a new slice holding only the values of r at the given
// column indices, in the order requested. Callers are expected to have
// already resolved every index to a valid column (see ColumnIndex).
func (t *Table) Project(r []Value, columns []int) []Value {
	out := make([]Value, len(columns))
	for i, c := range columns {
		out[i] = r[c]
	}

	return out
}

// ColumnIndex returns the position of name within t.Names(), or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}

	return -1
}

// Rows returns every row as a read-only view, in order. Exposed for callers
// that need to iterate the whole table (e.g. the reshape algebra).
func (t *Table) Rows() [][]Value {
	out := make([][]Value, len(t.rows))
	for i, r := range t.rows {
		out[i] = r
	}

	return out
}
