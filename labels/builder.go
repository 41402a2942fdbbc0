package labels

import "github.com/lab-cosmo/metatensor-core/mtserror"

// Builder accumulates rows for a new Table. It rejects duplicate rows and
// arity mismatches as they are added so construction fails fast and at the
// point of the offending call, per spec §4.A.
type Builder struct {
	names   []string
	rows    []row
	buckets map[uint64][]int // same hashing scheme as rowIndex, grown incrementally
}

// NewBuilder starts a Builder for a table with the given column names.
// Each name must be a non-empty, ASCII-only string and the names must be
// pairwise distinct (an empty list is valid, arity 0); violations are
// reported lazily by Finish, not by Add, consistent with spec §4.A's "append-only
// construction via a builder" and the teacher's validate-at-use style
// (see builder/validators.go in the example pack).
func NewBuilder(names []string) *Builder {
	cp := make([]string, len(names))
	copy(cp, names)

	return &Builder{
		names:   cp,
		buckets: make(map[uint64][]int),
	}
}

// validateNames checks the column names invariant: every name non-empty
// and ASCII, and pairwise distinct. An empty list of names is valid (arity
// 0), per spec §3 ("all rows of equal arity N >= 0").
func validateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" || !isASCII(name) {
			return mtserror.InvalidParameterf(ErrBadName, "column name %q must be non-empty and ASCII-only", name)
		}

		if _, dup := seen[name]; dup {
			return mtserror.InvalidParameterf(ErrDuplicateName, "duplicate column name %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}

	return true
}

// Add appends a row. It fails with ErrArityMismatch if len(values) !=
// len(names), and ErrDuplicateRow if an identical row was already added.
func (b *Builder) Add(values []Value) error {
	if len(values) != len(b.names) {
		return mtserror.InvalidParameterf(ErrArityMismatch,
			"row has %d values, table arity is %d", len(values), len(b.names))
	}

	r := row(values).clone()
	key := hashRow(r)
	for _, candidate := range b.buckets[key] {
		if b.rows[candidate].equal(r) {
			return mtserror.InvalidParameterf(ErrDuplicateRow, "row %v already present", []Value(r))
		}
	}

	b.rows = append(b.rows, r)
	b.buckets[key] = append(b.buckets[key], len(b.rows)-1)

	return nil
}

// Finish validates the column names and freezes the accumulated rows into
// an immutable Table.
func (b *Builder) Finish() (*Table, error) {
	if err := validateNames(b.names); err != nil {
		return nil, err
	}

	return &Table{names: b.names, rows: b.rows}, nil
}

// MustFinish is Finish but panics on error; intended for tests and examples
// building tables whose names/rows are known valid at compile time.
func MustFinish(b *Builder) *Table {
	t, err := b.Finish()
	if err != nil {
		panic(err)
	}

	return t
}
