package labels

import "errors"

// Sentinel errors for the labels package. Builder wraps each of these in an
// mtserror.Error (Kind: InvalidParameter) at the point it is returned, so
// callers can both switch on mtserror.KindOf and errors.Is against the
// sentinel underneath.
var (
	// ErrBadName indicates a column name is empty or contains a non-ASCII byte.
	ErrBadName = errors.New("labels: column name must be non-empty and ASCII-only")

	// ErrDuplicateName indicates two column names within one table collide.
	ErrDuplicateName = errors.New("labels: duplicate column name")

	// ErrArityMismatch indicates a row's length does not match the table's arity.
	ErrArityMismatch = errors.New("labels: row arity does not match table arity")

	// ErrDuplicateRow indicates an appended row already exists in the table.
	ErrDuplicateRow = errors.New("labels: duplicate row")
)
