package tensor

import (
	"fmt"
	"strings"

	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// BlocksMatching returns every block whose key row matches selection on the
// columns selection names. An arity-0 selection matches every block (spec
// §4.E.2, the wildcard case).
func (m *Map) BlocksMatching(selection *labels.Table) ([]*block.Block, error) {
	indices, err := m.findMatchingBlocks(selection)
	if err != nil {
		return nil, err
	}

	out := make([]*block.Block, len(indices))
	for i, idx := range indices {
		out[i] = m.blocks[idx]
	}

	return out, nil
}

// Block returns the single block whose key row matches selection, failing
// with ErrNoUniqueMatch (naming how many blocks matched and the selection's
// name=value pairs) if the match count is not exactly one.
func (m *Map) Block(selection *labels.Table) (*block.Block, error) {
	indices, err := m.findMatchingBlocks(selection)
	if err != nil {
		return nil, err
	}

	if len(indices) != 1 {
		return nil, mtserror.InvalidParameterf(ErrNoUniqueMatch,
			"expected exactly one matching block for selection [%s], got %d",
			selectionSummary(selection), len(indices))
	}

	return m.blocks[indices[0]], nil
}

// BlocksMatchingMut is BlocksMatching under another name: the blocks
// returned share the same *block.Block pointers as the immutable accessors,
// kept only so callers mirroring the original's mutable/immutable API
// surface (spec §6) have both spellings available.
func (m *Map) BlocksMatchingMut(selection *labels.Table) ([]*block.Block, error) {
	return m.BlocksMatching(selection)
}

// BlockMut is Block under another name; see BlocksMatchingMut.
func (m *Map) BlockMut(selection *labels.Table) (*block.Block, error) {
	return m.Block(selection)
}

func (m *Map) findMatchingBlocks(selection *labels.Table) ([]int, error) {
	if selection.Arity() == 0 {
		indices := make([]int, len(m.blocks))
		for i := range m.blocks {
			indices[i] = i
		}

		return indices, nil
	}

	if selection.Count() != 1 {
		return nil, mtserror.InvalidParameterf(ErrSelectionRowCount,
			"selection labels must contain exactly one row, got %d", selection.Count())
	}

	columns := make([]int, selection.Arity())
	for i, name := range selection.Names() {
		col := m.keys.ColumnIndex(name)
		if col < 0 {
			return nil, mtserror.InvalidParameterf(ErrUnknownSelectionColumn,
				"%q is not one of the keys labels names [%s]", name, join(m.keys.Names()))
		}
		columns[i] = col
	}

	target := selection.Row(0)

	var matches []int
	for i := 0; i < m.keys.Count(); i++ {
		if rowMatches(m.keys.Project(m.keys.Row(i), columns), target) {
			matches = append(matches, i)
		}
	}

	return matches, nil
}

func rowMatches(a, b []labels.Value) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func selectionSummary(selection *labels.Table) string {
	if selection.Count() == 0 {
		return ""
	}

	row := selection.Row(0)
	parts := make([]string, len(selection.Names()))
	for i, name := range selection.Names() {
		parts[i] = fmt.Sprintf("%s = %d", name, row[i].Int32())
	}

	return strings.Join(parts, ", ")
}
