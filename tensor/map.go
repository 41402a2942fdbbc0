package tensor

import (
	"strings"

	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// Map is the top-level container: a sparse key Label Table paired with a
// parallel vector of Blocks. The key table is immutable once constructed;
// reshape operations replace both keys and blocks wholesale and atomically
// (spec §4.E.8: on failure, the original pair is left untouched).
type Map struct {
	keys   *labels.Table
	blocks []*block.Block
}

// KeyBlock pairs one key row with its Block, returned by Pairs for
// read-only iteration (SPEC_FULL.md, supplemented from the original's
// Descriptor::iter).
type KeyBlock struct {
	Key   []labels.Value
	Block *block.Block
}

// New builds a Map from keys and blocks, validating keys.Count() ==
// len(blocks) and, for non-empty maps, that every block agrees on the
// values samples/components/properties column names and on the full set
// of gradient parameters (and each parameter's samples column names).
func New(keys *labels.Table, blocks []*block.Block) (*Map, error) {
	if keys.Count() != len(blocks) {
		return nil, mtserror.InvalidParameterf(ErrBlockCountMismatch,
			"expected the same number of blocks (%d) as entries in the keys labels, got %d",
			keys.Count(), len(blocks))
	}

	if len(blocks) > 0 {
		if err := checkConsistentBlocks(blocks); err != nil {
			return nil, err
		}
	}

	return &Map{keys: keys, blocks: blocks}, nil
}

func checkConsistentBlocks(blocks []*block.Block) error {
	first := blocks[0]
	sampleNames := first.Values().Samples().Names()
	componentNames := first.Values().Components().Names()
	propertyNames := first.Values().Properties().Names()

	gradientSampleNames := make(map[string][]string, len(first.GradientsList()))
	for _, name := range first.GradientsList() {
		gradientSampleNames[name] = first.GetGradient(name).Samples().Names()
	}

	for _, blk := range blocks {
		if !namesEqual(blk.Values().Samples().Names(), sampleNames) {
			return mtserror.InvalidParameterf(ErrInconsistentNames,
				"all blocks must have the same samples labels names, got [%s] and [%s]",
				join(blk.Values().Samples().Names()), join(sampleNames))
		}

		if !namesEqual(blk.Values().Components().Names(), componentNames) {
			return mtserror.InvalidParameterf(ErrInconsistentNames,
				"all blocks must have the same components labels names, got [%s] and [%s]",
				join(blk.Values().Components().Names()), join(componentNames))
		}

		if !namesEqual(blk.Values().Properties().Names(), propertyNames) {
			return mtserror.InvalidParameterf(ErrInconsistentNames,
				"all blocks must have the same properties labels names, got [%s] and [%s]",
				join(blk.Values().Properties().Names()), join(propertyNames))
		}

		gradientsList := blk.GradientsList()
		if len(gradientsList) != len(gradientSampleNames) {
			return mtserror.InvalidParameterf(ErrInconsistentGradients,
				"all blocks must carry the same set of gradients")
		}

		for _, name := range gradientsList {
			expected, ok := gradientSampleNames[name]
			if !ok {
				return mtserror.InvalidParameterf(ErrInconsistentGradients,
					"missing gradient with respect to %q in one of the blocks", name)
			}

			got := blk.GetGradient(name).Samples().Names()
			if !namesEqual(got, expected) {
				return mtserror.InvalidParameterf(ErrInconsistentNames,
					"all blocks must have the same sample labels names, got [%s] and [%s] for gradients with respect to %s",
					join(got), join(expected), name)
			}
		}
	}

	return nil
}

func namesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func join(names []string) string {
	return strings.Join(names, ", ")
}

// Keys returns the tensor map's sparse key Label Table.
func (m *Map) Keys() *labels.Table {
	return m.keys
}

// BlocksLen returns the number of blocks.
func (m *Map) BlocksLen() int {
	return len(m.blocks)
}

// BlockByIndex returns the i-th block.
func (m *Map) BlockByIndex(i int) *block.Block {
	return m.blocks[i]
}

// Pairs returns every (key row, block) pair, in key order.
func (m *Map) Pairs() []KeyBlock {
	out := make([]KeyBlock, len(m.blocks))
	for i, blk := range m.blocks {
		out[i] = KeyBlock{Key: m.keys.Row(i), Block: blk}
	}

	return out
}
