package tensor

import (
	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// SparseToSamples moves the key columns named in variables from the sparse
// key axis onto the samples axis, merging every group of blocks that share
// a remaining key row into one rectangular block (spec §4.E.5). A no-op if
// variables is empty.
func (m *Map) SparseToSamples(variables []string) error {
	if len(variables) == 0 {
		return nil
	}

	varIdx, remainIdx, err := resolveVariables(m.keys.Names(), variables)
	if err != nil {
		return err
	}

	newKeys, groups, err := splitKeys(m.keys, remainIdx)
	if err != nil {
		return err
	}

	newBlocks := make([]*block.Block, len(groups))
	for i, group := range groups {
		merged, err := m.mergeAlongSamples(group, varIdx, variables)
		if err != nil {
			return err
		}
		newBlocks[i] = merged
	}

	m.keys = newKeys
	m.blocks = newBlocks

	return nil
}

// mergeAlongSamples merges the blocks at m.blocks[group] into a single
// block, appending varNames to the samples axis with the moved key values
// v_i. Components and properties must be equal by value (labels.Table.Equal)
// across every block in the group; the first block's tables carry over by
// reference into the merged block.
func (m *Map) mergeAlongSamples(group []int, varIdx []int, varNames []string) (*block.Block, error) {
	first := m.blocks[group[0]].Values()

	for _, idx := range group {
		values := m.blocks[idx].Values()
		if !values.Components().Equal(first.Components()) {
			return nil, mtserror.InvalidParameterf(ErrDifferentComponents,
				"can not merge blocks with different components labels, call components_to_properties first")
		}
		if !values.Properties().Equal(first.Properties()) {
			return nil, mtserror.InvalidParameterf(ErrDifferentProperties,
				"sparse_to_samples currently requires all merged blocks to share the same properties labels")
		}
	}

	sampleNames := append(append([]string{}, first.Samples().Names()...), varNames...)
	sampleBuilder := labels.NewBuilder(sampleNames)

	sampleMaps := make([][]int, len(group))
	var allRows [][]labels.Value
	perBlockRows := make([][][]labels.Value, len(group))

	for gi, idx := range group {
		blk := m.blocks[idx].Values()
		v := m.keys.Project(m.keys.Row(idx), varIdx)

		rows := make([][]labels.Value, blk.Samples().Count())
		for j := 0; j < blk.Samples().Count(); j++ {
			row := append(append([]labels.Value{}, blk.Samples().Row(j)...), v...)
			rows[j] = row
		}
		perBlockRows[gi] = rows
		allRows = append(allRows, rows...)
	}

	for _, r := range sortedUniqueRows(allRows) {
		if err := sampleBuilder.Add(r); err != nil {
			return nil, err
		}
	}

	newSamples, err := sampleBuilder.Finish()
	if err != nil {
		return nil, err
	}

	for gi := range group {
		sampleMaps[gi] = make([]int, len(perBlockRows[gi]))
		for j, row := range perBlockRows[gi] {
			newRow, ok := newSamples.Position(row)
			if !ok {
				panic("metatensor-core: merged sample row missing after just being inserted")
			}
			sampleMaps[gi][j] = newRow
		}
	}

	newShape := mtarray.Shape{
		Samples:    newSamples.Count(),
		Components: first.Components().Count(),
		Properties: first.Properties().Count(),
	}

	newArray, err := first.Array().Create(newShape)
	if err != nil {
		return nil, mtserror.ArrayBackend(err)
	}

	fullRange := mtarray.PropRange{Start: 0, Stop: first.Properties().Count()}
	propRanges := make([]mtarray.PropRange, len(group))
	for gi, idx := range group {
		propRanges[gi] = fullRange
		blk := m.blocks[idx].Values()
		for j := 0; j < blk.Samples().Count(); j++ {
			if err := newArray.SetFrom(sampleMaps[gi][j], fullRange, blk.Array(), j); err != nil {
				return nil, mtserror.ArrayBackend(err)
			}
		}
	}

	newBlock, err := block.NewBlock(newArray, newSamples, first.Components(), first.Properties())
	if err != nil {
		return nil, err
	}

	for _, name := range m.blocks[group[0]].GradientsList() {
		mergedSamples, mergedArray, err := mergeGradientData(
			m.blocks, group, name, sampleMaps, propRanges, first.Components(), first.Properties())
		if err != nil {
			return nil, err
		}

		if err := newBlock.AddGradient(name, mergedSamples, mergedArray); err != nil {
			return nil, err
		}
	}

	return newBlock, nil
}
