package tensor

import (
	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// SparseToProperties moves the key columns named in variables from the
// sparse key axis onto the properties axis, merging every group of blocks
// that share a remaining key row into one rectangular block (spec §4.E.4).
// A no-op if variables is empty. The tensor map is only mutated once every
// merge group has been built successfully (spec §4.E.8).
func (m *Map) SparseToProperties(variables []string) error {
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
		merged, err := m.mergeAlongProperties(group, varIdx, variables)
		if err != nil {
			return err
		}
		newBlocks[i] = merged
	}

	m.keys = newKeys
	m.blocks = newBlocks

	return nil
}

// mergeAlongProperties merges the blocks at m.blocks[group] into a single
// block, prepending varNames to the properties axis with the moved key
// values v_i projected from each source block's own key row (rather than
// indexing positionally into a pack-wide "moved values" table, which would
// misalign for merge groups beyond the first).
func (m *Map) mergeAlongProperties(group []int, varIdx []int, varNames []string) (*block.Block, error) {
	first := m.blocks[group[0]].Values()

	for _, idx := range group {
		if !m.blocks[idx].Values().Components().Equal(first.Components()) {
			return nil, mtserror.InvalidParameterf(ErrDifferentComponents,
				"can not merge blocks with different components labels, call components_to_properties first")
		}
	}

	propNames := append(append([]string{}, varNames...), first.Properties().Names()...)
	propBuilder := labels.NewBuilder(propNames)

	propRanges := make([]mtarray.PropRange, len(group))
	cursor := 0
	for gi, idx := range group {
		blk := m.blocks[idx].Values()
		v := m.keys.Project(m.keys.Row(idx), varIdx)

		start := cursor
		for p := 0; p < blk.Properties().Count(); p++ {
			row := append(append([]labels.Value{}, v...), blk.Properties().Row(p)...)
			if err := propBuilder.Add(row); err != nil {
				return nil, err
			}
			cursor++
		}

		propRanges[gi] = mtarray.PropRange{Start: start, Stop: cursor}
	}

	newProperties, err := propBuilder.Finish()
	if err != nil {
		return nil, err
	}

	var allSamples [][]labels.Value
	for _, idx := range group {
		allSamples = append(allSamples, m.blocks[idx].Values().Samples().Rows()...)
	}

	sampleBuilder := labels.NewBuilder(first.Samples().Names())
	for _, r := range sortedUniqueRows(allSamples) {
		if err := sampleBuilder.Add(r); err != nil {
			return nil, err
		}
	}

	newSamples, err := sampleBuilder.Finish()
	if err != nil {
		return nil, err
	}

	sampleMaps := make([][]int, len(group))
	for gi, idx := range group {
		blk := m.blocks[idx].Values()
		sampleMaps[gi] = make([]int, blk.Samples().Count())
		for j := 0; j < blk.Samples().Count(); j++ {
			newRow, ok := newSamples.Position(blk.Samples().Row(j))
			if !ok {
				panic("metatensor-core: merged sample row missing after just being inserted")
			}
			sampleMaps[gi][j] = newRow
		}
	}

	newShape := mtarray.Shape{
		Samples:    newSamples.Count(),
		Components: first.Components().Count(),
		Properties: newProperties.Count(),
	}

	newArray, err := first.Array().Create(newShape)
	if err != nil {
		return nil, mtserror.ArrayBackend(err)
	}

	for gi, idx := range group {
		blk := m.blocks[idx].Values()
		propRange := propRanges[gi]
		for j := 0; j < blk.Samples().Count(); j++ {
			if err := newArray.SetFrom(sampleMaps[gi][j], propRange, blk.Array(), j); err != nil {
				return nil, mtserror.ArrayBackend(err)
			}
		}
	}

	newBlock, err := block.NewBlock(newArray, newSamples, first.Components(), newProperties)
	if err != nil {
		return nil, err
	}

	for _, name := range m.blocks[group[0]].GradientsList() {
		mergedSamples, mergedArray, err := mergeGradientData(
			m.blocks, group, name, sampleMaps, propRanges, first.Components(), newProperties)
		if err != nil {
			return nil, err
		}

		if err := newBlock.AddGradient(name, mergedSamples, mergedArray); err != nil {
			return nil, err
		}
	}

	return newBlock, nil
}
