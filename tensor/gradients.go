package tensor

import (
	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// gradientOrigin tracks where one row of a merged gradient-samples table
// came from, so the data copy pass knows which source array/row/prop-range
// to pull from.
type gradientOrigin struct {
	group int // index into the merge group's block list
	row   int // row index within that block's gradient samples
}

// mergeGradientData builds the merged gradient-samples table and array for
// gradient parameter name across every block in the merge group, rewriting
// each old gradient sample's first column ("sample") from its block-local
// sample index to the merged sample index given by sampleMaps, per spec
// §4.E.4/§4.E.5. propRanges[gi] gives the properties-axis slice that
// group[gi]'s old data occupies in the merged properties axis (the full
// width for sparse_to_samples, a sub-range for sparse_to_properties).
func mergeGradientData(
	blocks []*block.Block,
	group []int,
	name string,
	sampleMaps [][]int,
	propRanges []mtarray.PropRange,
	components, properties *labels.Table,
) (*labels.Table, mtarray.Array, error) {
	first := blocks[group[0]].GetGradient(name)
	gradNames := first.Samples().Names()

	var rewritten [][]labels.Value
	var origins []gradientOrigin

	for gi, idx := range group {
		g := blocks[idx].GetGradient(name)
		for r := 0; r < g.Samples().Count(); r++ {
			row := append([]labels.Value{}, g.Samples().Row(r)...)
			oldSample := int(row[0].Int32())
			row[0] = labels.Value(sampleMaps[gi][oldSample])

			rewritten = append(rewritten, row)
			origins = append(origins, gradientOrigin{group: gi, row: r})
		}
	}

	sorted := sortedUniqueRows(rewritten)

	builder := labels.NewBuilder(gradNames)
	for _, r := range sorted {
		if err := builder.Add(r); err != nil {
			return nil, nil, err
		}
	}

	mergedSamples, err := builder.Finish()
	if err != nil {
		return nil, nil, err
	}

	shape := mtarray.Shape{
		Samples:    mergedSamples.Count(),
		Components: components.Count(),
		Properties: properties.Count(),
	}

	mergedArray, err := first.Array().Create(shape)
	if err != nil {
		return nil, nil, mtserror.ArrayBackend(err)
	}

	for i, row := range rewritten {
		origin := origins[i]
		newRow, ok := mergedSamples.Position(row)
		if !ok {
			panic("metatensor-core: merged gradient sample row missing after just being inserted")
		}

		src := blocks[group[origin.group]].GetGradient(name)
		if err := mergedArray.SetFrom(newRow, propRanges[origin.group], src.Array(), origin.row); err != nil {
			return nil, nil, mtserror.ArrayBackend(err)
		}
	}

	return mergedSamples, mergedArray, nil
}
