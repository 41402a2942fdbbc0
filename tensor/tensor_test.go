package tensor_test

import (
	"testing"

	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
	"github.com/lab-cosmo/metatensor-core/tensor"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, names []string, rows [][]labels.Value) *labels.Table {
	t.Helper()

	b := labels.NewBuilder(names)
	for _, r := range rows {
		require.NoError(t, b.Add(r))
	}
	tbl, err := b.Finish()
	require.NoError(t, err)

	return tbl
}

// col1 builds a single-column Label Table named name, one row per value.
func col1(t *testing.T, name string, values ...int32) *labels.Table {
	t.Helper()

	rows := make([][]labels.Value, len(values))
	for i, v := range values {
		rows[i] = []labels.Value{labels.Value(v)}
	}

	return buildTable(t, []string{name}, rows)
}

func constDense(t *testing.T, shape mtarray.Shape, value float64) *mtarray.Dense {
	t.Helper()

	data := make([]float64, shape.Count())
	for i := range data {
		data[i] = value
	}

	return mtarray.NewDenseFromSlice(shape, data)
}

func newValuesBlock(t *testing.T, samples, components, properties *labels.Table, value float64) *block.Block {
	t.Helper()

	shape := mtarray.Shape{Samples: samples.Count(), Components: components.Count(), Properties: properties.Count()}
	arr := constDense(t, shape, value)

	blk, err := block.NewBlock(arr, samples, components, properties)
	require.NoError(t, err)

	return blk
}

func TestMap_New_BlockCountMismatch(t *testing.T) {
	keys := col1(t, "sparse", 0, 1)
	_, err := tensor.New(keys, nil)
	require.ErrorIs(t, err, tensor.ErrBlockCountMismatch)
}

func TestMap_New_EmptyIsValid(t *testing.T) {
	keys := buildTable(t, []string{"sparse"}, nil)
	m, err := tensor.New(keys, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.BlocksLen())
}

func TestMap_New_InconsistentNames(t *testing.T) {
	samplesA := col1(t, "s", 0, 1)
	samplesB := buildTable(t, []string{"other"}, [][]labels.Value{{0}, {1}})
	components := col1(t, "c", 0)
	properties := col1(t, "f", 0)

	b0 := newValuesBlock(t, samplesA, components, properties, 1.0)
	b1 := newValuesBlock(t, samplesB, components, properties, 2.0)

	keys := col1(t, "sparse", 0, 1)
	_, err := tensor.New(keys, []*block.Block{b0, b1})
	require.ErrorIs(t, err, tensor.ErrInconsistentNames)
}

func TestMap_Selection(t *testing.T) {
	samples := col1(t, "s", 0, 1)
	components := col1(t, "c", 0)
	properties := col1(t, "f", 0)

	b0 := newValuesBlock(t, samples, components, properties, 1.0)
	b1 := newValuesBlock(t, samples, components, properties, 2.0)

	keys := buildTable(t, []string{"sparse_1", "sparse_2"}, [][]labels.Value{{0, 0}, {0, 1}})
	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	all, err := m.BlocksMatching(buildTable(t, nil, nil))
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := m.Block(buildTable(t, []string{"sparse_2"}, [][]labels.Value{{1}}))
	require.NoError(t, err)
	require.Same(t, b1, one)

	_, err = m.BlocksMatching(buildTable(t, []string{"nope"}, [][]labels.Value{{0}}))
	require.ErrorIs(t, err, tensor.ErrUnknownSelectionColumn)

	_, err = m.Block(buildTable(t, nil, nil))
	require.ErrorIs(t, err, tensor.ErrNoUniqueMatch)
}

// TestSparseToProperties_Scenario1 reproduces the spec's worked example: two
// of four blocks share a remaining key value and must merge along the
// properties axis with heterogeneous sample sets, component counts and
// property counts.
func TestSparseToProperties_Scenario1(t *testing.T) {
	keys := buildTable(t, []string{"sparse_1", "sparse_2"}, [][]labels.Value{
		{0, 0}, {1, 0}, {2, 2}, {2, 3},
	})

	componentsSmall := col1(t, "c", 0)
	componentsBig := col1(t, "c", 0, 1, 2)

	b0 := newValuesBlock(t, col1(t, "s", 0, 2, 4), componentsSmall, col1(t, "f", 0), 1.0)
	b1 := newValuesBlock(t, col1(t, "s", 0, 1, 3), componentsSmall, col1(t, "f", 3, 4, 5), 2.0)
	b2 := newValuesBlock(t, col1(t, "s", 0, 3, 6, 8), componentsBig, col1(t, "f", 0), 3.0)
	b3 := newValuesBlock(t, col1(t, "s", 0, 1, 2, 5), componentsBig, col1(t, "f", 0), 4.0)

	m, err := tensor.New(keys, []*block.Block{b0, b1, b2, b3})
	require.NoError(t, err)

	require.NoError(t, m.SparseToProperties([]string{"sparse_1"}))

	require.Equal(t, 3, m.BlocksLen())
	require.Equal(t, []string{"sparse_2"}, m.Keys().Names())
	require.Equal(t, []labels.Value{0}, m.Keys().Row(0))
	require.Equal(t, []labels.Value{2}, m.Keys().Row(1))
	require.Equal(t, []labels.Value{3}, m.Keys().Row(2))

	merged := m.BlockByIndex(0).Values()
	require.Equal(t, []string{"sparse_1", "f"}, merged.Properties().Names())
	require.Equal(t, [][]labels.Value{{0, 0}, {1, 3}, {1, 4}, {1, 5}}, merged.Properties().Rows())
	require.Equal(t, [][]labels.Value{{0}, {1}, {2}, {3}, {4}}, merged.Samples().Rows())

	arr := merged.Array().(*mtarray.Dense)
	expected := [][]float64{
		{1, 2, 2, 2},
		{0, 2, 2, 2},
		{1, 0, 0, 0},
		{0, 2, 2, 2},
		{1, 0, 0, 0},
	}
	for sample, row := range expected {
		for prop, want := range row {
			require.Equal(t, want, arr.At(sample, 0, prop), "sample %d prop %d", sample, prop)
		}
	}

	// singleton merge groups (blocks 2 and 3) keep their original array
	// shape and data, but still gain the moved "sparse_1" properties column
	// and a freshly-built (value-equal) samples table, since every
	// remaining-key group goes through the same merge procedure.
	for i, want := range []struct {
		block *block.Block
		value float64
	}{
		{b2, 3.0},
		{b3, 4.0},
	} {
		got := m.BlockByIndex(1 + i).Values()
		require.Equal(t, want.block.Values().Array().Shape(), got.Array().Shape())
		require.Equal(t, []string{"sparse_1", "f"}, got.Properties().Names())
		require.Equal(t, [][]labels.Value{{2, 0}}, got.Properties().Rows())
		require.Same(t, want.block.Values().Components(), got.Components())

		arr := got.Array().(*mtarray.Dense)
		for sample := 0; sample < arr.Shape().Samples; sample++ {
			for component := 0; component < arr.Shape().Components; component++ {
				require.Equal(t, want.value, arr.At(sample, component, 0))
			}
		}
	}
}

// TestSparseToProperties_FullMoveSingletonKeys moves every sparse key
// variable onto properties at once, exercising the new_keys.count == 1
// boundary case (spec §4.E.3, §8): the remaining keys table must be the
// singleton table, not an arity-0 table with one empty row.
func TestSparseToProperties_FullMoveSingletonKeys(t *testing.T) {
	keys := buildTable(t, []string{"sparse_1", "sparse_2"}, [][]labels.Value{{0, 0}, {1, 0}})

	components := col1(t, "c", 0)
	b0 := newValuesBlock(t, col1(t, "s", 0), components, col1(t, "f", 0), 1.0)
	b1 := newValuesBlock(t, col1(t, "s", 0), components, col1(t, "f", 0), 2.0)

	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	require.NoError(t, m.SparseToProperties([]string{"sparse_1", "sparse_2"}))

	require.Equal(t, 1, m.BlocksLen())
	require.Equal(t, 1, m.Keys().Arity())
	require.Equal(t, []string{"_"}, m.Keys().Names())
}

func TestSparseToSamples_FullMoveSingletonKeys(t *testing.T) {
	keys := buildTable(t, []string{"sparse_1", "sparse_2"}, [][]labels.Value{{0, 0}, {1, 0}})

	components := col1(t, "c", 0)
	properties := col1(t, "f", 0)
	b0 := newValuesBlock(t, col1(t, "s", 0), components, properties, 1.0)
	b1 := newValuesBlock(t, col1(t, "s", 1), components, properties, 2.0)

	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	require.NoError(t, m.SparseToSamples([]string{"sparse_1", "sparse_2"}))

	require.Equal(t, 1, m.BlocksLen())
	require.Equal(t, 1, m.Keys().Arity())
	require.Equal(t, []string{"_"}, m.Keys().Names())
}

func TestSparseToProperties_NoOpOnEmptyVariables(t *testing.T) {
	samples := col1(t, "s", 0)
	components := col1(t, "c", 0)
	properties := col1(t, "f", 0)
	blk := newValuesBlock(t, samples, components, properties, 1.0)

	keys := col1(t, "sparse", 0)
	m, err := tensor.New(keys, []*block.Block{blk})
	require.NoError(t, err)

	require.NoError(t, m.SparseToProperties(nil))
	require.Same(t, blk, m.BlockByIndex(0))
}

func TestSparseToProperties_DifferentComponents(t *testing.T) {
	samples := col1(t, "s", 0)
	properties := col1(t, "f", 0)

	b0 := newValuesBlock(t, samples, col1(t, "c", 0), properties, 1.0)
	b1 := newValuesBlock(t, samples, col1(t, "c", 1), properties, 2.0)

	keys := buildTable(t, []string{"sparse"}, [][]labels.Value{{0}, {1}})
	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	err = m.SparseToProperties([]string{"sparse"})
	require.ErrorIs(t, err, tensor.ErrDifferentComponents)
}

// TestSparseToProperties_GradientRemapping merges two blocks that each
// carry a gradient, and checks the merged gradient samples are rewritten
// and the data lands in the correct property range with zero-fill
// elsewhere.
func TestSparseToProperties_GradientRemapping(t *testing.T) {
	keys := buildTable(t, []string{"sparse_1", "sparse_2"}, [][]labels.Value{{0, 0}, {1, 0}})

	components := col1(t, "c", 0)
	propsB0 := col1(t, "f", 0)
	propsB1 := col1(t, "f", 3, 4, 5)

	samplesB0 := col1(t, "s", 0, 2, 4)
	samplesB1 := col1(t, "s", 0, 1, 3)

	b0, err := block.NewBlock(constDense(t, mtarray.Shape{Samples: 3, Components: 1, Properties: 1}, 1.0), samplesB0, components, propsB0)
	require.NoError(t, err)
	require.NoError(t, b0.AddGradient("parameter",
		buildTable(t, []string{"sample", "bar"}, [][]labels.Value{{0, -2}, {2, 3}}),
		constDense(t, mtarray.Shape{Samples: 2, Components: 1, Properties: 1}, 11.0)))

	b1, err := block.NewBlock(constDense(t, mtarray.Shape{Samples: 3, Components: 1, Properties: 3}, 2.0), samplesB1, components, propsB1)
	require.NoError(t, err)
	require.NoError(t, b1.AddGradient("parameter",
		buildTable(t, []string{"sample", "bar"}, [][]labels.Value{{0, 7}, {1, 8}}),
		constDense(t, mtarray.Shape{Samples: 2, Components: 1, Properties: 3}, 12.0)))

	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	require.NoError(t, m.SparseToProperties([]string{"sparse_1"}))

	merged := m.BlockByIndex(0)
	require.True(t, merged.HasGradient("parameter"))

	grad := merged.GetGradient("parameter")
	require.Equal(t, [][]labels.Value{{0, -2}, {0, 7}, {1, 8}, {4, 3}}, grad.Samples().Rows())

	arr := grad.Array().(*mtarray.Dense)
	expected := [][]float64{
		{11, 0, 0, 0},
		{0, 12, 12, 12},
		{0, 12, 12, 12},
		{11, 0, 0, 0},
	}
	for sample, row := range expected {
		for prop, want := range row {
			require.Equal(t, want, arr.At(sample, 0, prop), "sample %d prop %d", sample, prop)
		}
	}
}

// TestSparseToSamples exercises merging two blocks along the samples axis
// with disjoint sample sets, checking that each block's values land on its
// own merged rows and the appended moved variable column.
func TestSparseToSamples(t *testing.T) {
	components := col1(t, "c", 0)
	properties := col1(t, "f", 0, 1)

	b0 := newValuesBlock(t, col1(t, "s", 0, 1), components, properties, 1.0)
	b1 := newValuesBlock(t, col1(t, "s", 2, 3), components, properties, 2.0)

	keys := buildTable(t, []string{"remain", "moved"}, [][]labels.Value{{0, 10}, {0, 20}})
	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	require.NoError(t, m.SparseToSamples([]string{"moved"}))

	require.Equal(t, 1, m.BlocksLen())
	require.Equal(t, []string{"remain"}, m.Keys().Names())
	require.Equal(t, []labels.Value{0}, m.Keys().Row(0))

	merged := m.BlockByIndex(0).Values()
	require.Equal(t, []string{"s", "moved"}, merged.Samples().Names())
	require.Equal(t, [][]labels.Value{
		{0, 10}, {1, 10}, {2, 20}, {3, 20},
	}, merged.Samples().Rows())

	arr := merged.Array().(*mtarray.Dense)
	for sample := 0; sample < 2; sample++ {
		require.Equal(t, 1.0, arr.At(sample, 0, 0))
		require.Equal(t, 1.0, arr.At(sample, 0, 1))
	}
	for sample := 2; sample < 4; sample++ {
		require.Equal(t, 2.0, arr.At(sample, 0, 0))
		require.Equal(t, 2.0, arr.At(sample, 0, 1))
	}
}

func TestSparseToSamples_DifferentProperties(t *testing.T) {
	components := col1(t, "c", 0)
	b0 := newValuesBlock(t, col1(t, "s", 0), components, col1(t, "f", 0), 1.0)
	b1 := newValuesBlock(t, col1(t, "s", 1), components, col1(t, "f", 1), 2.0)

	keys := buildTable(t, []string{"remain", "moved"}, [][]labels.Value{{0, 0}, {0, 1}})
	m, err := tensor.New(keys, []*block.Block{b0, b1})
	require.NoError(t, err)

	err = m.SparseToSamples([]string{"moved"})
	require.ErrorIs(t, err, tensor.ErrDifferentProperties)
}

func TestComponentsToProperties(t *testing.T) {
	samples := col1(t, "s", 0, 1)
	components := col1(t, "c", 10, 11)
	properties := col1(t, "f", 20, 21, 22)

	blk := newValuesBlock(t, samples, components, properties, 5.0)
	keys := col1(t, "sparse", 0)

	m, err := tensor.New(keys, []*block.Block{blk})
	require.NoError(t, err)

	require.NoError(t, m.ComponentsToProperties())

	values := m.BlockByIndex(0).Values()
	require.Equal(t, []string{"c", "f"}, values.Properties().Names())
	require.Equal(t, 1, values.Components().Count())
	require.Equal(t, 6, values.Properties().Count())
	require.Equal(t, [][]labels.Value{
		{10, 20}, {10, 21}, {10, 22}, {11, 20}, {11, 21}, {11, 22},
	}, values.Properties().Rows())

	shape := values.Array().Shape()
	require.Equal(t, mtarray.Shape{Samples: 2, Components: 1, Properties: 6}, shape)
}

func TestComponentsToProperties_GradientsUnimplemented(t *testing.T) {
	samples := col1(t, "s", 0)
	components := col1(t, "c", 0)
	properties := col1(t, "f", 0)

	blk := newValuesBlock(t, samples, components, properties, 1.0)
	require.NoError(t, blk.AddGradient("param",
		buildTable(t, []string{"sample"}, [][]labels.Value{{0}}),
		constDense(t, mtarray.Shape{Samples: 1, Components: 1, Properties: 1}, 1.0)))

	keys := col1(t, "sparse", 0)
	m, err := tensor.New(keys, []*block.Block{blk})
	require.NoError(t, err)

	err = m.ComponentsToProperties()
	require.ErrorIs(t, err, tensor.ErrGradientsUnsupported)
	require.Equal(t, mtserror.Unimplemented, mtserror.KindOf(err))
}
