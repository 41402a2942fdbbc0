package tensor

import (
	"github.com/lab-cosmo/metatensor-core/block"
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// ComponentsToProperties flattens the components axis into the properties
// axis, one block at a time, by reshaping the existing array in place
// rather than copying it (spec §4.E.6). It is only defined for blocks
// without gradients and fails Unimplemented otherwise, exactly as the
// original this module is grounded on does.
func (m *Map) ComponentsToProperties() error {
	for _, blk := range m.blocks {
		if len(blk.GradientsList()) > 0 {
			return &mtserror.Error{
				Kind:    mtserror.Unimplemented,
				Message: "components_to_properties does not support blocks with gradients yet",
				Cause:   ErrGradientsUnsupported,
			}
		}
	}

	newBlocks := make([]*block.Block, len(m.blocks))
	for i, blk := range m.blocks {
		nb, err := componentsToPropertiesOne(blk)
		if err != nil {
			return err
		}
		newBlocks[i] = nb
	}

	m.blocks = newBlocks

	return nil
}

func componentsToPropertiesOne(blk *block.Block) (*block.Block, error) {
	values := blk.Values()
	components := values.Components()
	properties := values.Properties()

	newNames := append(append([]string{}, components.Names()...), properties.Names()...)
	builder := labels.NewBuilder(newNames)

	for c := 0; c < components.Count(); c++ {
		for p := 0; p < properties.Count(); p++ {
			row := append(append([]labels.Value{}, components.Row(c)...), properties.Row(p)...)
			if err := builder.Add(row); err != nil {
				return nil, err
			}
		}
	}

	newProperties, err := builder.Finish()
	if err != nil {
		return nil, err
	}

	newShape := mtarray.Shape{
		Samples:    values.Samples().Count(),
		Components: 1,
		Properties: components.Count() * properties.Count(),
	}

	if err := values.Array().Reshape(newShape); err != nil {
		return nil, mtserror.ArrayBackend(err)
	}

	return block.NewBlock(values.Array(), values.Samples(), labels.Singleton(), newProperties)
}
