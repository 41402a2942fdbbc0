package block

import (
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// BasicBlock is a 3-D array with three labeled axes: samples, components,
// properties. Components and properties are typically shared by reference
// with other BasicBlocks in the same Block (or across Blocks, by value);
// samples is exclusively owned.
type BasicBlock struct {
	array      mtarray.Array
	samples    *labels.Table
	components *labels.Table
	properties *labels.Table
}

// NewBasicBlock validates array.Shape() == (samples.Count(), components.Count(),
// properties.Count()) and returns the bundle, or an mtserror.InvalidParameter
// naming which axis disagrees and the two mismatched sizes.
func NewBasicBlock(array mtarray.Array, samples, components, properties *labels.Table) (*BasicBlock, error) {
	if err := checkShape("basic block", array, samples, components, properties); err != nil {
		return nil, err
	}

	return &BasicBlock{array: array, samples: samples, components: components, properties: properties}, nil
}

func checkShape(context string, array mtarray.Array, samples, components, properties *labels.Table) error {
	shape := array.Shape()

	if shape.Samples != samples.Count() {
		return mtserror.InvalidParameterf(ErrShapeMismatch,
			"%s: array shape along axis 0 is %d but there are %d sample labels",
			context, shape.Samples, samples.Count())
	}

	if shape.Components != components.Count() {
		return mtserror.InvalidParameterf(ErrShapeMismatch,
			"%s: array shape along axis 1 is %d but there are %d component labels",
			context, shape.Components, components.Count())
	}

	if shape.Properties != properties.Count() {
		return mtserror.InvalidParameterf(ErrShapeMismatch,
			"%s: array shape along axis 2 is %d but there are %d property labels",
			context, shape.Properties, properties.Count())
	}

	return nil
}

// Array returns the underlying array handle.
func (b *BasicBlock) Array() mtarray.Array {
	return b.array
}

// Samples returns the sample axis labels.
func (b *BasicBlock) Samples() *labels.Table {
	return b.samples
}

// Components returns the component axis labels.
func (b *BasicBlock) Components() *labels.Table {
	return b.components
}

// Properties returns the property axis labels.
func (b *BasicBlock) Properties() *labels.Table {
	return b.properties
}
