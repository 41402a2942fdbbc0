package block

import (
	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// Block is a values BasicBlock plus zero or more named gradient
// BasicBlocks. Gradient BasicBlocks share the values' components and
// properties tables; their samples table has arity >= 1 with first column
// "sample", whose values index into values.Samples().
type Block struct {
	values        *BasicBlock
	gradients     map[string]*BasicBlock
	gradientOrder []string
}

// NewBlock builds the values BasicBlock and returns a Block with no
// gradients.
func NewBlock(array mtarray.Array, samples, components, properties *labels.Table) (*Block, error) {
	values, err := NewBasicBlock(array, samples, components, properties)
	if err != nil {
		return nil, err
	}

	return &Block{values: values, gradients: make(map[string]*BasicBlock)}, nil
}

// Values returns the block's values BasicBlock.
func (blk *Block) Values() *BasicBlock {
	return blk.values
}

// HasGradient reports whether a gradient named name exists on this block.
func (blk *Block) HasGradient(name string) bool {
	_, ok := blk.gradients[name]

	return ok
}

// GetGradient returns the gradient BasicBlock named name, or nil if absent.
func (blk *Block) GetGradient(name string) *BasicBlock {
	return blk.gradients[name]
}

// GradientsList returns gradient parameter names in insertion order.
func (blk *Block) GradientsList() []string {
	out := make([]string, len(blk.gradientOrder))
	copy(out, blk.gradientOrder)

	return out
}

// AddGradient adds a gradient named name, described by gradientSamples and
// gradientArray, which are validated against spec §4.D:
//
//   - name must be non-empty, != "values", and not already present.
//   - gradientArray.Origin() must equal values' array origin.
//   - gradientSamples must have arity >= 1 with first column named "sample".
//   - every value in gradientSamples' first column must be in
//     [0, values.Samples().Count()).
//   - gradientArray's shape must match (gradientSamples.Count(),
//     values.Components().Count(), values.Properties().Count()).
//
// On success, the gradient's components and properties are the values'
// tables (shared by reference).
func (blk *Block) AddGradient(name string, gradientSamples *labels.Table, gradientArray mtarray.Array) error {
	if name == "" {
		return mtserror.InvalidParameterf(ErrEmptyName, "gradient name must not be empty")
	}

	if name == "values" {
		return mtserror.InvalidParameterf(ErrReservedName, "can not store a gradient named \"values\"")
	}

	if _, exists := blk.gradients[name]; exists {
		return mtserror.InvalidParameterf(ErrGradientExists, "gradient with respect to %q already exists for this block", name)
	}

	if gradientArray.Origin() != blk.values.array.Origin() {
		return mtserror.InvalidParameterf(ErrOriginMismatch,
			"the gradient array has a different origin (%d) than the value array (%d)",
			gradientArray.Origin(), blk.values.array.Origin())
	}

	if gradientSamples.Arity() < 1 {
		return mtserror.InvalidParameterf(ErrGradientArity,
			"gradient samples labels must have arity >= 1, got %d", gradientSamples.Arity())
	}

	if gradientSamples.Names()[0] != "sample" {
		return mtserror.InvalidParameterf(ErrGradientFirstColumn,
			"first variable in the gradient samples labels must be \"sample\", got %q", gradientSamples.Names()[0])
	}

	sampleCount := blk.values.samples.Count()
	for i := 0; i < gradientSamples.Count(); i++ {
		idx := gradientSamples.Row(i)[0].Int32()
		if idx < 0 || int(idx) >= sampleCount {
			return mtserror.InvalidParameterf(ErrGradientSampleRange,
				"gradient sample index %d is out of range of the %d value samples", idx, sampleCount)
		}
	}

	if err := checkShape("gradient data and labels don't match", gradientArray, gradientSamples, blk.values.components, blk.values.properties); err != nil {
		return err
	}

	blk.gradients[name] = &BasicBlock{
		array:      gradientArray,
		samples:    gradientSamples,
		components: blk.values.components,
		properties: blk.values.properties,
	}
	blk.gradientOrder = append(blk.gradientOrder, name)

	return nil
}
