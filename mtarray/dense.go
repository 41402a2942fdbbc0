package mtarray

// denseOrigin is the single origin tag used by every Dense array. Dense
// arrays are only ever compatible with other Dense arrays.
const denseOrigin uint64 = 0xD45E

// Dense is a row-major, float64-backed reference implementation of Array.
// Storage is laid out as data[s*Components*Properties + c*Properties + p],
// so a single sample's (components, properties) slab is contiguous and a
// full-properties-width SetFrom is one memcpy; a partial-properties-width
// SetFrom (the common case when merging along properties) is Components
// contiguous memcpys, one per component row.
type Dense struct {
	shape Shape
	data  []float64
}

// DenseOption configures NewDense, following the teacher's functional-option
// construction pattern (see core.GraphOption/builder.BuilderOption in the
// example pack).
type DenseOption func(*Dense)

// WithFill pre-fills every element of a newly allocated Dense array with
// value, instead of the default zero fill.
func WithFill(value float64) DenseOption {
	return func(d *Dense) {
		for i := range d.data {
			d.data[i] = value
		}
	}
}

// NewDense allocates a zero-filled Dense array of the given shape, applying
// any options in order.
func NewDense(shape Shape, opts ...DenseOption) *Dense {
	d := &Dense{shape: shape, data: make([]float64, shape.Count())}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewDenseFromSlice wraps an existing row-major slice. len(data) must equal
// shape.Count(); a violation panics immediately, since that is a
// programming error, not a runtime failure
// (spec §7: "panics ... are programming errors").
func NewDenseFromSlice(shape Shape, data []float64) *Dense {
	if len(data) != shape.Count() {
		panic("mtarray: data length does not match shape")
	}

	return &Dense{shape: shape, data: data}
}

// Origin returns the shared Dense backend tag.
func (d *Dense) Origin() uint64 {
	return denseOrigin
}

// Shape returns the current extent.
func (d *Dense) Shape() Shape {
	return d.shape
}

// At returns the scalar at (sample, component, property); exposed for
// tests and examples that need to read values back (the core itself never
// calls this).
func (d *Dense) At(sample, component, property int) float64 {
	return d.data[d.offset(sample, component, property)]
}

// Set writes the scalar at (sample, component, property); exposed for tests
// and examples building fixtures.
func (d *Dense) Set(sample, component, property int, value float64) {
	d.data[d.offset(sample, component, property)] = value
}

func (d *Dense) offset(sample, component, property int) int {
	return sample*d.shape.Components*d.shape.Properties + component*d.shape.Properties + property
}

// Reshape changes the array's shape in place, preserving the underlying
// data (interpreted in the new shape's row-major layout). The total
// element count must be unchanged.
func (d *Dense) Reshape(newShape Shape) error {
	if newShape.Count() != len(d.data) {
		return ErrShapeMismatch
	}

	d.shape = newShape

	return nil
}

// Create returns a new, zero-filled Dense array of newShape.
func (d *Dense) Create(newShape Shape) (Array, error) {
	return NewDense(newShape), nil
}

// SetFrom copies src[srcRow, :, :] into dst[dstRow, :, propRange].
func (d *Dense) SetFrom(dstRow int, propRange PropRange, src Array, srcRow int) error {
	srcDense, ok := src.(*Dense)
	if !ok {
		return ErrOriginMismatch
	}

	if srcDense.Origin() != d.Origin() {
		return ErrOriginMismatch
	}

	if propRange.Len() != srcDense.shape.Properties {
		return ErrElementCountMismatch
	}

	if srcDense.shape.Components != d.shape.Components {
		return ErrElementCountMismatch
	}

	components := d.shape.Components
	properties := srcDense.shape.Properties
	if propRange.Start == 0 && properties == d.shape.Properties {
		n := components * properties
		srcStart := srcDense.offset(srcRow, 0, 0)
		dstStart := d.offset(dstRow, 0, 0)
		copy(d.data[dstStart:dstStart+n], srcDense.data[srcStart:srcStart+n])

		return nil
	}

	for c := 0; c < components; c++ {
		srcStart := srcDense.offset(srcRow, c, 0)
		dstStart := d.offset(dstRow, c, propRange.Start)
		copy(d.data[dstStart:dstStart+properties], srcDense.data[srcStart:srcStart+properties])
	}

	return nil
}
