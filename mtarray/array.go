package mtarray

// Shape is the (samples, components, properties) extent of a 3-D array.
type Shape struct {
	Samples    int
	Components int
	Properties int
}

// Count returns the total number of scalar elements described by the shape.
func (s Shape) Count() int {
	return s.Samples * s.Components * s.Properties
}

// PropRange is a contiguous half-open range [Start, Stop) along the
// properties axis, used by SetFrom to place a source block's properties at
// their slice of a merged destination's properties axis.
type PropRange struct {
	Start int
	Stop  int
}

// Len returns Stop - Start.
func (r PropRange) Len() int {
	return r.Stop - r.Start
}

// Array is the opaque handle over a 3-D dense array of scalars that the
// core calls into. The core never reads element values directly; it only
// invokes these five methods (spec §3, §4.B).
//
// All arrays participating in one Tensor Map must share an Origin. Methods
// may fail with a backend-specific error, which the core forwards verbatim
// wrapped as mtserror.ArrayBackendError.
type Array interface {
	// Origin returns an opaque tag identifying the backend. All arrays in
	// one tensor map must share an origin.
	Origin() uint64

	// Shape returns the current (samples, components, properties) extent.
	Shape() Shape

	// Reshape changes the array's shape in place. The total element count
	// must be preserved; mismatch is a total failure.
	Reshape(newShape Shape) error

	// Create returns a new, zero-filled array of newShape sharing this
	// array's origin.
	Create(newShape Shape) (Array, error)

	// SetFrom copies src[srcRow, :, :] into dst[dstRow, :, propRange].
	// propRange.Len() must equal src.Shape().Properties, and
	// src.Shape().Components must equal dst.Shape().Components.
	SetFrom(dstRow int, propRange PropRange, src Array, srcRow int) error
}
