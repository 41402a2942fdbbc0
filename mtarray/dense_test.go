package mtarray_test

import (
	"testing"

	"github.com/lab-cosmo/metatensor-core/mtarray"
	"github.com/stretchr/testify/require"
)

func TestDense_SetFromFullWidth(t *testing.T) {
	src := mtarray.NewDense(mtarray.Shape{Samples: 2, Components: 1, Properties: 3})
	src.Set(0, 0, 0, 1)
	src.Set(0, 0, 1, 2)
	src.Set(0, 0, 2, 3)

	dst := mtarray.NewDense(mtarray.Shape{Samples: 1, Components: 1, Properties: 3})
	require.NoError(t, dst.SetFrom(0, mtarray.PropRange{Start: 0, Stop: 3}, src, 0))

	require.Equal(t, 1.0, dst.At(0, 0, 0))
	require.Equal(t, 2.0, dst.At(0, 0, 1))
	require.Equal(t, 3.0, dst.At(0, 0, 2))
}

func TestDense_SetFromPartialWidth(t *testing.T) {
	src := mtarray.NewDense(mtarray.Shape{Samples: 1, Components: 2, Properties: 2})
	src.Set(0, 0, 0, 10)
	src.Set(0, 0, 1, 11)
	src.Set(0, 1, 0, 20)
	src.Set(0, 1, 1, 21)

	dst := mtarray.NewDense(mtarray.Shape{Samples: 1, Components: 2, Properties: 5})
	require.NoError(t, dst.SetFrom(0, mtarray.PropRange{Start: 2, Stop: 4}, src, 0))

	require.Equal(t, 0.0, dst.At(0, 0, 0))
	require.Equal(t, 10.0, dst.At(0, 0, 2))
	require.Equal(t, 11.0, dst.At(0, 0, 3))
	require.Equal(t, 0.0, dst.At(0, 0, 4))
	require.Equal(t, 20.0, dst.At(0, 1, 2))
	require.Equal(t, 21.0, dst.At(0, 1, 3))
}

func TestDense_ReshapePreservesData(t *testing.T) {
	d := mtarray.NewDense(mtarray.Shape{Samples: 2, Components: 3, Properties: 1})
	d.Set(1, 2, 0, 42)

	require.NoError(t, d.Reshape(mtarray.Shape{Samples: 2, Components: 1, Properties: 3}))
	require.Equal(t, 42.0, d.At(1, 0, 2))

	err := d.Reshape(mtarray.Shape{Samples: 2, Components: 2, Properties: 2})
	require.ErrorIs(t, err, mtarray.ErrShapeMismatch)
}

func TestDense_SetFromComponentMismatch(t *testing.T) {
	src := mtarray.NewDense(mtarray.Shape{Samples: 1, Components: 2, Properties: 1})
	dst := mtarray.NewDense(mtarray.Shape{Samples: 1, Components: 3, Properties: 1})

	err := dst.SetFrom(0, mtarray.PropRange{Start: 0, Stop: 1}, src, 0)
	require.ErrorIs(t, err, mtarray.ErrElementCountMismatch)
}
