package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waytour/weight"
)

type meters float64

type seconds int32

func TestInfinity(t *testing.T) {
	require.True(t, math.IsInf(weight.Infinity[float64](), 1))
	require.True(t, math.IsInf(float64(weight.Infinity[meters]()), 1))
	require.Equal(t, int64(math.MaxInt64), weight.Infinity[int64]())
	require.Equal(t, seconds(math.MaxInt32), weight.Infinity[seconds]())
	require.Equal(t, math.MaxInt, weight.Infinity[int]())
}

func TestAdd_Saturates(t *testing.T) {
	require.Equal(t, 5.0, weight.Add(2.0, 3.0))

	inf := weight.Infinity[float64]()
	require.Equal(t, inf, weight.Add(inf, 1))
	require.Equal(t, inf, weight.Add(-1e300, inf))

	iinf := weight.Infinity[int64]()
	require.Equal(t, iinf, weight.Add(iinf, 7))
	require.Equal(t, iinf, weight.Add(int64(math.MaxInt64-1), 5), "overflow clamps to infinity")
	require.Equal(t, int64(math.MinInt64), weight.Add(int64(math.MinInt64+1), -5))
	require.True(t, weight.IsInf(weight.Add(seconds(math.MaxInt32), 1)))
}

func TestZeroAndSum(t *testing.T) {
	require.Equal(t, 0.0, weight.Zero[float64]())
	require.Equal(t, int64(0), weight.Zero[int64]())
	require.Equal(t, meters(12), weight.Sum[meters](5, 7))
	require.True(t, weight.IsInf(weight.Sum(1, weight.Infinity[int](), -3)))
	require.True(t, weight.Less(1.0, 2.0))
	require.False(t, weight.Less(math.NaN(), 2.0))
}
