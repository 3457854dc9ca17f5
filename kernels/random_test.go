// SPDX-License-Identifier: MIT

package kernels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/kernels"
)

// seqSource replays a fixed list of 32-bit draws.
type seqSource struct {
	draws []uint32
	next  int
}

func (s *seqSource) Uint32() uint32 {
	u := s.draws[s.next%len(s.draws)]
	s.next++
	return u
}

func withRand(r *kernels.Rand) *kernels.Call {
	c := kernels.NewCall(args.Values{})
	c.Rand = r
	return c
}

func TestUniform_RangeAndDeterminism(t *testing.T) {
	a := make([]float64, 1000)
	b := make([]float64, 1000)
	require.NoError(t, kernels.Uniform(len(a), a, 1, withRand(kernels.NewRand(42))))
	require.NoError(t, kernels.Uniform(len(b), b, 1, withRand(kernels.NewRand(42))))
	require.Equal(t, a, b)

	var mean float64
	for _, v := range a {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		mean += v
	}
	mean /= float64(len(a))
	require.InDelta(t, 0.5, mean, 0.05)
}

func TestUniform_ScaleEndpoints(t *testing.T) {
	src := &seqSource{draws: []uint32{0, math.MaxUint32}}
	x := make([]float64, 2)
	require.NoError(t, kernels.Uniform(2, x, 1, withRand(kernels.NewRandSource(src))))
	require.Equal(t, 0.0, x[0])
	require.Less(t, x[1], 1.0)
}

func TestNormal_PairsAndOddTail(t *testing.T) {
	// u1 = u2 = 1 after the (u+1)/2^32 mapping, so r = 0 and every output is 0
	// while exactly two draws are consumed per pair.
	src := &seqSource{draws: []uint32{math.MaxUint32}}
	x := make([]float64, 3)
	require.NoError(t, kernels.Normal(3, x, 1, withRand(kernels.NewRandSource(src))))
	require.Equal(t, []float64{0, 0, 0}, x)
	require.Equal(t, 4, src.next)
}

func TestNormal_Strided(t *testing.T) {
	x := []float64{7, 7, 7, 7, 7}
	require.NoError(t, kernels.Normal(3, x, 2, withRand(kernels.NewRand(3))))
	require.Equal(t, 7.0, x[1])
	require.Equal(t, 7.0, x[3])
	for _, p := range []int{0, 2, 4} {
		require.False(t, math.IsNaN(x[p]))
		require.False(t, math.IsInf(x[p], 0))
	}
}

func TestNormal_Moments(t *testing.T) {
	const n = 20000
	x := make([]float64, n)
	require.NoError(t, kernels.Normal(n, x, 1, withRand(kernels.NewRand(11))))

	mean := kernels.Mean(n, x, 1, nil)
	sd := kernels.Std(n, x, 1, ddof(0))
	require.InDelta(t, 0, mean, 0.05)
	require.InDelta(t, 1, sd, 0.05)
}

func TestRand_Reseed(t *testing.T) {
	r := kernels.NewRand(5)
	first := r.Float64()
	r.Seed(5)
	require.Equal(t, first, r.Float64())
	require.NotNil(t, kernels.Default())
}
