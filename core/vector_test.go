// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linear/core"
)

func TestNewVectorFrom_Copies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := core.NewVectorFrom(src)
	defer v.Release()

	src[0] = 100
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.Inc())
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func TestVector_AtSetBounds(t *testing.T) {
	v, err := core.NewVector(2)
	require.NoError(t, err)

	require.NoError(t, v.Set(1, 5))
	_, err = v.At(2)
	require.ErrorIs(t, err, core.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), core.ErrOutOfRange)

	require.NoError(t, v.Release())
	_, err = v.At(0)
	require.ErrorIs(t, err, core.ErrReleased)
	require.Nil(t, v.Values())
	require.Equal(t, "[released]", v.String())

	_, err = core.NewVector(-3)
	require.ErrorIs(t, err, core.ErrBadShape)
}

func TestVector_SubAliases(t *testing.T) {
	v := core.NewVectorFrom([]float64{0, 1, 2, 3, 4})
	s, err := v.Sub(1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, s.Values())
	require.Equal(t, 2, v.Buffer().Refs())

	require.NoError(t, s.Set(0, 10))
	require.Equal(t, []float64{0, 10, 2, 3, 4}, v.Values())

	_, err = v.Sub(3, 3)
	require.ErrorIs(t, err, core.ErrBadShape)

	empty, err := v.Sub(5, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.NoError(t, core.ValidateVector(empty))
}

func TestVector_SubOfStridedView(t *testing.T) {
	m, _ := core.NewMatrixFrom([][]float64{{1, 2}, {3, 4}, {5, 6}}, core.RowMajor)
	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, 2, col.Inc())

	tail, err := col.Sub(1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, tail.Values())
	require.Equal(t, 2, tail.Inc())
}

func TestValidateVector(t *testing.T) {
	require.ErrorIs(t, core.ValidateVector(nil), core.ErrNilView)

	v := core.NewVectorFrom([]float64{1})
	require.NoError(t, core.ValidateVector(v))
	require.NoError(t, core.ValidateLength(v, 1))
	require.ErrorIs(t, core.ValidateLength(v, 2), core.ErrDimension)

	_ = v.Release()
	require.ErrorIs(t, core.ValidateVector(v), core.ErrReleased)
}

func TestVector_EmptyStridedView(t *testing.T) {
	m, _ := core.NewMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
	col, err := m.Col(2)
	require.NoError(t, err)

	// offset 2 + 2*3 = 8 lies past the 6-value buffer
	empty, err := col.Sub(col.Len(), 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	require.NoError(t, core.ValidateVector(empty))

	x, n, inc := empty.Run()
	require.Nil(t, x)
	require.Zero(t, n)
	require.Equal(t, 3, inc)
	require.Empty(t, empty.Values())
	require.Equal(t, "[]", empty.String())
}

func TestValidateVector_LastElementBound(t *testing.T) {
	buf, _ := core.NewBuffer(4)
	tests := []struct {
		name      string
		off, n, i int
		want      error
	}{
		{"fits", 0, 2, 3, nil},
		{"last element past end", 1, 2, 3, core.ErrBadShape},
		{"zero stride", 0, 2, 0, core.ErrBadShape},
		{"empty past end", 9, 0, 1, nil},
	}
	for _, tc := range tests {
		v := core.NewVectorRaw_TestOnly(buf, tc.off, tc.n, tc.i)
		err := core.ValidateVector(v)
		if tc.want == nil {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, tc.want, tc.name)
		}
	}
}
