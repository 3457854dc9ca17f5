// SPDX-License-Identifier: MIT
// Package dispatch_test verifies operand routing and run slicing.
//
// Purpose:
//   - Anchor the equivalence of the flat fast path and per-major iteration.
//   - Cover every storage order × reduction axis combination.
//   - Lock in error kinds for bad operands and mismatched outputs.

package dispatch_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
	"github.com/katalvlaran/linear/dispatch"
	"github.com/katalvlaran/linear/kernels"
)

var (
	alphaParams = []args.Param{args.NumberParam("alpha", 1)}
	ddofParams  = []args.Param{args.DDoFParam("ddof", 0)}
)

type DispatchSuite struct {
	suite.Suite
	d   *dispatch.Dispatcher
	log bytes.Buffer
}

func (s *DispatchSuite) SetupTest() {
	s.log.Reset()
	s.d = dispatch.New(dispatch.WithLogger(zerolog.New(&s.log).Level(zerolog.DebugLevel)))
}

func (s *DispatchSuite) matrix(rows [][]float64, order core.Order) *core.Matrix {
	m, err := core.NewMatrixFrom(rows, order)
	s.Require().NoError(err)
	return m
}

func (s *DispatchSuite) TestElementwise_Scalar() {
	r, err := s.d.Elementwise(kernels.Inc, alphaParams, []any{2.0, 3}, nil)
	s.Require().NoError(err)
	s.Equal(5.0, r)

	r, err = s.d.Elementwise(kernels.Inc, alphaParams, []any{int64(2)}, nil)
	s.Require().NoError(err)
	s.Equal(3.0, r)
}

func (s *DispatchSuite) TestElementwise_ErrorOrder() {
	// arguments are checked before the operand
	_, err := s.d.Elementwise(kernels.Inc, alphaParams, []any{"x", "y"}, nil)
	s.ErrorIs(err, core.ErrArgumentType)

	_, err = s.d.Elementwise(kernels.Inc, alphaParams, []any{"x"}, nil)
	s.ErrorIs(err, core.ErrType)

	_, err = s.d.Elementwise(kernels.Inc, alphaParams, nil, nil)
	s.ErrorIs(err, core.ErrType)

	var nilVec *core.Vector
	_, err = s.d.Elementwise(kernels.Inc, alphaParams, []any{nilVec}, nil)
	s.ErrorIs(err, core.ErrNilView)

	_, err = s.d.Apply(kernels.Inc, kernels.NewCall(args.Values{}), dispatch.Operand{})
	s.ErrorIs(err, core.ErrType)
}

func (s *DispatchSuite) TestElementwise_FlatPath() {
	m := s.matrix([][]float64{{1, 2}, {3, 4}}, core.ColMajor)
	_, err := s.d.Elementwise(kernels.Inc, alphaParams, []any{m, 1}, nil)
	s.Require().NoError(err)
	s.Equal([][]float64{{2, 3}, {4, 5}}, m.Values())
	s.Contains(s.log.String(), `"path":"flat"`)
}

func (s *DispatchSuite) TestElementwise_PerMajorMatchesFlat() {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	small := dispatch.New(dispatch.WithMaxRun(1))
	for _, order := range []core.Order{core.RowMajor, core.ColMajor} {
		a := s.matrix(rows, order)
		b := s.matrix(rows, order)
		_, err := s.d.Elementwise(kernels.Pow, alphaParams, []any{a, 2}, nil)
		s.Require().NoError(err)
		_, err = small.Elementwise(kernels.Pow, alphaParams, []any{b, 2}, nil)
		s.Require().NoError(err)
		s.Equal(a.Values(), b.Values(), order)
	}
	s.Equal(1, small.MaxRun())
}

func (s *DispatchSuite) TestElementwise_WindowLeavesPaddingAlone() {
	base := s.matrix([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, core.RowMajor)
	win, err := base.Sub(0, 1, 3, 2)
	s.Require().NoError(err)

	_, err = s.d.Elementwise(kernels.Set, alphaParams, []any{win, 0}, nil)
	s.Require().NoError(err)
	s.Equal([][]float64{{1, 0, 0}, {4, 0, 0}, {7, 0, 0}}, base.Values())
	s.Contains(s.log.String(), `"path":"major"`)
}

func (s *DispatchSuite) TestReduce_OrderAxisMatrix() {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	tests := []struct {
		name  string
		order core.Order
		axis  any
		want  []float64
	}{
		{"row-major/row", core.RowMajor, "row", []float64{6, 15}},
		{"row-major/col", core.RowMajor, "col", []float64{5, 7, 9}},
		{"col-major/row", core.ColMajor, "row", []float64{6, 15}},
		{"col-major/col", core.ColMajor, core.ColMajor, []float64{5, 7, 9}},
	}
	for _, tc := range tests {
		m := s.matrix(rows, tc.order)
		out, _ := core.NewVector(len(tc.want))
		r, err := s.d.Unary(kernels.Sum, nil, []any{m, out, tc.axis}, nil)
		s.Require().NoError(err, tc.name)
		s.Zero(r)
		s.Equal(tc.want, out.Values(), tc.name)
	}
}

func (s *DispatchSuite) TestReduce_StridedOutputAndWindow() {
	base := s.matrix([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, core.ColMajor)
	win, err := base.Sub(1, 0, 2, 3) // rows {4,5,6},{7,8,9}
	s.Require().NoError(err)

	// strided output: column 0 of a 2×5 row-major matrix (inc 5)
	host := s.matrix([][]float64{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}, core.RowMajor)
	strided, err := host.Col(0)
	s.Require().NoError(err)

	_, err = s.d.Unary(kernels.Sum, nil, []any{win, strided}, nil)
	s.Require().NoError(err)
	s.Equal([]float64{15, 24}, strided.Values())
	s.Equal([][]float64{{15, 0, 0, 0, 0}, {24, 0, 0, 0, 0}}, host.Values())

	cols, _ := core.NewVector(3)
	_, err = s.d.Unary(kernels.Sum, nil, []any{win, cols, "col"}, nil)
	s.Require().NoError(err)
	s.Equal([]float64{11, 13, 15}, cols.Values())

	_, err = s.d.Unary(kernels.Mean, nil, []any{win, cols}, nil)
	s.ErrorIs(err, core.ErrDimension)
}

func (s *DispatchSuite) TestUnary_Vector() {
	v := core.NewVectorFrom([]float64{1, 2, 3, 4})
	r, err := s.d.Unary(kernels.Var, ddofParams, []any{v, 1}, nil)
	s.Require().NoError(err)
	s.InDelta(5.0/3.0, r, 1e-12)

	_, err = s.d.Unary(kernels.Var, ddofParams, []any{v, 4}, nil)
	s.ErrorIs(err, core.ErrArgumentRange)
}

func (s *DispatchSuite) TestUnary_NamedInOrderSlot() {
	m := s.matrix([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
	out, _ := core.NewVector(2)
	_, err := s.d.Unary(kernels.Var, ddofParams, []any{m, out, args.Named{"ddof": 1}}, nil)
	s.Require().NoError(err)
	s.Equal([]float64{1, 1}, out.Values())

	// ddof is bounded by the reduced run length (3 per row, 2 per column)
	out3, _ := core.NewVector(3)
	_, err = s.d.Unary(kernels.Var, ddofParams, []any{m, out3, "col", 2}, nil)
	s.ErrorIs(err, core.ErrArgumentRange)
	_, err = s.d.Unary(kernels.Var, ddofParams, []any{m, out, "row", 2}, nil)
	s.NoError(err)
}

func (s *DispatchSuite) TestUnary_Errors() {
	m := s.matrix([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
	short, _ := core.NewVector(1)
	out, _ := core.NewVector(2)

	tests := []struct {
		name string
		call []any
		want error
	}{
		{"scalar operand", []any{3.0}, core.ErrType},
		{"string operand", []any{"m"}, core.ErrType},
		{"missing output", []any{m}, core.ErrType},
		{"non-vector output", []any{m, 2.0}, core.ErrType},
		{"short output", []any{short}, nil},
		{"mismatched output", []any{m, short}, core.ErrDimension},
		{"mismatch before argument errors", []any{m, short, "row", "bad"}, core.ErrDimension},
		{"bad axis", []any{m, out, "diag"}, core.ErrArgumentType},
		{"surplus argument", []any{m, out, "row", 1}, core.ErrArgument},
	}
	for _, tc := range tests {
		_, err := s.d.Unary(kernels.Sum, nil, tc.call, nil)
		if tc.want == nil {
			s.NoError(err, tc.name)
			continue
		}
		s.ErrorIs(err, tc.want, tc.name)
	}

	_, err := s.d.Reduce(kernels.Sum, nil, dispatch.Mat(m), core.RowMajor, nil)
	s.ErrorIs(err, core.ErrDimension)
}

func (s *DispatchSuite) TestReduce_EmptyRuns() {
	m, err := core.NewMatrix(0, 3, core.RowMajor)
	s.Require().NoError(err)
	out := core.NewVectorFrom([]float64{9, 9, 9})
	_, err = s.d.Unary(kernels.Sum, nil, []any{m, out, "col"}, nil)
	s.Require().NoError(err)
	s.Equal([]float64{0, 0, 0}, out.Values())

	_, err = s.d.Elementwise(kernels.Inc, alphaParams, []any{m}, nil)
	s.NoError(err)
}

func (s *DispatchSuite) TestEmptyViews_PastBufferEnd() {
	m := s.matrix([][]float64{{1, 2, 3}, {4, 5, 6}}, core.RowMajor)
	col, err := m.Col(2)
	s.Require().NoError(err)
	tail, err := col.Sub(col.Len(), 0)
	s.Require().NoError(err)

	tall, err := core.NewMatrix(3, 0, core.ColMajor)
	s.Require().NoError(err)
	row, err := tall.Row(2)
	s.Require().NoError(err)

	wide, err := core.NewMatrix(0, 3, core.RowMajor)
	s.Require().NoError(err)
	empty, err := wide.Col(1)
	s.Require().NoError(err)

	for name, v := range map[string]*core.Vector{"strided tail": tail, "row of Rx0": row, "col of 0xC": empty} {
		s.NotPanics(func() {
			r, err := s.d.Unary(kernels.Sum, nil, []any{v}, nil)
			s.NoError(err, name)
			s.Zero(r, name)

			_, err = s.d.Elementwise(kernels.Inc, alphaParams, []any{v}, nil)
			s.NoError(err, name)
		}, name)
	}
	s.Equal([][]float64{{1, 2, 3}, {4, 5, 6}}, m.Values())
}

func TestDispatchSuite(t *testing.T) {
	suite.Run(t, new(DispatchSuite))
}

func TestOperandOf(t *testing.T) {
	v := core.NewVectorFrom([]float64{1})
	op, err := dispatch.OperandOf(v)
	require.NoError(t, err)
	require.Equal(t, dispatch.KindVector, op.Kind())
	require.Same(t, v, op.Vector())

	op, err = dispatch.OperandOf(float32(1.5))
	require.NoError(t, err)
	require.Equal(t, dispatch.KindScalar, op.Kind())
	require.Equal(t, 1.5, op.Scalar())

	same, err := dispatch.OperandOf(op)
	require.NoError(t, err)
	require.Equal(t, op, same)

	_, err = dispatch.OperandOf(nil)
	require.ErrorIs(t, err, core.ErrType)
	require.Equal(t, "none", dispatch.KindNone.String())
}

func TestWithMaxRun_Panics(t *testing.T) {
	require.Panics(t, func() { dispatch.WithMaxRun(0) })
	require.Equal(t, dispatch.DefaultMaxRun, dispatch.New().MaxRun())
}
