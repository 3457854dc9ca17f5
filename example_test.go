// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"

	"github.com/katalvlaran/linear"
	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
)

// ExampleEngine_Var shows positional and named ddof.
func ExampleEngine_Var() {
	e := linear.New()
	v := core.NewVectorFrom([]float64{1, 2, 3, 4})
	defer v.Release()

	pop, _ := e.Var(v)
	sample, _ := e.Var(v, args.Named{"ddof": 1})
	fmt.Printf("%.4f %.4f\n", pop, sample)
	// Output:
	// 1.2500 1.6667
}

// ExampleEngine_Sum reduces a matrix per row and per column.
func ExampleEngine_Sum() {
	e := linear.New()
	m, _ := core.NewMatrixFrom([][]float64{{1, 2, 3}, {4, 5, 6}}, core.ColMajor)
	rows, _ := core.NewVector(2)
	cols, _ := core.NewVector(3)

	_, _ = e.Sum(m, rows)
	_, _ = e.Sum(m, cols, "col")
	fmt.Println(rows, cols)
	// Output:
	// [6, 15] [5, 7, 9]
}

// ExampleEngine_Inc mutates a window and observes it through the parent.
func ExampleEngine_Inc() {
	e := linear.New()
	v := core.NewVectorFrom([]float64{0, 0, 0, 0})
	mid, _ := v.Sub(1, 2)

	_, _ = e.Inc(mid, 2.5)
	fmt.Println(v)
	// Output:
	// [0, 2.5, 2.5, 0]
}
