// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/linear"
	"github.com/katalvlaran/linear/args"
	"github.com/katalvlaran/linear/core"
)

// Script is a session: named operands followed by a list of operations.
//
//	[vectors]
//	a = [1.0, 2.0, 3.0, 4.0]
//
//	[matrices.m]
//	order = "row"
//	rows = [[1.0, 2.0, 3.0], [4.0, 5.0, 6.0]]
//
//	[views.mid]
//	of = "a"
//	start = 1
//	len = 2
//
//	[[ops]]
//	op = "sum"
//	on = "m"
//	out = "r"
//	axis = "col"
type Script struct {
	Vectors  map[string][]float64  `toml:"vectors"`
	Matrices map[string]MatrixSpec `toml:"matrices"`
	Views    map[string]ViewSpec   `toml:"views"`
	Ops      []Step                `toml:"ops"`
}

// MatrixSpec declares a matrix by its rows and storage order.
type MatrixSpec struct {
	Order string      `toml:"order"`
	Rows  [][]float64 `toml:"rows"`
}

// ViewSpec declares a vector view aliasing a slice of another vector.
type ViewSpec struct {
	Of    string `toml:"of"`
	Start int    `toml:"start"`
	Len   int    `toml:"len"`
}

// Step is one operation. Exactly one of On (operand name) or Value (scalar)
// must be set. Out and Axis apply to matrix reductions; Out names a vector
// that is created with the right length when it does not exist yet.
type Step struct {
	Op    string         `toml:"op"`
	On    string         `toml:"on"`
	Value *float64       `toml:"value"`
	Out   string         `toml:"out"`
	Axis  string         `toml:"axis"`
	Args  []any          `toml:"args"`
	Named map[string]any `toml:"named"`
}

// LoadScript reads and checks a session script.
func LoadScript(path string) (*Script, error) {
	var s Script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// ParseScript is LoadScript over an in-memory document.
func ParseScript(doc string) (*Script, error) {
	var s Script
	if _, err := toml.Decode(doc, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks names, orders and operation references.
func (s *Script) Validate() error {
	known := make(map[string]bool)
	for name := range s.Vectors {
		known[name] = true
	}
	for name, ms := range s.Matrices {
		if known[name] {
			return fmt.Errorf("matrix %q: name already used: %w", name, ErrInvalid)
		}
		if ms.Order != "" {
			if _, err := core.ParseOrder(ms.Order); err != nil {
				return fmt.Errorf("matrix %q: %w", name, err)
			}
		}
		known[name] = true
	}
	for name, vs := range s.Views {
		if known[name] {
			return fmt.Errorf("view %q: name already used: %w", name, ErrInvalid)
		}
		if _, ok := s.Vectors[vs.Of]; !ok {
			return fmt.Errorf("view %q: unknown vector %q: %w", name, vs.Of, ErrInvalid)
		}
		known[name] = true
	}

	ops := linear.Names()
	for i, st := range s.Ops {
		if _, found := slices.BinarySearch(ops, st.Op); !found {
			return fmt.Errorf("ops[%d]: unknown operation %q: %w", i, st.Op, ErrInvalid)
		}
		if st.Op == linear.OpApply {
			return fmt.Errorf("ops[%d]: %q needs a function and cannot be scripted: %w", i, st.Op, ErrInvalid)
		}
		if (st.On == "") == (st.Value == nil) {
			return fmt.Errorf("ops[%d]: exactly one of on/value is required: %w", i, ErrInvalid)
		}
		if st.On != "" && !known[st.On] {
			return fmt.Errorf("ops[%d]: unknown operand %q: %w", i, st.On, ErrInvalid)
		}
		if st.Axis != "" {
			if st.Out == "" {
				return fmt.Errorf("ops[%d]: axis %q requires out: %w", i, st.Axis, ErrInvalid)
			}
			if _, err := core.ParseOrder(st.Axis); err != nil {
				return fmt.Errorf("ops[%d]: %w", i, err)
			}
		}
		// outputs become known for later steps
		if st.Out != "" {
			if _, isMat := s.Matrices[st.Out]; isMat {
				return fmt.Errorf("ops[%d]: output %q is a matrix: %w", i, st.Out, ErrInvalid)
			}
			known[st.Out] = true
		}
	}

	return nil
}

// Workspace holds the views built from a Script.
type Workspace struct {
	Vectors  map[string]*core.Vector
	Matrices map[string]*core.Matrix
}

// Build allocates every declared operand. The caller owns the result and
// should Release it.
func (s *Script) Build() (*Workspace, error) {
	ws := &Workspace{
		Vectors:  make(map[string]*core.Vector, len(s.Vectors)+len(s.Views)),
		Matrices: make(map[string]*core.Matrix, len(s.Matrices)),
	}
	for name, values := range s.Vectors {
		ws.Vectors[name] = core.NewVectorFrom(values)
	}
	for name, ms := range s.Matrices {
		order := core.RowMajor
		if ms.Order != "" {
			order, _ = core.ParseOrder(ms.Order)
		}
		m, err := core.NewMatrixFrom(ms.Rows, order)
		if err != nil {
			ws.Release()
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		ws.Matrices[name] = m
	}
	for _, name := range sortedKeys(s.Views) {
		vs := s.Views[name]
		v, err := ws.Vectors[vs.Of].Sub(vs.Start, vs.Len)
		if err != nil {
			ws.Release()
			return nil, fmt.Errorf("view %q: %w", name, err)
		}
		ws.Vectors[name] = v
	}

	return ws, nil
}

// Release drops every view held by the workspace.
func (ws *Workspace) Release() {
	for _, v := range ws.Vectors {
		_ = v.Release()
	}
	for _, m := range ws.Matrices {
		_ = m.Release()
	}
}

// Call assembles the host argument list of st against ws. Missing output
// vectors of matrix reductions are allocated on demand.
func (ws *Workspace) Call(st Step) ([]any, error) {
	call := make([]any, 0, 3+len(st.Args)+1)

	switch {
	case st.Value != nil:
		call = append(call, *st.Value)
	case ws.Vectors[st.On] != nil:
		call = append(call, ws.Vectors[st.On])
	case ws.Matrices[st.On] != nil:
		m := ws.Matrices[st.On]
		call = append(call, m)
		if st.Out != "" {
			out, err := ws.output(st, m)
			if err != nil {
				return nil, err
			}
			call = append(call, out)
			if st.Axis != "" {
				call = append(call, strings.ToLower(st.Axis))
			}
		}
	default:
		return nil, fmt.Errorf("unknown operand %q: %w", st.On, ErrInvalid)
	}

	call = append(call, st.Args...)
	if len(st.Named) > 0 {
		call = append(call, args.Named(st.Named))
	}

	return call, nil
}

func (ws *Workspace) output(st Step, m *core.Matrix) (*core.Vector, error) {
	if out, ok := ws.Vectors[st.Out]; ok {
		return out, nil
	}
	n := m.Rows()
	if st.Axis != "" {
		if axis, _ := core.ParseOrder(st.Axis); axis == core.ColMajor {
			n = m.Cols()
		}
	}
	out, err := core.NewVector(n)
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", st.Out, err)
	}
	ws.Vectors[st.Out] = out

	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
