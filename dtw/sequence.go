// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Layout names how a flat host buffer is ordered.
type Layout int

const (
	// ColumnMajor stores element (i, x) at i + n·x (MATLAB / Fortran order).
	ColumnMajor Layout = iota

	// RowMajor stores element (i, x) at i·k + x (C / Go order).
	RowMajor
)

// Sequence is an ordered series of n feature vectors of dimension k.
// Storage is a private row-major copy, so a Sequence never aliases the
// caller's buffer and is immutable once built.
type Sequence struct {
	n, k int
	data []float64 // len == n*k, row-major
}

// NewSequence COPIES a flat n×k buffer in the given layout into a Sequence.
// Stage 1 (Validate): layout known, n,k ≥ 0, len(data) == n·k.
// Stage 2 (Copy): transpose column-major input into row-major storage.
// Stage 3 (Finalize): reject NaN/±Inf samples.
//
// Errors: ErrBadLayout, ErrBadShape, ErrNonFinite.
// Complexity: O(n·k) time and memory.
func NewSequence(data []float64, n, k int, layout Layout) (*Sequence, error) {
	if layout != ColumnMajor && layout != RowMajor {
		return nil, fmt.Errorf("layout %d: %w", int(layout), ErrBadLayout)
	}
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%dx%d: %w", n, k, ErrBadShape)
	}
	if len(data) != n*k {
		return nil, fmt.Errorf("%dx%d with %d values: %w", n, k, len(data), ErrBadShape)
	}

	buf := make([]float64, n*k)
	if layout == RowMajor {
		copy(buf, data)
	} else {
		for i := 0; i < n; i++ {
			for x := 0; x < k; x++ {
				buf[i*k+x] = data[i+n*x]
			}
		}
	}

	s := &Sequence{n: n, k: k, data: buf}
	if err := s.checkFinite(); err != nil {
		return nil, err
	}

	return s, nil
}

// FromRows builds a Sequence from one slice per time step.
// An empty input yields an empty sequence of dimension 0.
func FromRows(rows [][]float64) (*Sequence, error) {
	n := len(rows)
	if n == 0 {
		return &Sequence{}, nil
	}
	k := len(rows[0])
	buf := make([]float64, 0, n*k)
	for i, r := range rows {
		if len(r) != k {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), k, ErrRaggedRows)
		}
		buf = append(buf, r...)
	}

	s := &Sequence{n: n, k: k, data: buf}
	if err := s.checkFinite(); err != nil {
		return nil, err
	}

	return s, nil
}

// FromSeries builds a univariate (k = 1) Sequence.
func FromSeries(xs []float64) (*Sequence, error) {
	return NewSequence(xs, len(xs), 1, RowMajor)
}

// FromMatrix copies a gonum matrix whose rows are time steps and whose
// columns are features.
func FromMatrix(m mat.Matrix) (*Sequence, error) {
	n, k := m.Dims()
	buf := make([]float64, n*k)
	for i := 0; k > 0 && i < n; i++ {
		mat.Row(buf[i*k:(i+1)*k], i, m)
	}

	s := &Sequence{n: n, k: k, data: buf}
	if err := s.checkFinite(); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the number of time steps.
func (s *Sequence) Len() int { return s.n }

// Dim returns the feature dimension.
func (s *Sequence) Dim() int { return s.k }

// Row returns the feature vector at step i. The slice is a read-only view.
func (s *Sequence) Row(i int) []float64 {
	return s.data[i*s.k : (i+1)*s.k : (i+1)*s.k]
}

// At returns feature x of step i.
func (s *Sequence) At(i, x int) float64 { return s.data[i*s.k+x] }

// Dense returns an n×k gonum copy of the sequence, or nil when n or k is
// zero (gonum has no empty Dense).
func (s *Sequence) Dense() *mat.Dense {
	if s.n == 0 || s.k == 0 {
		return nil
	}
	buf := make([]float64, len(s.data))
	copy(buf, s.data)

	return mat.NewDense(s.n, s.k, buf)
}

func (s *Sequence) checkFinite() error {
	for idx, v := range s.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sample (%d,%d)=%v: %w", idx/s.k, idx%s.k, v, ErrNonFinite)
		}
	}

	return nil
}
