// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// unreachable marks a cell with no windowed path from the origin.
// Real cumulative costs are finite and non-negative, so +Inf never collides.
var unreachable = math.Inf(1)

// costMatrix is the DP table for one call. Cells live in a single flat
// slice of width cols = nt+1; FullMatrix keeps ns+1 rows, TwoRows keeps 2
// and reuses them by parity.
type costMatrix struct {
	cols  int
	mode  MemoryMode
	cells []float64
}

// newCostMatrix allocates the table with every cell unreachable except
// D[0][0] = 0. No other boundary cell is seeded.
func newCostMatrix(ns, nt int, mode MemoryMode) *costMatrix {
	rows := ns + 1
	if mode == TwoRows {
		rows = 2
	}
	m := &costMatrix{cols: nt + 1, mode: mode, cells: make([]float64, rows*(nt+1))}
	for idx := range m.cells {
		m.cells[idx] = unreachable
	}
	m.cells[0] = 0

	return m
}

// row returns the storage of DP row i.
func (m *costMatrix) row(i int) []float64 {
	if m.mode == TwoRows {
		i %= 2
	}

	return m.cells[i*m.cols : (i+1)*m.cols]
}

// beginRow returns row i ready to be filled. In TwoRows mode the slot still
// holds row i-2, so it is reset to unreachable first.
func (m *costMatrix) beginRow(i int) []float64 {
	r := m.row(i)
	if m.mode == TwoRows {
		for j := range r {
			r[j] = unreachable
		}
	}

	return r
}

// rowDistance is the Euclidean distance between row i of s and row j of t.
// k == 0 yields 0.
func rowDistance(s, t *Sequence, i, j int) float64 {
	return floats.Distance(s.Row(i), t.Row(j), 2)
}

// fill runs the DTW recurrence and returns D[ns][nt], which is +Inf when
// the final cell is unreachable.
// Stage 1 (Prepare): allocate D, seed D[0][0].
// Stage 2 (Fill): rows 1..ns, columns restricted to rowBounds(i):
//
//	D[i][j] = dist(s[i-1], t[j-1]) + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//
// where a cell whose three predecessors are all unreachable stays unreachable.
// Stage 3 (Finalize): read D[ns][nt]; D is dropped with the call.
//
// The window must already be resolved; inputs are not re-validated here.
// Complexity: O(ns·nt) time unconstrained, O(ns·w) banded.
func fill(s, t *Sequence, w Window, mode MemoryMode) float64 {
	ns, nt := s.Len(), t.Len()
	d := newCostMatrix(ns, nt, mode)

	for i := 1; i <= ns; i++ {
		prev, curr := d.row(i-1), d.beginRow(i)
		j1, j2 := rowBounds(i, nt, w)
		for j := j1; j <= j2; j++ {
			best := min(prev[j], curr[j-1], prev[j-1])
			if math.IsInf(best, 1) {
				continue
			}
			curr[j] = rowDistance(s, t, i-1, j-1) + best
		}
	}

	return d.row(ns)[nt]
}
