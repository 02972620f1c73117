// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// DTW — Dynamic Time Warping over multivariate sequences
//
// Description:
//
//	DTW measures dissimilarity between two sequences that may vary in
//	time or speed by finding the cheapest monotone alignment of their
//	time axes. Each step pays the Euclidean distance between the two
//	aligned feature vectors.
//
// Algorithm Outline:
//  1. Validate inputs (nil, feature dimension, window, memory mode).
//  2. Resolve the window: widen to |ns-nt|, cap to max(ns, nt).
//  3. Allocate D with D[0][0] = 0 and every other cell unreachable.
//  4. For i = 1..ns, for j in [max(1,i-w), min(nt,i+w)] (or [1,nt]):
//     D[i][j] = ‖s[i-1] - t[j-1]‖₂ + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//  5. distance = D[ns][nt].
//
// Complexity:
//
//	Time   = O(ns·nt), or O(ns·w) with a band
//	Memory = O(ns·nt) (FullMatrix) or O(nt) (TwoRows)
//
// Errors:
//   - ErrNilSequence, ErrDimensionMismatch, ErrBadWindow, ErrBadMemoryMode.
//   - ErrNoWarpingPath — D[ns][nt] is unreachable; the returned distance is +Inf.
//     Happens exactly when one sequence is empty and the other is not.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = dtw.Band(3)
//	dist, err := dtw.DTW(s, t, &opts)
func DTW(s, t *Sequence, opts *Options) (float64, error) {
	if s == nil || t == nil {
		return 0, ErrNilSequence
	}
	if s.Dim() != t.Dim() {
		return 0, fmt.Errorf("dim %d vs %d: %w", s.Dim(), t.Dim(), ErrDimensionMismatch)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	w := resolveWindow(s.Len(), t.Len(), o.Window)
	d := fill(s, t, w, o.MemoryMode)
	if math.IsInf(d, 1) {
		return d, fmt.Errorf("%d×%d under %v: %w", s.Len(), t.Len(), w, ErrNoWarpingPath)
	}

	return d, nil
}

// Distance is DTW with default storage and the given window.
func Distance(s, t *Sequence, w Window) (float64, error) {
	opts := DefaultOptions()
	opts.Window = w

	return DTW(s, t, &opts)
}

// DistanceSeries computes DTW between two univariate series.
func DistanceSeries(a, b []float64, w Window) (float64, error) {
	s, err := FromSeries(a)
	if err != nil {
		return 0, fmt.Errorf("first series: %w", err)
	}
	t, err := FromSeries(b)
	if err != nil {
		return 0, fmt.Errorf("second series: %w", err)
	}

	return Distance(s, t, w)
}
