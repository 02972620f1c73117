// SPDX-License-Identifier: MIT

package dtw_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/warp/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two univariate series offset by one unit.
//	  s = [1, 2, 3]
//	  t = [2, 3, 4]
//
// Options:
//   - Window unconstrained (DefaultOptions)
//   - MemoryMode = FullMatrix
//
// Every aligned pair along the best path costs 1, so the distance is 3.
func ExampleDTW() {
	s, _ := dtw.FromSeries([]float64{1, 2, 3})
	t, _ := dtw.FromSeries([]float64{2, 3, 4})
	opts := dtw.DefaultOptions()

	dist, err := dtw.DTW(s, t, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=3
}

// ExampleDTW_multivariate aligns 2-D points; the middle point of t is
// absorbed by warping s[0] onto it.
func ExampleDTW_multivariate() {
	s, _ := dtw.FromRows([][]float64{{0, 0}, {3, 4}})
	t, _ := dtw.FromRows([][]float64{{0, 0}, {1, 1}, {3, 4}})

	dist, _ := dtw.DTW(s, t, nil)
	fmt.Printf("distance=%.4f\n", dist)
	// Output:
	// distance=1.4142
}

// ExampleNewSequence reads a column-major (MATLAB-ordered) 3×2 buffer.
func ExampleNewSequence() {
	s, _ := dtw.NewSequence([]float64{1, 2, 3, 10, 20, 30}, 3, 2, dtw.ColumnMajor)
	fmt.Println(s.Len(), s.Dim(), s.Row(1))
	// Output:
	// 3 2 [2 20]
}

// ExampleResolvedWindow shows the band being widened to the length gap.
func ExampleResolvedWindow() {
	fmt.Println(dtw.ResolvedWindow(2, 10, dtw.Band(1)))
	fmt.Println(dtw.ResolvedWindow(5, 5, dtw.Band(50)))
	// Output:
	// band(8)
	// band(5)
}

// ExampleWindowFromFloat converts host scalars, where -1 means unconstrained.
func ExampleWindowFromFloat() {
	w, _ := dtw.WindowFromFloat(2.7)
	u, _ := dtw.WindowFromFloat(-1)
	fmt.Println(w, u)
	// Output:
	// band(2) unconstrained
}

// ExampleDTW_empty shows that an empty sequence has no path to a non-empty one.
func ExampleDTW_empty() {
	empty, _ := dtw.FromSeries(nil)
	one, _ := dtw.FromSeries([]float64{1})

	dist, err := dtw.DTW(empty, one, nil)
	fmt.Println(dist, errors.Is(err, dtw.ErrNoWarpingPath))

	dist, err = dtw.DTW(empty, empty, nil)
	fmt.Println(dist, err)
	// Output:
	// +Inf true
	// 0 <nil>
}
