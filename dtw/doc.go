// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between
// multivariate time series, with an optional Sakoe–Chiba window.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It's widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - multivariate samples: every step is a k-dimensional feature vector,
//     compared by Euclidean distance
//   - host buffers in column-major (MATLAB) or row-major order, or gonum matrices
//   - optional Sakoe–Chiba window (|i−j| ≤ w), automatically widened to the
//     length difference so a path always exists
//   - full-matrix or two-row storage (choose via MemoryMode)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warp/dtw"
//
//	s, _ := dtw.FromRows([][]float64{{0, 0}, {1, 1}, {2, 2}})
//	t, _ := dtw.FromRows([][]float64{{0, 0}, {2, 2}})
//
//	opts := dtw.DefaultOptions()
//	opts.Window = dtw.Band(1)
//	dist, err := dtw.DTW(s, t, &opts)
//
// Empty inputs:
//
//	Two empty sequences are at distance 0. One empty and one non-empty
//	sequence have no warping path; DTW returns +Inf with ErrNoWarpingPath.
//
// Performance:
//
//   - Time:   O(ns·nt), or O(ns·w) with a band
//   - Memory: O(ns·nt) (FullMatrix) or O(nt) (TwoRows)
package dtw
