// Package warp is an in-memory toolkit for comparing time series by
// elastic alignment.
//
// 🚀 What is inside?
//
//	dtw/      — multivariate Dynamic Time Warping with an optional
//	            Sakoe–Chiba band, full-matrix or two-row storage
//	examples/ — runnable scenarios (candlestick pattern search)
//
// Quick ASCII picture of a warping path through the cost matrix:
//
//	      t →
//	  s   ● . . .
//	  ↓   . ● ● .
//	      . . . ●
//
// Pure Go, single-threaded, no hidden state: each call owns its buffers.
//
//	go get github.com/katalvlaran/warp/dtw
package warp
