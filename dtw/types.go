// SPDX-License-Identifier: MIT
// Package dtw defines options, memory modes and the warping window.
package dtw

import (
	"fmt"
	"math"
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (ns+1)x(nt+1) matrix in one flat buffer.
//     Memory: O(ns·nt).
//
//   - TwoRows — keep only the previous and the current row.
//     Memory: O(nt). Returns the same distance as FullMatrix.
type MemoryMode int

const (
	// FullMatrix mode: one flat (ns+1)·(nt+1) allocation.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling pair of rows, nt+1 cells each.
	TwoRows
)

// DefaultMemoryMode is the storage used when Options is nil.
const DefaultMemoryMode = FullMatrix

func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full-matrix"
	case TwoRows:
		return "two-rows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// unconstrainedSentinel is the host-side integer meaning "no window".
const unconstrainedSentinel = -1

// Window is the Sakoe–Chiba band constraint: either Unconstrained or
// Bounded with half-width w (|i-j| ≤ w). The zero value is Unconstrained.
type Window struct {
	width   int
	bounded bool
}

// Unconstrained returns a window that spans the full matrix.
func Unconstrained() Window { return Window{} }

// Band returns a bounded window of half-width w.
// A negative w is rejected by DTW with ErrBadWindow.
func Band(w int) Window { return Window{width: w, bounded: true} }

// WindowFromInt maps the host integer convention onto Window:
// -1 ⇒ Unconstrained, w ≥ 0 ⇒ Band(w), anything below -1 ⇒ ErrBadWindow.
func WindowFromInt(w int) (Window, error) {
	switch {
	case w == unconstrainedSentinel:
		return Unconstrained(), nil
	case w < unconstrainedSentinel:
		return Window{}, fmt.Errorf("window %d: %w", w, ErrBadWindow)
	default:
		return Band(w), nil
	}
}

// WindowFromFloat coerces a real host scalar to a window, truncating
// toward zero before applying WindowFromInt. NaN and ±Inf are rejected.
func WindowFromFloat(w float64) (Window, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return Window{}, fmt.Errorf("window %v: %w", w, ErrBadWindow)
	}
	t := math.Trunc(w)
	if t > math.MaxInt32 || t < math.MinInt32 {
		return Window{}, fmt.Errorf("window %v: %w", w, ErrBadWindow)
	}

	return WindowFromInt(int(t))
}

// IsBounded reports whether the window restricts the band.
func (w Window) IsBounded() bool { return w.bounded }

// Width returns the band half-width, or -1 when unconstrained.
func (w Window) Width() int {
	if !w.bounded {
		return unconstrainedSentinel
	}

	return w.width
}

func (w Window) String() string {
	if !w.bounded {
		return "unconstrained"
	}

	return fmt.Sprintf("band(%d)", w.width)
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window     — Sakoe–Chiba band. Zero value means unconstrained.
//     The band is widened to |ns-nt| and capped to max(ns, nt) internally.
//   - MemoryMode — FullMatrix or TwoRows storage; both yield the same distance.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = dtw.Band(10)   // only compare rows within ±10 steps
//	opts.MemoryMode = dtw.TwoRows
//
//	dist, err := dtw.DTW(s, t, &opts)
type Options struct {
	Window     Window
	MemoryMode MemoryMode
}

// DefaultOptions returns unconstrained, full-matrix options.
func DefaultOptions() Options {
	return Options{
		Window:     Unconstrained(),
		MemoryMode: DefaultMemoryMode,
	}
}

// validate checks option values; the window check precedes the memory mode.
func (o *Options) validate() error {
	if o.Window.bounded && o.Window.width < 0 {
		return fmt.Errorf("band %d: %w", o.Window.width, ErrBadWindow)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return fmt.Errorf("%v: %w", o.MemoryMode, ErrBadMemoryMode)
	}

	return nil
}
