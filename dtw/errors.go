// SPDX-License-Identifier: MIT
// Package dtw: sentinel error set.
// Every exported operation returns one of these (optionally wrapped with
// call-site context via fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is. Nothing in this package panics on user input.

package dtw

import "errors"

// ERROR PRIORITY (enforced by DTW, covered in tests):
// nil sequence -> dimension mismatch -> bad window -> bad memory mode.
// Sequence constructors: bad layout -> bad shape / ragged rows -> non-finite.

var (
	// ErrNilSequence is returned when a nil *Sequence is passed to DTW.
	ErrNilSequence = errors.New("dtw: nil sequence")

	// ErrBadShape indicates a negative row count or dimension, or a buffer
	// whose length is not rows×dim.
	ErrBadShape = errors.New("dtw: invalid sequence shape")

	// ErrRaggedRows indicates FromRows received rows of unequal length.
	ErrRaggedRows = errors.New("dtw: rows have unequal length")

	// ErrNonFinite indicates a NaN or ±Inf sample; costs must stay finite.
	ErrNonFinite = errors.New("dtw: NaN or Inf sample")

	// ErrBadLayout indicates an unknown Layout value.
	ErrBadLayout = errors.New("dtw: unknown buffer layout")

	// ErrDimensionMismatch indicates the two sequences have different feature dimensions.
	ErrDimensionMismatch = errors.New("dtw: feature dimensions do not match")

	// ErrBadWindow indicates a window below the -1 sentinel, a negative band,
	// or a non-finite host scalar.
	ErrBadWindow = errors.New("dtw: invalid window")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("dtw: unknown memory mode")

	// ErrNoWarpingPath signals that the final cell D[ns][nt] is unreachable.
	// After window widening this only happens when exactly one sequence is empty.
	ErrNoWarpingPath = errors.New("dtw: no warping path reaches the final cell")
)
