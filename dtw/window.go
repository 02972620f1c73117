// SPDX-License-Identifier: MIT

package dtw

// resolveWindow derives the effective band once per call, before any cell
// of the cost matrix is touched.
//   - Unconstrained stays unconstrained (every row spans [1, nt]).
//   - A band narrower than |ns-nt| is widened to |ns-nt| so that a path
//     from (0,0) to (ns,nt) always fits inside it.
//   - A band wider than both lengths is capped to max(ns, nt).
func resolveWindow(ns, nt int, w Window) Window {
	if !w.bounded {
		return w
	}
	width := w.width
	if diff := abs(ns - nt); width < diff {
		width = diff
	}
	if width > ns && width > nt {
		width = max(ns, nt)
	}

	return Band(width)
}

// ResolvedWindow reports the band DTW actually applies to sequences of
// lengths ns and nt under the requested window w.
func ResolvedWindow(ns, nt int, w Window) Window {
	return resolveWindow(ns, nt, w)
}

// rowBounds returns the inclusive column range [j1, j2] filled in row i
// (1-indexed). j1 > j2 means the row holds no reachable cell.
func rowBounds(i, nt int, w Window) (j1, j2 int) {
	if !w.bounded {
		return 1, nt
	}

	return max(1, i-w.width), min(nt, i+w.width)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
