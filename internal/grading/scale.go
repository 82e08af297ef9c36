// Package grading converts source-native grade values onto the canonical
// 5.0-10.0 scale using per-source calibration from configuration.
package grading

import (
	"github.com/jonathan/draft-board/internal/config"
)

// Canonical scale bounds, re-exported for callers that never touch config.
const (
	ScaleMin = config.ScaleMin
	ScaleMax = config.ScaleMax
)

// Convert maps a native grade onto [5.0, 10.0] using the source's declared
// range and scale breakpoints. Without breakpoints the mapping is linear over
// the native range. Out-of-range values clamp to the nearest bound; clamped
// reports that so callers can mark the grade low-confidence.
func Convert(native float64, src config.SourceConfig) (normalized float64, clamped bool) {
	if native < src.NativeMin {
		native, clamped = src.NativeMin, true
	} else if native > src.NativeMax {
		native, clamped = src.NativeMax, true
	}

	if len(src.Scale) < 2 {
		span := src.NativeMax - src.NativeMin
		if span <= 0 {
			return ScaleMin, clamped
		}
		return ScaleMin + (native-src.NativeMin)/span*(ScaleMax-ScaleMin), clamped
	}

	// Piecewise-linear over the configured breakpoints
	for i := 1; i < len(src.Scale); i++ {
		lo, hi := src.Scale[i-1], src.Scale[i]
		if native <= hi.Native || i == len(src.Scale)-1 {
			span := hi.Native - lo.Native
			if span <= 0 {
				return lo.Normalized, clamped
			}
			frac := (native - lo.Native) / span
			return lo.Normalized + frac*(hi.Normalized-lo.Normalized), clamped
		}
	}

	return ScaleMax, clamped // unreachable; breakpoints span the range
}
