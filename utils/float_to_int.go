// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a normalized sample to 16-bit PCM as
// clamp(round(x*32767), -32768, 32767). NaN maps to 0.
//
// Int16ToFloat32 divides by 32768, so a round trip is exact only to within
// one quantization step.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32767.0)

	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 normalizes a 16-bit PCM sample into [-1.0, 1.0).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
