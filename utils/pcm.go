// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the magnitude of full scale for signed PCM of bitDepth
// bits. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat32 converts a signed integer sample of bitDepth bits to [-1, 1).
func PCMToFloat32(v, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// Float32ToPCM clamps x to [-1, 1] and scales it to a signed integer sample
// of bitDepth bits. Positive full scale maps to the largest representable
// value so it never overflows.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := float64(PCMScale(bitDepth))
	v := int(float64(x) * scale)
	if limit := int(scale) - 1; v > limit {
		v = limit
	}
	return v
}

// Float32ToInt16 is Float32ToPCM for 16-bit output.
func Float32ToInt16(x float32) int16 {
	return int16(Float32ToPCM(x, 16))
}

// FloatsToPCM converts src into dst, which must be at least as long, and
// returns the number of samples written.
func FloatsToPCM(dst []int, src []float32, bitDepth int) int {
	n := min(len(dst), len(src))
	scale := float64(PCMScale(bitDepth))
	limit := int(scale) - 1

	for i, x := range src[:n] {
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		v := int(float64(x) * scale)
		if v > limit {
			v = limit
		}
		dst[i] = v
	}

	return n
}

// PCMToFloats converts src into dst and returns the number of samples
// written.
func PCMToFloats(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	inv := 1 / PCMScale(bitDepth)

	for i, v := range src[:n] {
		dst[i] = float32(v) * inv
	}

	return n
}
