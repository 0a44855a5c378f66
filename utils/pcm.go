// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// PutSample writes v into dst as a little-endian PCM sample of width bytes.
// 8-bit samples are stored unsigned (offset by 128), wider ones signed.
// dst must hold at least width bytes; widths other than 1, 2 and 4 are ignored.
func PutSample(dst []byte, v int, width int) {
	switch width {
	case 1:
		dst[0] = byte(v + 128)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(int32(v)))
	}
}

// AppendSample appends v to dst as a sample of width bytes.
func AppendSample(dst []byte, v int, width int) []byte {
	var tmp [4]byte
	PutSample(tmp[:], v, width)
	return append(dst, tmp[:width]...)
}

// Widen24 scales a 24-bit sample to the 32-bit range.
func Widen24(v int) int { return v << 8 }

// fullScale returns the largest positive sample value for width bytes, or 0
// for an unsupported width.
func fullScale(width int) float64 {
	switch width {
	case 1:
		return math.MaxInt8
	case 2:
		return math.MaxInt16
	case 4:
		return math.MaxInt32
	}
	return 0
}

// FloatToSample quantizes a normalised sample in [-1, 1] to a signed
// integer sample of width bytes, ready for AppendSample. Values outside the
// range are clamped and scaled so that +1 and -1 map to the same magnitude;
// NaN maps to 0. The result is truncated toward zero.
func FloatToSample(x float32, width int) int {
	if math.IsNaN(float64(x)) {
		return 0
	}

	v := float64(max(min(x, 1), -1))
	return int(v * fullScale(width))
}
