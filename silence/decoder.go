// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"encoding/binary"
	"fmt"
)

// Amplitude decodes sample n of buf. n counts samples of bytesPerSample
// bytes across all interleaved channels.
//
// 8-bit samples are unsigned and centred on zero by subtracting 128; 16 and
// 32-bit samples are signed little-endian integers. The value is left in raw
// integer scale, not normalised to [-1, 1].
func Amplitude(buf []byte, n, bytesPerSample int) (float32, error) {
	switch bytesPerSample {
	case 1, 2, 4:
	default:
		return 0, fmt.Errorf("%w: %d bytes per sample", ErrUnsupportedSampleWidth, bytesPerSample)
	}

	if n < 0 || (n+1)*bytesPerSample > len(buf) {
		return 0, fmt.Errorf("%w: sample %d of %d", ErrSampleOutOfRange, n, len(buf)/bytesPerSample)
	}

	return amplitude(buf, n*bytesPerSample, bytesPerSample), nil
}

// amplitude reads the sample starting at byte offset off. The caller
// guarantees width is 1, 2 or 4 and that the sample is in range.
func amplitude(buf []byte, off, width int) float32 {
	switch width {
	case 1:
		return float32(int(buf[off]) - 128)
	case 2:
		return float32(int16(binary.LittleEndian.Uint16(buf[off : off+2])))
	default:
		return float32(int32(binary.LittleEndian.Uint32(buf[off : off+4])))
	}
}
