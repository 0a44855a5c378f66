// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into
// little-endian PCM.
//
// Parsing is done by github.com/go-audio/aiff. AIFF stores big-endian
// samples, so the decoder re-encodes every sample in the little-endian
// layout the silence scanner expects.
//
// # Supported Formats
//
//   - 16-bit and 32-bit PCM, returned at their own width
//   - 24-bit PCM, widened to 32 bits
//   - Any channel count and sample rate
//
// 8-bit files and AIFF-C (compressed) files are rejected.
//
// # Decoding
//
//	file, _ := os.Open("audio.aif")
//	pcm, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF file
//	}
//
// Decode reads the whole file into memory when r is not an io.ReadSeeker.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: the sample size is not 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: the COMM chunk has no usable rate or channels
package aiff
