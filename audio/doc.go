// SPDX-License-Identifier: EPL-2.0

// Package audio defines the PCM buffer types shared by the decoders and the
// silence scanner.
//
// # Format and PCM
//
// A Format describes interleaved little-endian PCM: sample rate, channel
// count and sample width in bytes. Widths of 1, 2 and 4 bytes are valid;
// 8-bit samples are unsigned, wider ones are signed.
//
//	f := audio.Format{SampleRate: 44100, Channels: 2, BytesPerSample: 2}
//	if err := f.Validate(); err != nil {
//	    // ErrInvalidFormat or ErrUnsupportedSampleWidth
//	}
//
// PCM pairs a Format with its raw bytes. Frames and Duration ignore a
// trailing partial frame.
//
// # Format Registry
//
// The Registry maps format keys to Decoders. It is safe for concurrent use
// and the last registration for a key wins:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	pcm, err := reg.Decode("wav", file)
//
// Decode wraps ErrUnknownFormat when no decoder is registered for the key.
package audio
