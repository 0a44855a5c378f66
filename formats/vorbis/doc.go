// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into PCM.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which yields
// interleaved float32 values in [-1.0, 1.0]. The decoder quantizes them to
// 16-bit little-endian samples so the result can be scanned like any other
// PCM buffer:
//
//	file, _ := os.Open("audio.ogg")
//	pcm, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(pcm.Format) // e.g. "44100 Hz, 2 ch, 16-bit"
//
// Values outside [-1.0, 1.0] are clamped. Channel count and sample rate are
// taken from the identification header.
//
// # Errors
//
//   - ErrNotVorbisFile: the stream headers could not be parsed
//   - ErrInvalidStream: the headers carry no sample rate or channels
package vorbis
