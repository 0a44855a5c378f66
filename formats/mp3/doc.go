// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into PCM.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit little-endian interleaved stereo at the stream's sample rate. That
// layout is what the silence scanner consumes, so the bytes are returned
// unchanged:
//
//	file, _ := os.Open("audio.mp3")
//	pcm, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	silences, err := silence.FindAll(pcm.Data, pcm.Format, policy)
//
// Mono MP3 files come out with both channels equal, so silence positions are
// the same as for a true mono decode.
//
// The whole stream is decoded into memory. Errors from go-mp3 while reading
// the header are wrapped in ErrNotMP3File.
package mp3
