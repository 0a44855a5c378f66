// SPDX-License-Identifier: EPL-2.0

// Package pcmsilence finds silent intervals in PCM audio.
//
// The work is split over a few packages:
//   - silence holds the detector itself. It scans raw little-endian PCM
//     bytes and reports every run of samples quieter than a decibel
//     threshold that lasts at least a minimum duration.
//   - audio defines the Format and PCM types and a registry of decoders.
//   - formats/wav, formats/aiff, formats/mp3 and formats/vorbis turn
//     container files into PCM.
//
// This package ties them together:
//
//	res, err := pcmsilence.DetectFile("call.wav", silence.DefaultPolicy(500*time.Millisecond))
//	if err != nil {
//	    // Handle error
//	}
//	for _, s := range res.Silences {
//	    fmt.Println(s.Start, s.Duration)
//	}
//
// DetectFile chooses the decoder from the file extension. Detect takes an
// explicit format key for streams without a name, and DetectWith accepts a
// custom registry.
//
// # Supported Formats
//
//   - wav, wave: PCM 8, 16, 24 and 32-bit
//   - aif, aiff: PCM 16, 24 and 32-bit
//   - mp3: decoded to 16-bit stereo
//   - ogg: Vorbis, decoded to 16-bit
//
// 24-bit input is widened to 32-bit samples before scanning.
//
// # Splitting
//
// Result.Sounds returns the regions between silences; each Segment can be cut
// out of the PCM data with Segment.Bytes and written back with
// wav.WritePCM.
package pcmsilence
