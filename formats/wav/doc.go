// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding uses github.com/go-audio/wav to walk the RIFF chunks and returns
// the raw data chunk untouched, ready for the silence package.
//
// # Supported Formats
//
//   - PCM (format tag 1) only; float, A-law, mu-law and extensible files are rejected
//   - 8-bit unsigned, 16-bit and 32-bit signed little-endian samples
//   - 24-bit samples, widened to 32-bit on decode
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	pcm, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	silences, err := silence.FindAll(pcm.Data, pcm.Format, silence.DefaultPolicy(500*time.Millisecond))
//
// A data chunk shorter than its declared size is returned as far as it goes.
//
// # Writing WAV Files
//
// WritePCM writes a canonical 44-byte header followed by the data, which is
// how segments between silences are saved:
//
//	out, _ := os.Create("segment.wav")
//	err := wav.WritePCM(out, &audio.PCM{Format: pcm.Format, Data: seg.Bytes(pcm.Data)})
package wav
