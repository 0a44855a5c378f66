// SPDX-License-Identifier: EPL-2.0

// Package silence finds quiet regions in raw interleaved linear PCM.
//
// A sample is silent when its absolute raw value is below a cutoff derived
// from a loudness threshold in dB:
//
//	threshold = 10^(dB/20) * 2^(8*bytesPerSample)
//
// Samples are 1, 2 or 4 bytes wide and little-endian. 8-bit samples are
// unsigned and centred by subtracting 128. Channels are not examined
// separately: every interleaved sample must be silent for a run to continue,
// so a loud sample on any channel ends it.
//
// # Finding silences
//
// FindNext scans a buffer once and returns the first run of silent samples
// that is at least MinSilence long. A shorter run in the middle of the
// buffer is discarded and the scan goes on; a run that is still open when
// the buffer ends is reported whatever its length.
//
//	format := audio.Format{SampleRate: 44100, Channels: 2, BytesPerSample: 2}
//	m, ok, err := silence.FindNext(buf, format, silence.DefaultPolicy(500*time.Millisecond))
//
// FindAll repeats the scan right after each silence it finds and returns
// every silence in order, with Start measured from the beginning of buf:
//
//	silences, err := silence.FindAll(buf, format, silence.DefaultPolicy(500*time.Millisecond))
//	for _, s := range silences {
//	    fmt.Println(s.Start, s.Duration, s.IndexStart, s.IndexEnd)
//	}
//
// A Scanner precomputes the cutoffs once and can be reused, concurrently,
// for many buffers of the same format.
//
// # Minimum length
//
// MinSilence is converted to samples as
//
//	ms * channels * sampleRate / (1000 * bytesPerSample)
//
// and truncated. The division by the sample width means wider samples need
// proportionally fewer samples to qualify.
//
// # Splitting
//
// Sounds returns the byte ranges between silences and Trim strips leading
// and trailing silence, both working on the slice FindAll returned. Both
// align their cuts to whole frames, so a stereo segment never starts on the
// right channel.
package silence
