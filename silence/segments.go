// SPDX-License-Identifier: EPL-2.0

package silence

import "github.com/ik5/pcmsilence/audio"

// Segment is a byte range [IndexStart, IndexEnd] of a buffer.
type Segment struct {
	IndexStart int
	IndexEnd   int
}

// Len returns the number of bytes in s.
func (s Segment) Len() int { return s.IndexEnd - s.IndexStart + 1 }

// Bytes returns the part of buf covered by s.
func (s Segment) Bytes(buf []byte) []byte { return buf[s.IndexStart : s.IndexEnd+1] }

// frameSize is the alignment unit for f, one byte for an invalid format.
func frameSize(f audio.Format) int {
	return max(f.FrameSize(), 1)
}

// Sounds returns the regions of a total-byte buffer not covered by silences,
// in order. silences must be ordered and non-overlapping, as FindAll returns them.
//
// Silences start and end on any interleaved sample, so every region is
// widened outward to whole frames of f. Regions left touching or overlapping
// by the widening are merged.
func Sounds(total int, f audio.Format, silences []Silence) []Segment {
	fs := frameSize(f)

	var (
		sounds []Segment
		pos    int
	)

	add := func(start, end int) {
		start -= start % fs
		end = min((end/fs+1)*fs-1, total-1)

		if n := len(sounds); n > 0 && start <= sounds[n-1].IndexEnd+1 {
			sounds[n-1].IndexEnd = max(sounds[n-1].IndexEnd, end)
			return
		}
		sounds = append(sounds, Segment{IndexStart: start, IndexEnd: end})
	}

	for _, s := range silences {
		if s.IndexStart > pos {
			add(pos, s.IndexStart-1)
		}
		pos = max(pos, s.IndexEnd+1)
	}

	if pos < total {
		add(pos, total-1)
	}

	return sounds
}

// Trim drops a leading silence that starts at byte 0 and a trailing
// silence that is followed by less than one sample. The cut points are
// moved outward to frame boundaries so no sound sample is lost. The result
// shares memory with buf.
func Trim(buf []byte, f audio.Format, silences []Silence) []byte {
	if len(silences) == 0 {
		return buf
	}

	fs := frameSize(f)
	start, end := 0, len(buf)

	if first := silences[0]; first.IndexStart == 0 {
		start = first.IndexEnd + 1
		start -= start % fs
	}

	if last := silences[len(silences)-1]; len(buf)-(last.IndexEnd+1) < f.BytesPerSample {
		end = min((last.IndexStart+fs-1)/fs*fs, len(buf))
	}

	if end < start {
		return buf[start:start]
	}

	return buf[start:end]
}
