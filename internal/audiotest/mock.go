// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/utils"
)

// Builder assembles interleaved PCM test buffers out of runs of frames.
type Builder struct {
	format audio.Format
	data   []byte
}

// NewBuilder creates an empty buffer for format f.
func NewBuilder(f audio.Format) *Builder {
	return &Builder{format: f}
}

// LoudValue is a sample value far above the default threshold for width bytes.
func LoudValue(width int) int {
	switch width {
	case 1:
		return 100
	case 2:
		return 20000
	default:
		return 1 << 30
	}
}

// Samples appends raw interleaved sample values.
func (b *Builder) Samples(values ...int) *Builder {
	for _, v := range values {
		b.data = utils.AppendSample(b.data, v, b.format.BytesPerSample)
	}
	return b
}

// Frames appends n frames with every channel set to value.
func (b *Builder) Frames(n int, value int) *Builder {
	for range n * b.format.Channels {
		b.data = utils.AppendSample(b.data, value, b.format.BytesPerSample)
	}
	return b
}

// Silent appends n frames of digital silence.
func (b *Builder) Silent(n int) *Builder { return b.Frames(n, 0) }

// Loud appends n frames well above the default threshold, alternating sign.
func (b *Builder) Loud(n int) *Builder {
	v := LoudValue(b.format.BytesPerSample)
	for i := range n {
		if i%2 == 1 {
			b.Frames(1, -v)
		} else {
			b.Frames(1, v)
		}
	}
	return b
}

// Raw appends bytes verbatim, e.g. a partial trailing sample.
func (b *Builder) Raw(p ...byte) *Builder {
	b.data = append(b.data, p...)
	return b
}

// Bytes returns the assembled buffer.
func (b *Builder) Bytes() []byte { return b.data }

// PCM wraps the assembled buffer with its format.
func (b *Builder) PCM() *audio.PCM {
	return &audio.PCM{Format: b.format, Data: b.data}
}
