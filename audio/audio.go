// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
)

// Format describes an interleaved, little-endian linear PCM stream.
type Format struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// BytesPerSample is the width of one sample of one channel: 1, 2 or 4.
	BytesPerSample int
}

// Validate reports ErrInvalidFormat for a zero or negative sample rate or
// channel count, and ErrUnsupportedSampleWidth for a width other than 1, 2 or 4.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: channels %d", ErrInvalidFormat, f.Channels)
	}

	switch f.BytesPerSample {
	case 1, 2, 4:
		return nil
	}

	return fmt.Errorf("%w: %d bytes per sample", ErrUnsupportedSampleWidth, f.BytesPerSample)
}

// FrameSize is the number of bytes holding one sample for every channel.
func (f Format) FrameSize() int { return f.Channels * f.BytesPerSample }

// BitsPerSample returns the sample width in bits.
func (f Format) BitsPerSample() int { return f.BytesPerSample * 8 }

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit", f.SampleRate, f.Channels, f.BitsPerSample())
}

// PCM is a fully decoded buffer of raw interleaved samples.
type PCM struct {
	Format Format
	Data   []byte
}

// Frames returns the number of complete frames in Data. A partial trailing
// frame is not counted.
func (p *PCM) Frames() int {
	size := p.Format.FrameSize()
	if size <= 0 {
		return 0
	}
	return len(p.Data) / size
}

// Duration of the complete frames in Data.
func (p *PCM) Duration() time.Duration {
	if p.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.Format.SampleRate)
}

// Decoder reads a whole container from r and returns its raw PCM payload.
type Decoder interface {
	Decode(r io.Reader) (*PCM, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Decode looks up the decoder registered for format and runs it on src.
func (r *Registry) Decode(format string, src io.Reader) (*PCM, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	pcm, err := d.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	return pcm, nil
}
