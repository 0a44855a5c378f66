// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pcmsilence/audio"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	outChannels = 2
	outWidth    = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode decodes the whole MP3 stream into 16-bit stereo PCM.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return collect(dec)
}

// collect drains dec. A trailing odd byte is kept; the scanner ignores
// partial samples.
func collect(dec mp3Reader) (*audio.PCM, error) {
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, ErrNoSampleRate
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 frames: %w", err)
	}

	return &audio.PCM{
		Format: audio.Format{
			SampleRate:     rate,
			Channels:       outChannels,
			BytesPerSample: outWidth,
		},
		Data: data,
	}, nil
}
