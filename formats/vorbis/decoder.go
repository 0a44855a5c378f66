// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/utils"
	"github.com/jfreymuth/oggvorbis"
)

// readChunk is the number of float values pulled from the decoder per call.
const readChunk = 4096

// outWidth is the width of the 16-bit samples Decode produces.
const outWidth = 2

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode decodes the whole Ogg Vorbis stream into interleaved 16-bit PCM.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return collect(dec)
}

// collect drains dec, quantizing its float values to little-endian int16.
func collect(dec oggReader) (*audio.PCM, error) {
	rate, channels := dec.SampleRate(), dec.Channels()
	if rate <= 0 || channels <= 0 {
		return nil, ErrInvalidStream
	}

	buf := make([]float32, readChunk)

	var data []byte
	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			data = utils.AppendSample(data, utils.FloatToSample(v, outWidth), outWidth)
		}

		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis packets: %w", err)
		}
	}

	return &audio.PCM{
		Format: audio.Format{
			SampleRate:     rate,
			Channels:       channels,
			BytesPerSample: outWidth,
		},
		Data: data,
	}, nil
}
