// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/utils"
)

// readChunk is the number of samples pulled from the decoder per call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a whole AIFF file. The big-endian sound data is re-encoded as
// little-endian PCM; 24-bit samples are widened to 32 bits.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// If not a ReadSeeker, we need to read all data into memory
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return collect(dec, bitDepth)
}

// collect drains dec into a little-endian PCM buffer.
func collect(dec aiffReader, bitDepth int) (*audio.PCM, error) {
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	width := bitDepth / 8
	if bitDepth == 24 {
		width = 4
	}

	buf := &goaudio.IntBuffer{
		Data:           make([]int, readChunk),
		Format:         format,
		SourceBitDepth: bitDepth,
	}

	var data []byte
	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			if bitDepth == 24 {
				v = utils.Widen24(v)
			}
			data = utils.AppendSample(data, v, width)
		}

		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	return &audio.PCM{
		Format: audio.Format{
			SampleRate:     format.SampleRate,
			Channels:       format.NumChannels,
			BytesPerSample: width,
		},
		Data: data,
	}, nil
}
