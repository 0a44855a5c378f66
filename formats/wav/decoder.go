// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/utils"
)

// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
const wavFormatPCM = 1

type Decoder struct{}

// Decode parses the RIFF/WAVE header and returns the raw data chunk.
// 8, 16 and 32-bit data is returned as is; 24-bit data is widened to 32 bits.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	bits := int(dec.BitDepth)
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	data := make([]byte, dec.PCMLen())
	n, err := io.ReadFull(dec.PCMChunk, data)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}
	// A data chunk shorter than its header claims is kept as far as it goes.
	data = data[:n]

	width := bits / 8
	if bits == 24 {
		data = widen24(data)
		width = 4
	}

	return &audio.PCM{
		Format: audio.Format{
			SampleRate:     int(dec.SampleRate),
			Channels:       int(dec.NumChans),
			BytesPerSample: width,
		},
		Data: data,
	}, nil
}

// widen24 converts packed little-endian 24-bit samples to 32-bit ones.
// A trailing partial sample is dropped.
func widen24(src []byte) []byte {
	samples := len(src) / 3
	dst := make([]byte, samples*4)

	for i := range samples {
		b := src[i*3 : i*3+3]
		v := int(int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8)
		utils.PutSample(dst[i*4:], utils.Widen24(v), 4)
	}

	return dst
}
