// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmsilence/audio"
)

// headerSize is the size of a canonical RIFF/WAVE header with one fmt and one data chunk.
const headerSize = 44

// WritePCM writes pcm as a canonical PCM WAV file. The data is written as is,
// so it must already be little-endian with unsigned 8-bit samples.
func WritePCM(w io.Writer, pcm *audio.PCM) error {
	if err := pcm.Format.Validate(); err != nil {
		return err
	}

	f := pcm.Format
	numChannels := uint16(f.Channels)
	bitsPerSample := uint16(f.BitsPerSample())
	byteRate := uint32(f.SampleRate) * uint32(f.FrameSize())
	blockAlign := uint16(f.FrameSize())
	dataSize := uint32(len(pcm.Data))
	// RIFF chunks are word aligned; an odd data chunk gets one pad byte.
	pad := dataSize % 2
	riffSize := 36 + dataSize + pad

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	if len(pcm.Data) == 0 {
		return nil
	}

	if _, err := w.Write(pcm.Data); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("writing wav padding: %w", err)
		}
	}

	return nil
}
