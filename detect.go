// SPDX-License-Identifier: EPL-2.0

package pcmsilence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/formats/aiff"
	"github.com/ik5/pcmsilence/formats/mp3"
	"github.com/ik5/pcmsilence/formats/vorbis"
	"github.com/ik5/pcmsilence/formats/wav"
	"github.com/ik5/pcmsilence/silence"
)

// Result is a decoded stream together with the silences found in it.
type Result struct {
	PCM      *audio.PCM
	Silences []silence.Silence
}

// Sounds returns the non-silent regions of the stream.
func (r *Result) Sounds() []silence.Segment {
	return silence.Sounds(len(r.PCM.Data), r.PCM.Format, r.Silences)
}

// DefaultRegistry returns a registry with every bundled container decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

var defaultRegistry = sync.OnceValue(DefaultRegistry)

// FormatOf returns the registry key for path: its extension, lower-cased and
// without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Detect decodes r as format with the default registry and scans it.
func Detect(r io.Reader, format string, p silence.Policy) (*Result, error) {
	return DetectWith(defaultRegistry(), r, format, p)
}

// DetectWith is Detect using the decoders of reg.
func DetectWith(reg *audio.Registry, r io.Reader, format string, p silence.Policy) (*Result, error) {
	pcm, err := reg.Decode(format, r)
	if err != nil {
		return nil, err
	}

	silences, err := silence.FindAll(pcm.Data, pcm.Format, p)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", format, err)
	}

	return &Result{PCM: pcm, Silences: silences}, nil
}

// DetectFile opens path, picks the decoder from its extension and scans it.
func DetectFile(path string, p silence.Policy) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Detect(f, FormatOf(path), p)
}
