// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"math"
	"time"

	"github.com/ik5/pcmsilence/audio"
)

// DefaultThresholdDB is the loudness under which a sample counts as silent.
const DefaultThresholdDB = -40

// Policy controls what counts as a silence.
type Policy struct {
	// MinSilence is the shortest run reported in the middle of a buffer.
	// A run that reaches the end of the buffer is reported regardless.
	MinSilence time.Duration
	// ThresholdDB is the loudness cutoff relative to full scale, e.g. -40.
	ThresholdDB int
}

// DefaultPolicy returns a Policy using DefaultThresholdDB.
func DefaultPolicy(minSilence time.Duration) Policy {
	return Policy{MinSilence: minSilence, ThresholdDB: DefaultThresholdDB}
}

// Threshold converts thresholdDB into a raw amplitude cutoff for samples of
// bytesPerSample bytes: 10^(dB/20) * 2^(8*bytesPerSample).
//
// The full unsigned range is used as the reference, so the result is twice
// the conventional signed full-scale value.
func Threshold(thresholdDB, bytesPerSample int) float32 {
	return float32(math.Pow(10, float64(thresholdDB)/20) * math.Pow(2, float64(bytesPerSample*8)))
}

// MinSamples converts minSilence into a count of interleaved samples:
// ms * channels * rate / (1000 * bytesPerSample), truncated.
func MinSamples(minSilence time.Duration, f audio.Format) int {
	ms := float64(minSilence) / float64(time.Millisecond)
	return int(ms * float64(f.Channels) * float64(f.SampleRate) / (1000 * float64(f.BytesPerSample)))
}

// Scanner finds silences in buffers of one format under one policy.
// It holds no mutable state and may be shared between goroutines.
type Scanner struct {
	format     audio.Format
	threshold  float64
	minSamples int
}

// NewScanner validates f and precomputes the cutoffs of p.
func NewScanner(f audio.Format, p Policy) (*Scanner, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &Scanner{
		format:     f,
		threshold:  float64(Threshold(p.ThresholdDB, f.BytesPerSample)),
		minSamples: MinSamples(p.MinSilence, f),
	}, nil
}

// Format returns the PCM format the scanner was built for.
func (s *Scanner) Format() audio.Format { return s.format }

// run is a span of samples counted from the start of a scan window.
type run struct {
	start  int
	length int
}

// next scans the window buf[from:] and returns the first run that is long
// enough, or the run still open when the window ends.
func (s *Scanner) next(buf []byte, from int) (run, bool) {
	width := s.format.BytesPerSample
	count := (len(buf) - from) / width

	start, length := -1, 0
	for n := range count {
		v := amplitude(buf, from+n*width, width)
		if math.Abs(float64(v)) < s.threshold {
			if start < 0 {
				start = n
			}
			length++
			continue
		}

		if start < 0 {
			continue
		}
		if length >= s.minSamples {
			break
		}
		start, length = -1, 0
	}

	if start < 0 {
		return run{}, false
	}

	return run{start: start, length: length}, true
}

func (s *Scanner) match(r run) Match {
	perSecond := time.Duration(s.format.SampleRate * s.format.Channels)
	width := s.format.BytesPerSample

	return Match{
		Start:      time.Duration(r.start) * time.Second / perSecond,
		Duration:   time.Duration(r.length) * time.Second / perSecond,
		IndexStart: r.start * width,
		IndexCount: r.length * width,
	}
}

// FindNext returns the first silence in buf. When there is none it returns
// NoMatch and false.
func (s *Scanner) FindNext(buf []byte) (Match, bool) {
	r, ok := s.next(buf, 0)
	if !ok {
		return NoMatch, false
	}

	return s.match(r), true
}

// FindAll returns every silence in buf, ordered and non-overlapping. Each
// search resumes right after the previous silence.
func (s *Scanner) FindAll(buf []byte) []Silence {
	var (
		silences []Silence
		elapsed  time.Duration
		cursor   int
	)

	for cursor < len(buf) {
		r, ok := s.next(buf, cursor)
		if !ok {
			break
		}

		m := s.match(r)
		elapsed += m.Start

		found := m.Silence(cursor)
		found.Start = elapsed
		silences = append(silences, found)

		elapsed += m.Duration
		cursor += m.IndexStart + m.IndexCount
	}

	return silences
}

// FindNext reports the first silence in buf, see Scanner.FindNext.
func FindNext(buf []byte, f audio.Format, p Policy) (Match, bool, error) {
	s, err := NewScanner(f, p)
	if err != nil {
		return NoMatch, false, err
	}

	m, ok := s.FindNext(buf)
	return m, ok, nil
}

// FindFirst is FindNext returning a Silence with an inclusive end index.
func FindFirst(buf []byte, f audio.Format, p Policy) (Silence, bool, error) {
	m, ok, err := FindNext(buf, f, p)
	if err != nil || !ok {
		return Silence{}, false, err
	}

	return m.Silence(0), true, nil
}

// FindAll reports every silence in buf, see Scanner.FindAll.
func FindAll(buf []byte, f audio.Format, p Policy) ([]Silence, error) {
	s, err := NewScanner(f, p)
	if err != nil {
		return nil, err
	}

	return s.FindAll(buf), nil
}
