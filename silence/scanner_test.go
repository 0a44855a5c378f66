// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/internal/audiotest"
)

var policy200ms = Policy{MinSilence: 200 * time.Millisecond, ThresholdDB: -40}

func TestFindFirst_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    []byte
		format audio.Format
		want   Silence
	}{
		{
			name:   "8-bit mono",
			buf:    []byte{0x78, 0x78, 0x80, 0x78},
			format: audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 1},
			want:   Silence{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 2, IndexEnd: 2},
		},
		{
			name:   "8-bit stereo",
			buf:    []byte{0x78, 0x78, 0x78, 0x78, 0x80, 0x80, 0x78, 0x78},
			format: audio.Format{SampleRate: 4, Channels: 2, BytesPerSample: 1},
			want:   Silence{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 4, IndexEnd: 5},
		},
		{
			name:   "16-bit mono",
			buf:    []byte{0x78, 0x78, 0x88, 0x78, 0x00, 0x00, 0x78, 0x78},
			format: audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 2},
			want:   Silence{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 4, IndexEnd: 5},
		},
		{
			name: "32-bit mono",
			buf: []byte{
				0x78, 0x78, 0x88, 0x78, 0x78, 0x78, 0x88, 0x78,
				0x00, 0x00, 0x00, 0x00, 0x78, 0x78, 0x88, 0x78,
			},
			format: audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 4},
			want:   Silence{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 8, IndexEnd: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := FindFirst(tt.buf, tt.format, policy200ms)
			if err != nil {
				t.Fatalf("FindFirst() error = %v", err)
			}
			if !ok {
				t.Fatal("FindFirst() found no silence")
			}
			if got != tt.want {
				t.Errorf("FindFirst() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindAll_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buf    []byte
		format audio.Format
		want   []Silence
	}{
		{
			name: "16-bit mono",
			buf: []byte{
				0x78, 0x78, 0x88, 0x78, 0x00, 0x00, 0x78, 0x78,
				0x78, 0x78, 0x88, 0x78, 0x00, 0x00, 0x78, 0x78,
			},
			format: audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 2},
			want: []Silence{
				{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 4, IndexEnd: 5},
				{Start: 1500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 12, IndexEnd: 13},
			},
		},
		{
			name:   "8-bit mono",
			buf:    []byte{0x70, 0x70, 0x80, 0x70, 0x70, 0x70, 0x80, 0x70},
			format: audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 1},
			want: []Silence{
				{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 2, IndexEnd: 2},
				{Start: 1500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 6, IndexEnd: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FindAll(tt.buf, tt.format, policy200ms)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindAll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNext_Match(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 2}
	buf := []byte{0x78, 0x78, 0x88, 0x78, 0x00, 0x00, 0x78, 0x78}

	m, ok, err := FindNext(buf, f, policy200ms)
	if err != nil || !ok {
		t.Fatalf("FindNext() ok = %v, error = %v", ok, err)
	}

	want := Match{Start: 500 * time.Millisecond, Duration: 250 * time.Millisecond, IndexStart: 4, IndexCount: 2}
	if m != want {
		t.Errorf("FindNext() = %+v, want %+v", m, want)
	}
}

func TestFindNext_NoMatch(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 1000, Channels: 2, BytesPerSample: 2}

	tests := []struct {
		name string
		buf  []byte
	}{
		{"nil buffer", nil},
		{"less than one sample", []byte{0x00}},
		{"all loud", audiotest.NewBuilder(f).Loud(50).Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, ok, err := FindNext(tt.buf, f, DefaultPolicy(10*time.Millisecond))
			if err != nil {
				t.Fatalf("FindNext() error = %v", err)
			}
			if ok {
				t.Errorf("FindNext() ok = true, match %+v", m)
			}
			if m != NoMatch {
				t.Errorf("FindNext() = %+v, want NoMatch", m)
			}

			all, err := FindAll(tt.buf, f, DefaultPolicy(10*time.Millisecond))
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}
			if len(all) != 0 {
				t.Errorf("FindAll() = %v, want empty", all)
			}

			if _, ok, _ := FindFirst(tt.buf, f, DefaultPolicy(10*time.Millisecond)); ok {
				t.Error("FindFirst() ok = true, want false")
			}
		})
	}
}

func TestFindNext_InvalidParameters(t *testing.T) {
	t.Parallel()

	buf := []byte{0x80, 0x80, 0x80, 0x80}

	tests := []struct {
		name    string
		format  audio.Format
		wantErr error
	}{
		{"zero sample rate", audio.Format{SampleRate: 0, Channels: 1, BytesPerSample: 1}, ErrInvalidFormat},
		{"zero channels", audio.Format{SampleRate: 8000, Channels: 0, BytesPerSample: 1}, ErrInvalidFormat},
		{"3 bytes per sample", audio.Format{SampleRate: 8000, Channels: 1, BytesPerSample: 3}, ErrUnsupportedSampleWidth},
		{"8 bytes per sample", audio.Format{SampleRate: 8000, Channels: 1, BytesPerSample: 8}, ErrUnsupportedSampleWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := FindNext(buf, tt.format, policy200ms); !errors.Is(err, tt.wantErr) {
				t.Errorf("FindNext() error = %v, want %v", err, tt.wantErr)
			}
			if _, _, err := FindFirst(buf, tt.format, policy200ms); !errors.Is(err, tt.wantErr) {
				t.Errorf("FindFirst() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := FindAll(buf, tt.format, policy200ms); !errors.Is(err, tt.wantErr) {
				t.Errorf("FindAll() error = %v, want %v", err, tt.wantErr)
			}
			if _, err := NewScanner(tt.format, policy200ms); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewScanner() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindAll_ShortRunDiscardedMidBuffer(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 1}
	buf := audiotest.NewBuilder(f).Loud(3).Silent(2).Loud(3).Silent(6).Loud(2).Bytes()

	got, err := FindAll(buf, f, DefaultPolicy(5*time.Millisecond))
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	want := []Silence{{Start: 8 * time.Millisecond, Duration: 6 * time.Millisecond, IndexStart: 8, IndexEnd: 13}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAll_ShortTrailingRunKept(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 1}
	buf := audiotest.NewBuilder(f).Loud(3).Silent(2).Bytes()

	got, err := FindAll(buf, f, DefaultPolicy(5*time.Millisecond))
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	want := []Silence{{Start: 3 * time.Millisecond, Duration: 2 * time.Millisecond, IndexStart: 3, IndexEnd: 4}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAll_LoudSampleOnAnyChannelBreaksRun(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 100, Channels: 2, BytesPerSample: 2}
	buf := audiotest.NewBuilder(f).
		Samples(0, 0, 0, 0, 0, 20000, 0, 0, 0, 0).
		Loud(1).
		Bytes()

	got, err := FindAll(buf, f, Policy{ThresholdDB: -40})
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	want := []Silence{
		{Start: 0, Duration: 25 * time.Millisecond, IndexStart: 0, IndexEnd: 9},
		{Start: 30 * time.Millisecond, Duration: 20 * time.Millisecond, IndexStart: 12, IndexEnd: 19},
	}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAll_PartialTrailingSampleIgnored(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 2}
	buf := audiotest.NewBuilder(f).Loud(2).Silent(2).Raw(0x00).Bytes()

	got, err := FindAll(buf, f, DefaultPolicy(time.Millisecond))
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	want := []Silence{{Start: 2 * time.Millisecond, Duration: 2 * time.Millisecond, IndexStart: 4, IndexEnd: 7}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAll_WholeBufferSilent(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 8000, Channels: 2, BytesPerSample: 4}
	buf := audiotest.NewBuilder(f).Silent(8000).Bytes()

	got, err := FindAll(buf, f, DefaultPolicy(time.Second))
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	want := []Silence{{Start: 0, Duration: time.Second, IndexStart: 0, IndexEnd: len(buf) - 1}}
	if !slices.Equal(got, want) {
		t.Errorf("FindAll() = %v, want %v", got, want)
	}
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		db    int
		width int
		want  float64
	}{
		{-40, 1, 2.56},
		{-40, 2, 655.36},
		{-40, 4, 42949672.96},
		{0, 2, 65536},
		{-20, 2, 6553.6},
	}

	for _, tt := range tests {
		got := float64(Threshold(tt.db, tt.width))
		if math.Abs(got-tt.want)/tt.want > 1e-6 {
			t.Errorf("Threshold(%d, %d) = %v, want %v", tt.db, tt.width, got, tt.want)
		}
	}
}

func TestThreshold_Boundary(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 2}

	quiet := audiotest.NewBuilder(f).Loud(1).Samples(655, -655).Loud(1).Bytes()
	if _, ok, _ := FindNext(quiet, f, DefaultPolicy(0)); !ok {
		t.Error("FindNext() treated |655| as loud under a 655.36 threshold")
	}

	loud := audiotest.NewBuilder(f).Loud(1).Samples(656, -656).Loud(1).Bytes()
	if m, ok, _ := FindNext(loud, f, DefaultPolicy(0)); ok {
		t.Errorf("FindNext() treated |656| as silent: %+v", m)
	}
}

func TestMinSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		min  time.Duration
		f    audio.Format
		want int
	}{
		{"truncates 0.8", 200 * time.Millisecond, audio.Format{SampleRate: 4, Channels: 1, BytesPerSample: 1}, 0},
		{"truncates 1.6", 200 * time.Millisecond, audio.Format{SampleRate: 4, Channels: 2, BytesPerSample: 1}, 1},
		{"divides by width", 500 * time.Millisecond, audio.Format{SampleRate: 44100, Channels: 2, BytesPerSample: 2}, 22050},
		{"32-bit", time.Millisecond, audio.Format{SampleRate: 8000, Channels: 1, BytesPerSample: 4}, 2},
		{"sub-millisecond", 1500 * time.Microsecond, audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 1}, 1},
		{"zero", 0, audio.Format{SampleRate: 48000, Channels: 2, BytesPerSample: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MinSamples(tt.min, tt.f); got != tt.want {
				t.Errorf("MinSamples(%v, %v) = %d, want %d", tt.min, tt.f, got, tt.want)
			}
		})
	}
}

// randomBuffer alternates loud and quiet runs of random length.
func randomBuffer(r *rand.Rand, f audio.Format, runs int) []byte {
	b := audiotest.NewBuilder(f)
	for i := range runs {
		frames := 1 + r.IntN(40)
		if i%2 == 0 {
			b.Loud(frames)
			continue
		}
		// Quiet but not digital zero, so the threshold matters.
		b.Frames(frames, r.IntN(3)-1)
	}
	return b.Bytes()
}

func TestFindAll_Properties(t *testing.T) {
	t.Parallel()

	formats := []audio.Format{
		{SampleRate: 1000, Channels: 1, BytesPerSample: 1},
		{SampleRate: 8000, Channels: 2, BytesPerSample: 2},
		{SampleRate: 44100, Channels: 2, BytesPerSample: 4},
	}

	r := rand.New(rand.NewPCG(1, 2))

	for _, f := range formats {
		for range 50 {
			buf := randomBuffer(r, f, 1+r.IntN(30))
			p := DefaultPolicy(time.Duration(r.IntN(20)) * time.Millisecond)

			got, err := FindAll(buf, f, p)
			if err != nil {
				t.Fatalf("FindAll() error = %v", err)
			}

			again, _ := FindAll(buf, f, p)
			if !slices.Equal(got, again) {
				t.Fatalf("FindAll() not deterministic for %v", f)
			}

			minSamples := MinSamples(p.MinSilence, f)
			for i, s := range got {
				if s.IndexEnd < s.IndexStart {
					t.Fatalf("silence %d: end %d before start %d", i, s.IndexEnd, s.IndexStart)
				}
				if s.Len()%f.BytesPerSample != 0 {
					t.Fatalf("silence %d: length %d not a multiple of %d", i, s.Len(), f.BytesPerSample)
				}
				if i+1 < len(got) {
					if s.IndexEnd >= got[i+1].IndexStart {
						t.Fatalf("silence %d overlaps the next: %v, %v", i, s, got[i+1])
					}
					if samples := s.Len() / f.BytesPerSample; samples < minSamples {
						t.Fatalf("silence %d: %d samples below minimum %d", i, samples, minSamples)
					}
					if s.End() > got[i+1].Start {
						t.Fatalf("silence %d ends after the next starts: %v, %v", i, s, got[i+1])
					}
				}
			}
		}
	}
}

func TestFindAll_MinDurationOn8Bit(t *testing.T) {
	t.Parallel()

	// At 1 kHz mono 8-bit one sample is one millisecond, so the sample
	// minimum and the time minimum coincide.
	f := audio.Format{SampleRate: 1000, Channels: 1, BytesPerSample: 1}
	r := rand.New(rand.NewPCG(7, 7))

	for range 100 {
		buf := randomBuffer(r, f, 1+r.IntN(30))
		p := DefaultPolicy(time.Duration(1+r.IntN(20)) * time.Millisecond)

		got, _ := FindAll(buf, f, p)
		for i, s := range got {
			if i == len(got)-1 {
				break
			}
			if s.Duration < p.MinSilence {
				t.Fatalf("silence %d: duration %v below %v", i, s.Duration, p.MinSilence)
			}
		}
	}
}

func TestFindAll_ThresholdMonotonic(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 8000, Channels: 1, BytesPerSample: 2}
	r := rand.New(rand.NewPCG(3, 4))

	total := func(buf []byte, db int, minSilence time.Duration) (time.Duration, int) {
		got, err := FindAll(buf, f, Policy{MinSilence: minSilence, ThresholdDB: db})
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		var d time.Duration
		var n int
		for _, s := range got {
			d += s.Duration
			n += s.Len()
		}
		return d, n
	}

	for range 50 {
		b := audiotest.NewBuilder(f)
		for range 1 + r.IntN(40) {
			b.Frames(1+r.IntN(20), r.IntN(4000)-2000)
		}
		buf := b.Bytes()
		minSilence := time.Duration(r.IntN(5)) * time.Millisecond

		prevDur, prevBytes := total(buf, -80, minSilence)
		for db := -70; db <= 0; db += 10 {
			dur, n := total(buf, db, minSilence)
			if dur < prevDur || n < prevBytes {
				t.Fatalf("raising threshold to %d dB reduced silence from %v/%d to %v/%d", db, prevDur, prevBytes, dur, n)
			}
			prevDur, prevBytes = dur, n
		}
	}
}

func TestScanner_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := audio.Format{SampleRate: 16000, Channels: 1, BytesPerSample: 2}
	buf := audiotest.NewBuilder(f).Loud(100).Silent(400).Loud(50).Silent(200).Bytes()

	s, err := NewScanner(f, DefaultPolicy(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewScanner() error = %v", err)
	}
	if s.Format() != f {
		t.Errorf("Format() = %v, want %v", s.Format(), f)
	}

	want := s.FindAll(buf)
	if len(want) != 2 {
		t.Fatalf("FindAll() = %v, want 2 silences", want)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			if got := s.FindAll(buf); !slices.Equal(got, want) {
				t.Errorf("concurrent FindAll() = %v, want %v", got, want)
			}
		})
	}
	wg.Wait()
}

func BenchmarkScanner_FindAll(b *testing.B) {
	f := audio.Format{SampleRate: 44100, Channels: 2, BytesPerSample: 2}
	builder := audiotest.NewBuilder(f)
	for range 10 {
		builder.Loud(44100).Silent(22050)
	}
	buf := builder.Bytes()

	s, _ := NewScanner(f, DefaultPolicy(500*time.Millisecond))

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_ = s.FindAll(buf)
	}
}
