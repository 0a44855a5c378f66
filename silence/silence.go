// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"fmt"
	"time"
)

// Silence is one region of the buffer that stayed under the threshold.
type Silence struct {
	// Start is the time from the beginning of the buffer to the first silent sample.
	Start time.Duration
	// Duration of the silent region.
	Duration time.Duration
	// IndexStart is the byte offset of the first silent byte.
	IndexStart int
	// IndexEnd is the byte offset of the last silent byte (inclusive).
	IndexEnd int
}

// End is the time just past the silent region.
func (s Silence) End() time.Duration { return s.Start + s.Duration }

// Len is the number of bytes in the region.
func (s Silence) Len() int { return s.IndexEnd - s.IndexStart + 1 }

func (s Silence) String() string {
	return fmt.Sprintf("start=%v duration=%v bytes=[%d,%d]", s.Start, s.Duration, s.IndexStart, s.IndexEnd)
}

// Match is the result of a single scan, relative to the scanned buffer.
type Match struct {
	Start      time.Duration
	Duration   time.Duration
	IndexStart int
	IndexCount int
}

// NoMatch is returned together with ok == false when a scan finds nothing.
var NoMatch = Match{
	Start:      -time.Millisecond,
	Duration:   -time.Millisecond,
	IndexStart: -1,
	IndexCount: -1,
}

// Silence converts m into a Silence whose byte offsets are shifted by offset.
func (m Match) Silence(offset int) Silence {
	return Silence{
		Start:      m.Start,
		Duration:   m.Duration,
		IndexStart: offset + m.IndexStart,
		IndexEnd:   offset + m.IndexStart + m.IndexCount - 1,
	}
}
