// SPDX-License-Identifier: EPL-2.0

package silence

import (
	"errors"

	"github.com/ik5/pcmsilence/audio"
)

var (
	// ErrUnsupportedSampleWidth is returned when bytes per sample is not 1, 2 or 4.
	ErrUnsupportedSampleWidth = audio.ErrUnsupportedSampleWidth

	// ErrInvalidFormat is returned for a zero sample rate or channel count.
	ErrInvalidFormat = audio.ErrInvalidFormat

	// ErrSampleOutOfRange is returned by Amplitude when the sample does not
	// fit in the buffer.
	ErrSampleOutOfRange = errors.New("sample index out of range")
)
