// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFormat          = errors.New("sample rate and channels must be positive")
	ErrUnsupportedSampleWidth = errors.New("bytes per sample must be 1, 2 or 4")
	ErrUnknownFormat          = errors.New("no decoder registered for format")
)
