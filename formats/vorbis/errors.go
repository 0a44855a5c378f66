// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotVorbisFile = errors.New("not an ogg vorbis stream")
	ErrInvalidStream = errors.New("vorbis stream has no sample rate or channels")
)
