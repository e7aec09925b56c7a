// SPDX-License-Identifier: EPL-2.0

package al

import "errors"

var (
	ErrClosed            = errors.New("al: context closed")
	ErrNilBackend        = errors.New("al: nil backend")
	ErrNilBuffer         = errors.New("al: nil buffer")
	ErrInvalidFormat     = errors.New("al: invalid buffer format")
	ErrInvalidSampleRate = errors.New("al: invalid sample rate")
	ErrInvalidSize       = errors.New("al: data size is not a whole number of frames")
	ErrUnknownBuffer     = errors.New("al: unknown buffer")
)
