// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrInvalidStream wraps header errors from oggvorbis.
	ErrInvalidStream = errors.New("vorbis: invalid stream")

	// ErrNoChannels is returned for a stream whose header declares zero
	// channels.
	ErrNoChannels = errors.New("vorbis: stream has no channels")
)
