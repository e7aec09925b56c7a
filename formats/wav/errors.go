// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrParseFailure is the single error Decode reports. The cause
	// (short read, bad length) is wrapped alongside it.
	ErrParseFailure = errors.New("wav: parse failure")

	// ErrUnsupportedFormat is returned when decoded data has no buffer
	// format, so it can neither be streamed nor encoded.
	ErrUnsupportedFormat = errors.New("wav: unsupported sample format")

	// ErrNotWavFile is returned by Probe for input the strict decoder
	// does not accept.
	ErrNotWavFile = errors.New("not a WAV file")

	errMalformedHeader = errors.New("malformed RIFF header")
	errNegativeData    = errors.New("data chunk shorter than 8 bytes")
)
