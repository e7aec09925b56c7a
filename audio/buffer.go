// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// DecodedAudio is a fully decoded PCM buffer, ready to be submitted to an
// audio backend.
//
// Data holds interleaved samples: unsigned bytes for 8-bit formats and
// little-endian signed int16 for 16-bit formats. Size is len(Data).
// Loop is carried for backends that take a loop flag; decoders in this
// module never set it.
type DecodedAudio struct {
	Format     Format
	Data       []byte
	Size       int
	SampleRate int
	Loop       bool
}

// Frames returns the number of complete sample frames in Data.
func (a *DecodedAudio) Frames() int {
	fs := a.Format.FrameSize()
	if fs == 0 {
		return 0
	}
	return len(a.Data) / fs
}

// Duration is the playback length at SampleRate.
func (a *DecodedAudio) Duration() time.Duration {
	if a.SampleRate <= 0 {
		return 0
	}
	return time.Duration(a.Frames()) * time.Second / time.Duration(a.SampleRate)
}
