// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Format identifies the channel layout and bit depth of a PCM buffer.
// The values match the OpenAL buffer format enumerants so a Format can be
// handed to an audio backend as is.
type Format int32

const (
	// FormatUnknown is reported when the input is not PCM or uses a channel
	// layout with no buffer format. Loaders historically returned -1 here.
	FormatUnknown Format = -1

	FormatMono8    Format = 0x1100
	FormatMono16   Format = 0x1101
	FormatStereo8  Format = 0x1102
	FormatStereo16 Format = 0x1103
)

// FormatFor maps a channel count and bit depth to a buffer format.
// Mono and stereo are the only layouts; any bit depth other than 8 selects
// the 16-bit variant.
func FormatFor(channels, bitsPerSample int) Format {
	switch channels {
	case 1:
		if bitsPerSample == 8 {
			return FormatMono8
		}
		return FormatMono16
	case 2:
		if bitsPerSample == 8 {
			return FormatStereo8
		}
		return FormatStereo16
	}
	return FormatUnknown
}

// Valid reports whether f is one of the four buffer formats.
func (f Format) Valid() bool {
	switch f {
	case FormatMono8, FormatMono16, FormatStereo8, FormatStereo16:
		return true
	}
	return false
}

// Channels returns 1 or 2, or 0 for FormatUnknown.
func (f Format) Channels() int {
	switch f {
	case FormatMono8, FormatMono16:
		return 1
	case FormatStereo8, FormatStereo16:
		return 2
	}
	return 0
}

// BitsPerSample returns 8 or 16, or 0 for FormatUnknown.
func (f Format) BitsPerSample() int {
	switch f {
	case FormatMono8, FormatStereo8:
		return 8
	case FormatMono16, FormatStereo16:
		return 16
	}
	return 0
}

// FrameSize is the number of bytes holding one sample for every channel.
func (f Format) FrameSize() int {
	return f.Channels() * f.BitsPerSample() / 8
}

func (f Format) String() string {
	switch f {
	case FormatMono8:
		return "mono8"
	case FormatMono16:
		return "mono16"
	case FormatStereo8:
		return "stereo8"
	case FormatStereo16:
		return "stereo16"
	case FormatUnknown:
		return "unknown"
	}
	return fmt.Sprintf("Format(%#x)", int32(f))
}
