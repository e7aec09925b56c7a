// SPDX-License-Identifier: EPL-2.0

package wav

import "github.com/ik5/alwav/audio"

const (
	riffTag  = "RIFF"
	waveForm = "WAVE"
	fmtTag   = "fmt "
	dataTag  = "data"

	// pcmFormatCode is WAVE_FORMAT_PCM.
	pcmFormatCode = 1

	// fmtBaseLen is the length of the fixed fields of a fmt chunk.
	fmtBaseLen = 16
	// minRemaining is the counter value at which the chunk walk stops.
	minRemaining = 8
)

// RiffHeader is the 12-byte preamble of a RIFF stream.
type RiffHeader struct {
	Tag    [4]byte
	Length int32
	Form   [4]byte
}

// Plausible reports whether decoding may proceed. The header is rejected
// only when the tag, the length and the form type are all wrong at once.
func (h RiffHeader) Plausible() bool {
	return string(h.Tag[:]) == riffTag || h.Length > 0 || string(h.Form[:]) == waveForm
}

// ChunkHeader precedes every chunk inside the RIFF body.
type ChunkHeader struct {
	Tag    [4]byte
	Length int32
}

func (c ChunkHeader) ID() string { return string(c.Tag[:]) }

// FormatDescriptor is the content of a fmt chunk.
type FormatDescriptor struct {
	FormatCode    int16
	Channels      int16
	SampleRate    int32
	ByteRate      int32
	BlockAlign    int16
	BitsPerSample int16
	// Extra holds the codec specific bytes of an extended fmt chunk.
	Extra []byte
}

// IsPCM reports whether the descriptor announces uncompressed PCM.
func (d FormatDescriptor) IsPCM() bool { return d.FormatCode == pcmFormatCode }

// BufferFormat derives the buffer format. Anything but PCM mono or
// stereo yields audio.FormatUnknown.
func (d FormatDescriptor) BufferFormat() audio.Format {
	if !d.IsPCM() {
		return audio.FormatUnknown
	}
	return audio.FormatFor(int(d.Channels), int(d.BitsPerSample))
}
