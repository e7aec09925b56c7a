// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/alwav/audio"
)

// Info is what the strict decoder reports about a WAV header.
type Info struct {
	AudioFormat   int
	Channels      int
	SampleRate    int
	BitsPerSample int
	DataSize      int
}

// BufferFormat derives the buffer format the way Decode does.
func (i Info) BufferFormat() audio.Format {
	if i.AudioFormat != pcmFormatCode {
		return audio.FormatUnknown
	}
	return audio.FormatFor(i.Channels, i.BitsPerSample)
}

// Probe validates r with the strict go-audio decoder and returns
// the header fields. Unlike Decode it seeks and rejects headers that are
// only partially right.
func Probe(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return Info{}, ErrNotWavFile
	}
	if err := dec.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("locating data chunk: %w", err)
	}

	return Info{
		AudioFormat:   int(dec.WavAudioFormat),
		Channels:      int(dec.NumChans),
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: int(dec.BitDepth),
		DataSize:      dec.PCMSize,
	}, nil
}
