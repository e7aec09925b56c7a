// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/alwav/audio"
)

// Encode writes a as a standard PCM WAV file (44-byte header, data chunk
// length equal to the payload). The output uses regular RIFF lengths, not
// the 8-byte padded data length Decode expects.
func Encode(w io.WriteSeeker, a *audio.DecodedAudio) error {
	if a == nil || !a.Format.Valid() {
		return ErrUnsupportedFormat
	}

	channels := a.Format.Channels()
	bits := a.Format.BitsPerSample()
	frameSize := a.Format.FrameSize()
	frames := len(a.Data) / frameSize

	samples := make([]int, frames*channels)
	if bits == 8 {
		for i := range samples {
			samples[i] = int(a.Data[i])
		}
	} else {
		for i := range samples {
			samples[i] = int(int16(binary.LittleEndian.Uint16(a.Data[2*i:])))
		}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: a.SampleRate},
		Data:           samples,
		SourceBitDepth: bits,
	}

	enc := gowav.NewEncoder(w, a.SampleRate, bits, channels, pcmFormatCode)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
