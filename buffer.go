// SPDX-License-Identifier: EPL-2.0

package alwav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/utils"
)

var (
	// ErrNoChannels is returned by ToBuffer for a source without channels.
	ErrNoChannels = errors.New("source has no channels")
	// ErrUnsupportedBits is returned by ToBuffer when opts.Bits is neither
	// 8 nor 16.
	ErrUnsupportedBits = errors.New("unsupported output bit depth")
)

// maxEmptyReads bounds consecutive (0, nil) reads before ToBuffer gives up.
const maxEmptyReads = 100

// ToBuffer drains src into an 8 or 16-bit PCM buffer.
//
// The pipeline is:
//  1. audio.Resampler when opts.SampleRate is set and differs from the source
//  2. audio.MonoMixer when opts.Mono is set or the source has more than two channels
//  3. float32 to little-endian int16, or to unsigned bytes when opts.Bits is 8
//
// src is not closed.
func ToBuffer(src audio.Source, opts Options) (*audio.DecodedAudio, error) {
	if src.Channels() <= 0 {
		return nil, ErrNoChannels
	}
	bits := opts.bits()
	if bits != 8 && bits != 16 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBits, bits)
	}

	var s audio.Source = src
	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		s = audio.NewResampler(s, opts.SampleRate)
	}
	if opts.Mono || s.Channels() > 2 {
		s = audio.NewMonoMixer(s)
	}

	channels := s.Channels()
	format := audio.FormatFor(channels, bits)

	// The resampler wants whole frames.
	size := max(opts.bufferSize()/channels*channels, channels)
	buf := make([]float32, size)

	// Start with about two seconds and let append grow from there.
	data := make([]byte, 0, max(2*s.SampleRate()*format.FrameSize(), 0))

	empty := 0
	for {
		n, err := s.ReadSamples(buf)
		for _, x := range buf[:n] {
			if bits == 8 {
				data = append(data, utils.Float32ToUint8(x))
				continue
			}
			data = binary.LittleEndian.AppendUint16(data, uint16(utils.Float32ToInt16(x)))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return &audio.DecodedAudio{
		Format:     format,
		Data:       data,
		Size:       len(data),
		SampleRate: s.SampleRate(),
	}, nil
}
