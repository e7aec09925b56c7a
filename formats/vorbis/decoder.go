// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/alwav/audio"
)

// sampleReader is the part of oggvorbis.Reader the source needs. Read
// returns the number of interleaved samples written, not frames.
type sampleReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      sampleReader
	channels int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst, trimmed to whole frames. Short
// reads from the decoder are retried until dst is full or the stream ends.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)/s.channels*s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(dst) {
		n, err := s.dec.Read(dst[total:])
		total += n
		if errors.Is(err, io.EOF) {
			return total, io.EOF
		}
		if err != nil {
			return total, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}
	return newSource(dec)
}

func newSource(dec sampleReader) (*source, error) {
	if dec.Channels() <= 0 {
		return nil, ErrNoChannels
	}
	return &source{dec: dec, channels: dec.Channels()}, nil
}
