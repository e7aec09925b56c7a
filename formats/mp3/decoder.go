// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/utils"
)

// go-mp3 always produces interleaved stereo int16 LE.
const (
	channels    = 2
	sampleBytes = 2
	frameBytes  = channels * sampleBytes
)

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec pcmReader
	buf []byte
	eof bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// BufSize returns the sample capacity of the byte buffer.
func (s *source) BufSize() int { return cap(s.buf) / sampleBytes }

// ReadSamples fills dst with whole stereo frames. A trailing odd sample
// slot in dst is left untouched.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := frames * frameBytes
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := io.ReadFull(s.dec, buf)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
		err = io.EOF
	default:
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / frameBytes * channels
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(buf[i*sampleBytes:])))
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStream, err)
	}
	return &source{dec: dec, buf: make([]byte, 8192)}, nil
}
