// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/utils"
)

// source streams the payload of a DecodedAudio as float32.
type source struct {
	data       []byte
	off        int
	sampleRate int
	channels   int
	width      int // bytes per sample
}

// NewSource wraps decoded PCM as an audio.Source. The data is read in
// place, not copied.
func NewSource(a *audio.DecodedAudio) (audio.Source, error) {
	if a == nil || !a.Format.Valid() {
		return nil, ErrUnsupportedFormat
	}
	return &source{
		data:       a.Data,
		sampleRate: a.SampleRate,
		channels:   a.Format.Channels(),
		width:      a.Format.BitsPerSample() / 8,
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	left := (len(s.data) - s.off) / s.width
	if left == 0 {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := min(len(dst), left)
	b := s.data[s.off : s.off+n*s.width]
	if s.width == 1 {
		for i := range n {
			dst[i] = utils.Uint8ToFloat32(b[i])
		}
	} else {
		for i := range n {
			dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(b[2*i:])))
		}
	}
	s.off += n * s.width

	if n == left {
		return n, io.EOF
	}
	return n, nil
}
