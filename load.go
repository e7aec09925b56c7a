// SPDX-License-Identifier: EPL-2.0

package alwav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/formats/aiff"
	"github.com/ik5/alwav/formats/mp3"
	"github.com/ik5/alwav/formats/vorbis"
	"github.com/ik5/alwav/formats/wav"
)

// ErrUnsupportedKind is returned by Load for a kind with no registered
// decoder.
var ErrUnsupportedKind = errors.New("unsupported audio kind")

const defaultBufferSize = 4096

// Options control conversion of decoded audio into a buffer. The zero
// value keeps the source rate and channel layout.
type Options struct {
	// SampleRate resamples to this rate when positive.
	SampleRate int
	// Mono folds all channels into one.
	Mono bool
	// Bits selects 8 or 16 bits per output sample. Values <= 0 select 16
	// for converted audio and keep the depth of raw WAV data.
	Bits int
	// BufferSize is the float32 scratch size used while converting.
	// Values <= 0 select 4096.
	BufferSize int
}

func (o Options) bits() int {
	if o.Bits <= 0 {
		return 16
	}
	return o.Bits
}

func (o Options) bufferSize() int {
	if o.BufferSize <= 0 {
		return defaultBufferSize
	}
	return o.BufferSize
}

// keeps reports whether a buffer already satisfies o without conversion.
func (o Options) keeps(a *audio.DecodedAudio) bool {
	if o.SampleRate > 0 && o.SampleRate != a.SampleRate {
		return false
	}
	if o.Bits > 0 && o.Bits != a.Format.BitsPerSample() {
		return false
	}
	return !o.Mono || a.Format.Channels() == 1
}

// NewRegistry returns a registry holding every decoder in this module.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

var registry = NewRegistry()

// LoadWAVFile decodes the WAV file at path. The file is closed before
// returning. Every failure, including a missing file, matches
// wav.ErrParseFailure.
func LoadWAVFile(path string) (*audio.DecodedAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wav.ErrParseFailure, err)
	}
	defer f.Close()

	return wav.Decode(f)
}

// LoadWAVMemory decodes a WAV image held in memory.
func LoadWAVMemory(data []byte) (*audio.DecodedAudio, error) {
	return wav.Decode(bytes.NewReader(data))
}

// LoadFile loads path, choosing the decoder from its extension.
func LoadFile(path string, opts Options) (*audio.DecodedAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, filepath.Ext(path), opts)
}

// Load decodes r as kind, a format key or file extension such as "mp3" or
// ".ogg".
//
// WAV input is parsed with the lenient decoder. When opts asks for no
// change the decoded bytes are returned untouched, 8-bit data included.
// Any other input is converted by ToBuffer.
func Load(r io.Reader, kind string, opts Options) (*audio.DecodedAudio, error) {
	kind = strings.ToLower(strings.TrimPrefix(kind, "."))

	if kind == "wav" {
		a, err := wav.Decode(r)
		if err != nil {
			return nil, err
		}
		if opts.keeps(a) {
			return a, nil
		}
		src, err := wav.NewSource(a)
		if err != nil {
			return nil, err
		}
		return ToBuffer(src, opts)
	}

	dec, ok := registry.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	defer src.Close()

	return ToBuffer(src, opts)
}
