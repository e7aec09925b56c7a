// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: synthetic
// sample sources and a RIFF/WAVE byte builder.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// Waveform returns the value of frame for channel.
type Waveform func(frame, channel int) float32

// MockSource generates a fixed number of frames from a Waveform.
// It satisfies audio.Source without importing it.
type MockSource struct {
	rate     int
	channels int
	frames   int
	done     int
	wave     Waveform
	closed   bool
}

// NewMockSource creates a source producing frames frames per channel.
func NewMockSource(rate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

// NewSilentSource produces zeros.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewConstantSource produces value on every channel.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource produces the same sine tone on every channel.
func NewSineSource(rate, channels, frames int, hz float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * hz * float64(frame) / float64(rate)))
	})
}

// NewRampSource produces frame/frames on channel 0 and its negation on
// every other channel, which makes channel mixing easy to check.
func NewRampSource(rate, channels, frames int) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame) / float32(frames)
		if channel > 0 {
			return -v
		}
		return v
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to the first frame.
func (m *MockSource) Reset() { m.done = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.done >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.done)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.wave(m.done+f, c)
		}
	}
	m.done += n

	if m.done >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// ErrBroken is returned by a BrokenSource.
var ErrBroken = errors.New("audiotest: broken source")

// BrokenSource fails every read with ErrBroken.
type BrokenSource struct {
	Rate  int
	Chans int
}

func (b BrokenSource) SampleRate() int                    { return b.Rate }
func (b BrokenSource) Channels() int                      { return b.Chans }
func (b BrokenSource) BufSize() int                       { return 4096 }
func (b BrokenSource) Close() error                       { return nil }
func (b BrokenSource) ReadSamples([]float32) (int, error) { return 0, ErrBroken }
