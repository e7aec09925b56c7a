// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// lowpassAlpha is the one-pole coefficient applied to source frames when
// downsampling.
const lowpassAlpha float32 = 0.5

// Resampler converts a Source to another sample rate using Catmull-Rom
// cubic interpolation over a sliding window of four source frames.
// Channel count is preserved.
type Resampler struct {
	src      Source
	channels int
	rate     int
	step     float64 // source frames consumed per output frame

	// win[0..3] hold frames t-1, t, t+1, t+2. real marks frames that came
	// from the source rather than being duplicated at the edges.
	win  [4][]float32
	real [4]bool
	pos  float64

	primed  bool
	srcDone bool
	lone    bool // the source held a single frame not yet emitted

	lowpass bool
	lpState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	r := &Resampler{
		src:      src,
		channels: channels,
		rate:     dstRate,
		lpState:  make([]float32, channels),
	}
	if dstRate > 0 {
		r.step = float64(src.SampleRate()) / float64(dstRate)
		r.lowpass = r.step > 1
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with resampled interleaved samples. len(dst) must
// be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.rate <= 0 {
		return 0, ErrInvalidRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.real[2] {
			if r.lone {
				r.lone = false
				copy(dst[written*r.channels:(written+1)*r.channels], r.win[1])
				written++
			}
			return written * r.channels, io.EOF
		}

		t := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = catmullRom(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], t)
		}
		written++
		r.pos += r.step
	}
	return written * r.channels, nil
}

// prime loads the initial window. The first frame doubles as t-1.
func (r *Resampler) prime() error {
	ok, err := r.fetch(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.win[0], r.win[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.fetch(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
		}
		r.real[i] = ok
	}
	r.lone = !r.real[2]
	r.primed = true
	return nil
}

// advance slides the window one frame forward.
func (r *Resampler) advance() error {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	r.win[3] = first
	copy(r.real[:], r.real[1:])

	ok, err := r.fetch(r.win[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[3], r.win[2])
	}
	r.real[3] = ok
	return nil
}

// fetch reads exactly one frame into dst. It reports false once the source
// is exhausted.
func (r *Resampler) fetch(dst []float32) (bool, error) {
	if r.srcDone {
		return false, nil
	}

	n, err := r.src.ReadSamples(dst)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading resampler source: %w", err)
		}
		r.srcDone = true
	}
	if n < r.channels {
		r.srcDone = true
		return false, nil
	}

	if r.lowpass {
		if !r.primed && !r.real[1] {
			copy(r.lpState, dst)
		}
		for c, x := range dst {
			y := lowpassAlpha*x + (1-lowpassAlpha)*r.lpState[c]
			dst[c] = y
			r.lpState[c] = y
		}
	}
	return true, nil
}

// catmullRom interpolates between y1 and y2 at t in [0,1].
func catmullRom(y0, y1, y2, y3, t float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	return ((a0*t+a1)*t+a2)*t + y1
}
