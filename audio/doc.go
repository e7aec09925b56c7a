// SPDX-License-Identifier: EPL-2.0

// Package audio provides the buffer model and low-level processing
// primitives shared by the decoders in this module.
//
// This package contains:
//   - Format, the OpenAL buffer format enumerants
//   - DecodedAudio, a fully decoded PCM buffer
//   - Source interface for streamed float32 audio
//   - Resampler and MonoMixer for sample rate and channel conversion
//   - Format registry for decoder registration
//
// # Buffers
//
// A DecodedAudio carries raw PCM bytes together with a Format and a
// sample rate. Format values match the OpenAL constants, so they can be
// handed to an AL binding unchanged:
//
//	FormatMono8     0x1100
//	FormatMono16    0x1101
//	FormatStereo8   0x1102
//	FormatStereo16  0x1103
//	FormatUnknown   -1
//
// FormatFor maps a channel count and bit depth to one of these.
//
// # Sources
//
// A Source yields interleaved float32 frames:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every decoder in formats/ returns one, and Resampler and MonoMixer wrap
// one, so a conversion is a chain of wrappers drained into a buffer.
//
// # Resampling
//
// NewResampler slides a four-frame window over its source and evaluates a
// Catmull-Rom spline between the middle two frames for each output frame.
// When the target rate is lower than the source rate each input frame
// first passes a one-pole low-pass filter to damp aliasing. A source of a
// single frame yields that frame once.
//
//	r := audio.NewResampler(src, 16000)
//	n, err := r.ReadSamples(buf) // len(buf) must hold whole frames
//
// # Mixing
//
// NewMonoMixer averages all channels of each frame into one sample. Stereo
// input takes a dedicated path.
//
//	m := audio.NewMonoMixer(src)
//
// # Registry
//
// A Registry maps lower-case format keys to decoders. Lookups ignore case,
// and Formats lists the keys in sorted order:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("WAV")
//
// # Samples
//
// Streamed samples are float32 with full scale at -1 and +1. Converting
// back to integer PCM clamps out-of-range values, so a Source may overshoot
// slightly, as interpolation does near steep edges.
//
// # End of stream
//
// ReadSamples may return data together with io.EOF. Callers append the n
// samples first and then stop:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    out = append(out, buf[:n]...)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
