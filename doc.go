// SPDX-License-Identifier: EPL-2.0

// Package alwav loads audio files into PCM buffers ready for an OpenAL
// style output.
//
// # WAV loading
//
// LoadWAVFile and LoadWAVMemory run the lenient RIFF/WAVE walk from
// formats/wav and hand back the bytes exactly as found in the data chunk:
//
//	a, err := alwav.LoadWAVFile("click.wav")
//	if err != nil {
//	    // errors.Is(err, wav.ErrParseFailure) is always true here
//	}
//	fmt.Println(a.Format, a.SampleRate, a.Size)
//
// The walk keeps the quirks of the ALUT loader, including the 8 bytes it
// drops from every data chunk. See the wav package for the full list.
//
// # Other formats
//
// Load and LoadFile pick a decoder by kind ("wav", "mp3", "ogg", "aiff")
// and convert the stream into a 16-bit buffer:
//
//	a, err := alwav.LoadFile("theme.ogg", alwav.Options{SampleRate: 22050, Mono: true})
//
// Conversion runs through ToBuffer: an optional audio.Resampler, then an
// optional audio.MonoMixer, then float32 to int16. Sources with more than
// two channels are always folded to mono because OpenAL has no buffer
// format for them.
//
// # Handing buffers to a device
//
// The al subpackage owns the device side: an explicit Context wrapping a
// Backend that receives format, bytes and rate.
//
//	ctx, _ := al.Open(al.NewMemoryBackend())
//	defer ctx.Close()
//	id, err := ctx.Submit(a)
package alwav
