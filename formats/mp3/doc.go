// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III streams through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields interleaved stereo 16-bit PCM, so the Source
// returned by Decoder reports two channels whatever the file holds. Mono
// output needs an audio.MonoMixer:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 22050))
//
// Decoding is forward only. Decode fails with ErrInvalidStream when no
// frame header can be found.
package mp3
