// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// The Source keeps the channel count and sample rate of the stream and
// yields interleaved float32 samples exactly as the Vorbis synthesis
// produces them:
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// Streams with more than two channels are decoded as is. The root loader
// folds them to mono before building an AL buffer.
package vorbis
