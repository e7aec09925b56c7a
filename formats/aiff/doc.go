// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through
// github.com/go-audio/aiff.
//
// AIFF stores big-endian signed PCM. The Source scales every sample by
// its bit depth so 8, 16, 24 and 32-bit files all come out as float32 in
// [-1, 1):
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 12-bit and other odd sizes
//	}
//
// go-audio needs an io.ReadSeeker. Other readers are read fully into
// memory before decoding starts. AIFF-C (compressed) files are not
// supported.
package aiff
