// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE streams into PCM buffers and writes them
// back out.
//
// # Decoding
//
// Decode makes a single forward pass over any io.Reader and returns an
// audio.DecodedAudio holding the raw sample bytes, the buffer format and
// the sample rate:
//
//	f, _ := os.Open("click.wav")
//	defer f.Close()
//	a, err := wav.Decode(f)
//	if errors.Is(err, wav.ErrParseFailure) {
//	    // no audio available
//	}
//
// The parser follows the lenient rules of the ALUT WAV loader it replaces:
//   - the RIFF header is rejected only when tag, length and form are all wrong
//   - the data chunk length is taken to include 8 extra bytes, so the
//     payload read is the declared length minus 8
//   - a data chunk is read only after a PCM fmt chunk
//   - the walk ends when the chunk counter reaches 8, or earlier when a
//     chunk length is zero, negative or larger than the counter
//
// Files written by ordinary encoders therefore decode 8 bytes short. Use
// Probe to inspect such files with a strict parser.
//
// All failures collapse into ErrParseFailure. The underlying cause is
// wrapped as well, so errors.Is(err, io.ErrUnexpectedEOF) still works.
//
// # Streaming
//
// Decoder implements audio.Decoder so WAV input can feed the audio
// processing pipeline. NewSource wraps an already decoded buffer.
//
// # Encoding
//
// Encode writes a standard PCM WAV through github.com/go-audio/wav:
//
//	out, _ := os.Create("out.wav")
//	err := wav.Encode(out, a)
//
// # Formats
//
// Buffer formats are the OpenAL enumerants from the audio package:
// mono8, mono16, stereo8 and stereo16. PCM with 8 bits per sample maps to
// the 8-bit formats, any other bit depth to the 16-bit ones.
package wav
