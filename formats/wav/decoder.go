// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/alwav/audio"
)

// Decode reads a RIFF/WAVE stream in one forward pass and returns the PCM
// payload of its data chunk.
//
// The walk is lenient. The RIFF header is only rejected when
// tag, length and form type are all wrong. A counter starts at the RIFF
// length and is decreased by each chunk length (chunk headers are not
// counted); the walk stops once it drops to 8 or below. A data chunk is
// read only after a PCM fmt chunk, and its payload is taken as the declared
// length minus 8. Unknown chunks are skipped when their length fits the
// counter.
//
// Non-PCM input decodes without error to a DecodedAudio with Format
// audio.FormatUnknown and no data. PCM with a channel count other than one
// or two keeps its data but also reports audio.FormatUnknown.
//
// Every failure is reported as ErrParseFailure and no partial result is
// returned. r is never closed.
func Decode(r io.Reader) (*audio.DecodedAudio, error) {
	a, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	return a, nil
}

func decode(r io.Reader) (*audio.DecodedAudio, error) {
	hdr, err := readRiffHeader(r)
	if err != nil {
		return nil, err
	}
	if !hdr.Plausible() {
		return nil, errMalformedHeader
	}

	out := &audio.DecodedAudio{Format: audio.FormatUnknown}
	var desc FormatDescriptor

	remaining := hdr.Length
	for remaining > minRemaining {
		ch, err := readChunkHeader(r)
		if err != nil {
			return nil, err
		}
		fits := ch.Length > 0 && ch.Length <= remaining

		switch ch.ID() {
		case fmtTag:
			desc, err = readFormat(r, ch.Length)
			if err != nil {
				return nil, err
			}
			out.Format = desc.BufferFormat()
			out.SampleRate = int(desc.SampleRate)

		case dataTag:
			if !desc.IsPCM() {
				break
			}
			size := int64(ch.Length) - 8
			if size < 0 {
				return nil, fmt.Errorf("%w: declared %d", errNegativeData, ch.Length)
			}
			var buf bytes.Buffer
			if _, err := io.CopyN(&buf, r, size); err != nil {
				return nil, fmt.Errorf("reading %d data bytes: %w", size, err)
			}
			out.Data = buf.Bytes()
			out.Size = buf.Len()

		default:
			if fits {
				if _, err := io.CopyN(io.Discard, r, int64(ch.Length)); err != nil {
					return nil, fmt.Errorf("skipping %q chunk: %w", ch.ID(), err)
				}
			}
		}

		if fits {
			remaining -= ch.Length
		} else {
			remaining = 0
		}
	}

	return out, nil
}

func readRiffHeader(r io.Reader) (RiffHeader, error) {
	var b [12]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return RiffHeader{}, fmt.Errorf("reading RIFF header: %w", err)
	}
	var h RiffHeader
	copy(h.Tag[:], b[0:4])
	h.Length = int32(binary.LittleEndian.Uint32(b[4:8]))
	copy(h.Form[:], b[8:12])
	return h, nil
}

func readChunkHeader(r io.Reader) (ChunkHeader, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return ChunkHeader{}, fmt.Errorf("reading chunk header: %w", err)
	}
	var c ChunkHeader
	copy(c.Tag[:], b[0:4])
	c.Length = int32(binary.LittleEndian.Uint32(b[4:8]))
	return c, nil
}

// readFormat reads the fixed fmt fields and, for chunks longer than 16
// bytes, a 16-bit extra length followed by the extra bytes.
func readFormat(r io.Reader, length int32) (FormatDescriptor, error) {
	var b [fmtBaseLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return FormatDescriptor{}, fmt.Errorf("reading fmt chunk: %w", err)
	}
	d := FormatDescriptor{
		FormatCode:    int16(binary.LittleEndian.Uint16(b[0:2])),
		Channels:      int16(binary.LittleEndian.Uint16(b[2:4])),
		SampleRate:    int32(binary.LittleEndian.Uint32(b[4:8])),
		ByteRate:      int32(binary.LittleEndian.Uint32(b[8:12])),
		BlockAlign:    int16(binary.LittleEndian.Uint16(b[12:14])),
		BitsPerSample: int16(binary.LittleEndian.Uint16(b[14:16])),
	}
	if length <= fmtBaseLen {
		return d, nil
	}

	var n [2]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return FormatDescriptor{}, fmt.Errorf("reading fmt extra length: %w", err)
	}
	var extra bytes.Buffer
	if _, err := io.CopyN(&extra, r, int64(binary.LittleEndian.Uint16(n[:]))); err != nil {
		return FormatDescriptor{}, fmt.Errorf("reading fmt extra bytes: %w", err)
	}
	d.Extra = extra.Bytes()
	return d, nil
}

// Decoder adapts Decode to audio.Decoder, streaming the decoded payload
// as float32 samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	a, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return NewSource(a)
}
