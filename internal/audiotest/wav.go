// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

type chunk struct {
	tag     string
	length  int32
	payload []byte
}

// WAV assembles a RIFF/WAVE byte stream chunk by chunk.
//
// Unless overridden with RIFFLength, the RIFF length field is the sum of
// the declared chunk lengths plus 8. The lenient wav decoder subtracts
// only chunk lengths from its counter and stops at 8, so that value walks
// every chunk and ends exactly after the last one.
type WAV struct {
	tag     string
	form    string
	riffLen *int32
	chunks  []chunk
}

func NewWAV() *WAV {
	return &WAV{tag: "RIFF", form: "WAVE"}
}

// Header replaces the RIFF tag and form type.
func (w *WAV) Header(tag, form string) *WAV {
	w.tag, w.form = tag, form
	return w
}

// RIFFLength forces the RIFF length field.
func (w *WAV) RIFFLength(n int32) *WAV {
	w.riffLen = &n
	return w
}

// Fmt appends a 16-byte fmt chunk. Byte rate and block align are derived.
func (w *WAV) Fmt(code, channels, rate, bits int) *WAV {
	return w.Chunk("fmt ", 16, fmtPayload(code, channels, rate, bits))
}

// FmtExtra appends an extended fmt chunk carrying extra bytes after the
// 16-byte descriptor.
func (w *WAV) FmtExtra(code, channels, rate, bits int, extra []byte) *WAV {
	p := fmtPayload(code, channels, rate, bits)
	p = binary.LittleEndian.AppendUint16(p, uint16(len(extra)))
	p = append(p, extra...)
	return w.Chunk("fmt ", int32(len(p)), p)
}

// Data appends a data chunk whose declared length is len(samples)+8, the
// layout the lenient decoder reads in full.
func (w *WAV) Data(samples []byte) *WAV {
	return w.Chunk("data", int32(len(samples)+8), samples)
}

// StandardData appends a data chunk whose declared length is len(samples),
// as written by ordinary encoders.
func (w *WAV) StandardData(samples []byte) *WAV {
	return w.Chunk("data", int32(len(samples)), samples)
}

// Chunk appends an arbitrary chunk. length is written as is and need not
// match len(payload).
func (w *WAV) Chunk(tag string, length int32, payload []byte) *WAV {
	w.chunks = append(w.chunks, chunk{tag: tag, length: length, payload: payload})
	return w
}

func (w *WAV) Bytes() []byte {
	riffLen := int32(8)
	for _, c := range w.chunks {
		riffLen += c.length
	}
	if w.riffLen != nil {
		riffLen = *w.riffLen
	}

	var buf bytes.Buffer
	buf.WriteString(w.tag)
	binary.Write(&buf, binary.LittleEndian, riffLen)
	buf.WriteString(w.form)
	for _, c := range w.chunks {
		buf.WriteString(c.tag)
		binary.Write(&buf, binary.LittleEndian, c.length)
		buf.Write(c.payload)
	}
	return buf.Bytes()
}

func fmtPayload(code, channels, rate, bits int) []byte {
	blockAlign := channels * bits / 8
	p := make([]byte, 16)
	binary.LittleEndian.PutUint16(p[0:2], uint16(code))
	binary.LittleEndian.PutUint16(p[2:4], uint16(channels))
	binary.LittleEndian.PutUint32(p[4:8], uint32(rate))
	binary.LittleEndian.PutUint32(p[8:12], uint32(rate*blockAlign))
	binary.LittleEndian.PutUint16(p[12:14], uint16(blockAlign))
	binary.LittleEndian.PutUint16(p[14:16], uint16(bits))
	return p
}

// PCM16 encodes samples as little-endian int16 bytes.
func PCM16(samples ...int16) []byte {
	p := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		p = binary.LittleEndian.AppendUint16(p, uint16(s))
	}
	return p
}
