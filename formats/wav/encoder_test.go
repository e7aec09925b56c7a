// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/internal/audiotest"
)

// encodeToFile encodes a into a temp file and returns it rewound.
func encodeToFile(t *testing.T, a *audio.DecodedAudio) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	if err := Encode(f, a); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEncode_Probe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *audio.DecodedAudio
		want Info
	}{
		{
			name: "mono16",
			a:    &audio.DecodedAudio{Format: audio.FormatMono16, Data: audiotest.PCM16(1, -1, 300, -300), SampleRate: 8000},
			want: Info{AudioFormat: 1, Channels: 1, SampleRate: 8000, BitsPerSample: 16, DataSize: 8},
		},
		{
			name: "stereo16",
			a:    &audio.DecodedAudio{Format: audio.FormatStereo16, Data: audiotest.PCM16(1, 2, 3, 4, 5, 6), SampleRate: 44100},
			want: Info{AudioFormat: 1, Channels: 2, SampleRate: 44100, BitsPerSample: 16, DataSize: 12},
		},
		{
			name: "stereo8",
			a:    &audio.DecodedAudio{Format: audio.FormatStereo8, Data: []byte{0, 64, 128, 255}, SampleRate: 22050},
			want: Info{AudioFormat: 1, Channels: 2, SampleRate: 22050, BitsPerSample: 8, DataSize: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := encodeToFile(t, tt.a)
			info, err := Probe(f)
			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if info != tt.want {
				t.Errorf("Probe() = %+v, want %+v", info, tt.want)
			}
			if info.BufferFormat() != tt.a.Format {
				t.Errorf("BufferFormat() = %v, want %v", info.BufferFormat(), tt.a.Format)
			}

			raw, err := os.ReadFile(f.Name())
			if err != nil {
				t.Fatal(err)
			}
			if len(raw) != 44+len(tt.a.Data) {
				t.Errorf("file size = %d, want %d", len(raw), 44+len(tt.a.Data))
			}
			if !bytes.Equal(raw[44:], tt.a.Data) {
				t.Errorf("payload = %v, want %v", raw[44:], tt.a.Data)
			}
		})
	}
}

// TestEncode_LenientDecode feeds a standard file back through Decode. The
// trailing 8 payload bytes are read as a chunk header; zero samples there
// give it a zero length, which ends the walk.
func TestEncode_LenientDecode(t *testing.T) {
	t.Parallel()

	samples := audiotest.PCM16(100, 200, 300, 400, 0, 0, 0, 0, 0, 0)
	f := encodeToFile(t, &audio.DecodedAudio{Format: audio.FormatMono16, Data: samples, SampleRate: 16000})

	a, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if a.Format != audio.FormatMono16 || a.SampleRate != 16000 {
		t.Errorf("got %v at %d, want mono16 at 16000", a.Format, a.SampleRate)
	}
	if want := samples[:len(samples)-8]; !bytes.Equal(a.Data, want) {
		t.Errorf("Data = %v, want %v", a.Data, want)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, a := range []*audio.DecodedAudio{nil, {Format: audio.FormatUnknown, Data: []byte{1, 2}}} {
		if err := Encode(f, a); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Encode(%+v) error = %v, want ErrUnsupportedFormat", a, err)
		}
	}
}

func TestProbe_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Probe(strings.NewReader("definitely not a RIFF stream at all"))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Probe() error = %v, want ErrNotWavFile", err)
	}
}
