// SPDX-License-Identifier: EPL-2.0

package al

import (
	"bytes"
	"errors"
	"slices"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/formats/wav"
	"github.com/ik5/alwav/internal/audiotest"
)

var errDevice = errors.New("device lost")

// failingBackend wraps a MemoryBackend and fails selected calls.
type failingBackend struct {
	*MemoryBackend
	submitErr error
	deleteErr error
	closeErr  error
	closes    int
}

func (f *failingBackend) SubmitBuffer(format audio.Format, data []byte, rate int) (BufferID, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	return f.MemoryBackend.SubmitBuffer(format, data, rate)
}

func (f *failingBackend) DeleteBuffer(id BufferID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryBackend.DeleteBuffer(id)
}

func (f *failingBackend) Close() error {
	f.closes++
	if f.closeErr != nil {
		return f.closeErr
	}
	return f.MemoryBackend.Close()
}

func mono16(samples ...int16) *audio.DecodedAudio {
	data := audiotest.PCM16(samples...)
	return &audio.DecodedAudio{Format: audio.FormatMono16, Data: data, Size: len(data), SampleRate: 8000}
}

func openMemory(t *testing.T) (*Context, *MemoryBackend) {
	t.Helper()

	b := NewMemoryBackend()
	c, err := Open(b)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return c, b
}

func TestOpen_NilBackend(t *testing.T) {
	t.Parallel()

	if _, err := Open(nil); !errors.Is(err, ErrNilBackend) {
		t.Errorf("Open(nil) error = %v, want ErrNilBackend", err)
	}
}

func TestContext_Submit(t *testing.T) {
	t.Parallel()

	c, b := openMemory(t)
	defer c.Close()

	a := mono16(1, 2, 3)
	id, err := c.Submit(a)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id == 0 {
		t.Error("Submit() returned id 0")
	}

	got, ok := b.Buffer(id)
	if !ok {
		t.Fatal("backend has no buffer for id")
	}
	if got.Format != audio.FormatMono16 || got.SampleRate != 8000 || !bytes.Equal(got.Data, a.Data) {
		t.Errorf("stored %+v, want %+v", got, a)
	}

	a.Data[0] = 0xFF
	if got, _ := b.Buffer(id); got.Data[0] == 0xFF {
		t.Error("backend shares the caller's slice")
	}
}

func TestContext_SubmitValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *audio.DecodedAudio
		want error
	}{
		{"nil", nil, ErrNilBuffer},
		{"unknown format", &audio.DecodedAudio{Format: audio.FormatUnknown, SampleRate: 8000}, ErrInvalidFormat},
		{"bogus format", &audio.DecodedAudio{Format: audio.Format(7), SampleRate: 8000}, ErrInvalidFormat},
		{"zero rate", &audio.DecodedAudio{Format: audio.FormatMono8, Data: []byte{1}}, ErrInvalidSampleRate},
		{"negative rate", &audio.DecodedAudio{Format: audio.FormatMono8, Data: []byte{1}, SampleRate: -1}, ErrInvalidSampleRate},
		{"half frame", &audio.DecodedAudio{Format: audio.FormatStereo16, Data: []byte{1, 2, 3}, SampleRate: 8000}, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, b := openMemory(t)
			defer c.Close()

			if _, err := c.Submit(tt.a); !errors.Is(err, tt.want) {
				t.Errorf("Submit() error = %v, want %v", err, tt.want)
			}
			if b.Len() != 0 {
				t.Errorf("backend holds %d buffers, want 0", b.Len())
			}
		})
	}
}

func TestContext_EmptyBufferAccepted(t *testing.T) {
	t.Parallel()

	c, _ := openMemory(t)
	defer c.Close()

	if _, err := c.Submit(&audio.DecodedAudio{Format: audio.FormatStereo8, SampleRate: 22050}); err != nil {
		t.Errorf("Submit(empty) error = %v", err)
	}
}

func TestContext_SubmitBackendError(t *testing.T) {
	t.Parallel()

	c, err := Open(&failingBackend{MemoryBackend: NewMemoryBackend(), submitErr: errDevice})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, err := c.Submit(mono16(1)); !errors.Is(err, errDevice) {
		t.Errorf("Submit() error = %v, want %v", err, errDevice)
	}
	if len(c.Buffers()) != 0 {
		t.Errorf("Buffers() = %v, want none", c.Buffers())
	}
}

func TestContext_LoadWAV(t *testing.T) {
	t.Parallel()

	c, b := openMemory(t)
	defer c.Close()

	payload := []byte{0x00, 0x7F, 0xFF, 0x80}
	id, err := c.LoadWAV(bytes.NewReader(audiotest.NewWAV().Fmt(1, 1, 22050, 8).Data(payload).Bytes()))
	if err != nil {
		t.Fatalf("LoadWAV() error = %v", err)
	}
	got, _ := b.Buffer(id)
	if got.Format != audio.FormatMono8 || got.SampleRate != 22050 || !bytes.Equal(got.Data, payload) {
		t.Errorf("stored %+v", got)
	}

	if _, err := c.LoadWAV(bytes.NewReader([]byte("RIFF"))); !errors.Is(err, wav.ErrParseFailure) {
		t.Errorf("LoadWAV(truncated) error = %v, want ErrParseFailure", err)
	}

	// Non-PCM decodes but has no buffer format.
	odd := audiotest.NewWAV().Fmt(3, 1, 8000, 32).Data(make([]byte, 8)).Bytes()
	if _, err := c.LoadWAV(bytes.NewReader(odd)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("LoadWAV(float) error = %v, want ErrInvalidFormat", err)
	}
}

func TestContext_DeleteAndBuffers(t *testing.T) {
	t.Parallel()

	c, b := openMemory(t)
	defer c.Close()

	var ids []BufferID
	for range 3 {
		id, err := c.Submit(mono16(1, 2))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if got := c.Buffers(); !slices.Equal(got, ids) {
		t.Errorf("Buffers() = %v, want %v", got, ids)
	}

	if err := c.Delete(ids[1]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := b.Buffer(ids[1]); ok {
		t.Error("backend still holds the deleted buffer")
	}
	if got, want := c.Buffers(), []BufferID{ids[0], ids[2]}; !slices.Equal(got, want) {
		t.Errorf("Buffers() = %v, want %v", got, want)
	}

	if err := c.Delete(ids[1]); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("second Delete() error = %v, want ErrUnknownBuffer", err)
	}
	if err := c.Delete(999); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("Delete(999) error = %v, want ErrUnknownBuffer", err)
	}
}

// Buffers created directly on the backend do not belong to the context.
func TestContext_DeleteForeignBuffer(t *testing.T) {
	t.Parallel()

	c, b := openMemory(t)
	defer c.Close()

	foreign, _ := b.SubmitBuffer(audio.FormatMono8, []byte{1}, 8000)
	if err := c.Delete(foreign); !errors.Is(err, ErrUnknownBuffer) {
		t.Errorf("Delete(foreign) error = %v, want ErrUnknownBuffer", err)
	}
	if _, ok := b.Buffer(foreign); !ok {
		t.Error("foreign buffer was deleted")
	}
}

func TestContext_Close(t *testing.T) {
	t.Parallel()

	fb := &failingBackend{MemoryBackend: NewMemoryBackend()}
	c, _ := Open(fb)

	for range 2 {
		if _, err := c.Submit(mono16(5)); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if fb.Len() != 0 {
		t.Errorf("backend holds %d buffers after Close, want 0", fb.Len())
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if fb.closes != 1 {
		t.Errorf("backend closed %d times, want 1", fb.closes)
	}

	if _, err := c.Submit(mono16(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit() after Close error = %v, want ErrClosed", err)
	}
	if err := c.Delete(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Delete() after Close error = %v, want ErrClosed", err)
	}
	if len(c.Buffers()) != 0 {
		t.Errorf("Buffers() after Close = %v", c.Buffers())
	}
}

func TestContext_CloseErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	fb := &failingBackend{MemoryBackend: NewMemoryBackend()}
	c, _ := Open(fb, WithLogger(zap.New(core)))

	for range 2 {
		if _, err := c.Submit(mono16(5)); err != nil {
			t.Fatal(err)
		}
	}
	fb.deleteErr = errDevice
	fb.closeErr = errors.New("close failed")

	err := c.Close()
	if !errors.Is(err, errDevice) || !errors.Is(err, fb.closeErr) {
		t.Errorf("Close() error = %v, want both backend errors", err)
	}
	if n := logs.FilterMessage("buffer delete failed").Len(); n != 2 {
		t.Errorf("logged %d delete failures, want 2", n)
	}
}

func TestContext_Logging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	c, _ := Open(NewMemoryBackend(), WithLogger(zap.New(core)), WithLogger(nil))

	id, _ := c.Submit(mono16(1, 2))
	_ = c.Delete(id)
	_ = c.Close()

	want := []string{"context opened", "buffer submitted", "buffer deleted", "context closed"}
	var got []string
	for _, e := range logs.All() {
		got = append(got, e.Message)
	}
	if !slices.Equal(got, want) {
		t.Errorf("log messages = %v, want %v", got, want)
	}

	fields := logs.FilterMessage("buffer submitted").All()[0].ContextMap()
	if fields["format"] != "mono16" || fields["bytes"] != int64(4) || fields["rate"] != int64(8000) {
		t.Errorf("submit fields = %v", fields)
	}
}

func TestContext_Concurrent(t *testing.T) {
	t.Parallel()

	c, b := openMemory(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				id, err := c.Submit(mono16(1, 2, 3, 4))
				if err != nil {
					t.Error(err)
					return
				}
				_ = c.Buffers()
				if err := c.Delete(id); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if b.Len() != 0 || len(c.Buffers()) != 0 {
		t.Errorf("leaked buffers: backend %d, context %d", b.Len(), len(c.Buffers()))
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
