// SPDX-License-Identifier: EPL-2.0

package al

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/alwav/audio"
)

// BufferID names a buffer inside a Backend. Zero is never issued.
type BufferID uint32

// Backend receives PCM buffers. Implementations wrap a real output device
// (an OpenAL binding, a mixer, a network sink).
type Backend interface {
	SubmitBuffer(format audio.Format, data []byte, sampleRate int) (BufferID, error)
	DeleteBuffer(id BufferID) error
	Close() error
}

// Buffer is a copy of a submitted buffer held by a MemoryBackend.
type Buffer struct {
	Format     audio.Format
	Data       []byte
	SampleRate int
}

// MemoryBackend keeps submitted buffers in memory.
type MemoryBackend struct {
	mu      sync.Mutex
	next    BufferID
	buffers map[BufferID]Buffer
	closed  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{buffers: make(map[BufferID]Buffer)}
}

// SubmitBuffer stores a copy of data.
func (m *MemoryBackend) SubmitBuffer(format audio.Format, data []byte, sampleRate int) (BufferID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrClosed
	}
	m.next++
	m.buffers[m.next] = Buffer{Format: format, Data: slices.Clone(data), SampleRate: sampleRate}
	return m.next, nil
}

func (m *MemoryBackend) DeleteBuffer(id BufferID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buffers[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, id)
	}
	delete(m.buffers, id)
	return nil
}

func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	clear(m.buffers)
	return nil
}

// Buffer returns the stored copy of id.
func (m *MemoryBackend) Buffer(id BufferID) (Buffer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buffers[id]
	return b, ok
}

// Len is the number of buffers currently stored.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.buffers)
}
