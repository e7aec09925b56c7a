// SPDX-License-Identifier: EPL-2.0

package al

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/alwav/audio"
	"github.com/ik5/alwav/formats/wav"
)

// Context tracks the buffers submitted to one Backend. It is safe for
// concurrent use.
type Context struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
	buffers map[BufferID]struct{}
	closed  bool
}

// Open wraps b in a Context. The Context owns b from now on and closes it
// in Close.
func Open(b Backend, opts ...Option) (*Context, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	c := &Context{
		backend: b,
		logger:  zap.NewNop(),
		buffers: make(map[BufferID]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Debug("context opened")
	return c, nil
}

func validate(a *audio.DecodedAudio) error {
	switch {
	case a == nil:
		return ErrNilBuffer
	case !a.Format.Valid():
		return fmt.Errorf("%w: %v", ErrInvalidFormat, a.Format)
	case a.SampleRate <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, a.SampleRate)
	case len(a.Data)%a.Format.FrameSize() != 0:
		return fmt.Errorf("%w: %d bytes of %v", ErrInvalidSize, len(a.Data), a.Format)
	}
	return nil
}

// Submit sends a to the backend and records the returned id.
func (c *Context) Submit(a *audio.DecodedAudio) (BufferID, error) {
	if err := validate(a); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}

	id, err := c.backend.SubmitBuffer(a.Format, a.Data, a.SampleRate)
	if err != nil {
		return 0, fmt.Errorf("submitting buffer: %w", err)
	}
	c.buffers[id] = struct{}{}

	c.logger.Debug("buffer submitted",
		zap.Uint32("id", uint32(id)),
		zap.Stringer("format", a.Format),
		zap.Int("bytes", len(a.Data)),
		zap.Int("rate", a.SampleRate),
	)
	return id, nil
}

// LoadWAV decodes r with the lenient WAV decoder and submits the result.
func (c *Context) LoadWAV(r io.Reader) (BufferID, error) {
	a, err := wav.Decode(r)
	if err != nil {
		c.logger.Warn("wav decode failed", zap.Error(err))
		return 0, err
	}
	return c.Submit(a)
}

// Delete releases a buffer submitted through this Context.
func (c *Context) Delete(id BufferID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if _, ok := c.buffers[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, id)
	}
	if err := c.backend.DeleteBuffer(id); err != nil {
		return fmt.Errorf("deleting buffer %d: %w", id, err)
	}
	delete(c.buffers, id)

	c.logger.Debug("buffer deleted", zap.Uint32("id", uint32(id)))
	return nil
}

// Buffers lists the live buffer ids in ascending order.
func (c *Context) Buffers() []BufferID {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]BufferID, 0, len(c.buffers))
	for id := range c.buffers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Close deletes every live buffer and closes the backend. Later calls
// return nil.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var err error
	for id := range c.buffers {
		if derr := c.backend.DeleteBuffer(id); derr != nil {
			c.logger.Warn("buffer delete failed", zap.Uint32("id", uint32(id)), zap.Error(derr))
			err = multierr.Append(err, fmt.Errorf("deleting buffer %d: %w", id, derr))
		}
	}
	clear(c.buffers)

	if cerr := c.backend.Close(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("closing backend: %w", cerr))
	}

	c.logger.Debug("context closed")
	return err
}
