// SPDX-License-Identifier: EPL-2.0

// Package al hands decoded buffers to an audio output.
//
// A Context is an explicit handle around a Backend, the component that
// owns the real device. Nothing in this package is global: open a
// Context, pass it to whatever needs to submit audio, close it when done.
//
//	ctx, err := al.Open(backend, al.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	id, err := ctx.LoadWAV(f)
//
// Closing a Context deletes every buffer it still owns and then closes the
// Backend. MemoryBackend is an in-process Backend that keeps copies of
// submitted buffers.
package al
