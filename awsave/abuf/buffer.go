// Package abuf owns the raw bytes of a loaded savegame. The whole file
// lives in a single fixed-length Buffer; every field handle built on top
// of it addresses the same storage through bounds-checked accessors, so
// a write through one handle is immediately visible to every other.
package abuf

import (
	"fmt"

	"github.com/pkg/errors"
)

type Buffer struct {
	data []byte
}

// New wraps data in a Buffer. The length is fixed from here on; all
// offsets handed to the accessors must stay inside it.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewSized wraps data and rejects it when it is not exactly size bytes
// long.
func NewSized(data []byte, size int) (*Buffer, error) {
	if len(data) != size {
		msg := fmt.Sprintf(
			"NewSized error: expected %d bytes, got %d",
			size, len(data),
		)
		return nil, errors.New(msg)
	}
	return New(data), nil
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) check(off, n int) error {
	if off < 0 || n < 0 || off+n > len(b.data) {
		msg := fmt.Sprintf(
			"buffer range [%d, %d) out of bounds for %d bytes",
			off, off+n, len(b.data),
		)
		return errors.New(msg)
	}
	return nil
}

// ReadAt copies n bytes starting at off.
func (b *Buffer) ReadAt(off, n int) ([]byte, error) {
	if err := b.check(off, n); err != nil {
		return nil, errors.Wrap(err, "Buffer.ReadAt error")
	}
	out := make([]byte, n)
	copy(out, b.data[off:off+n])
	return out, nil
}

// WriteAt copies p into the buffer starting at off.
func (b *Buffer) WriteAt(off int, p []byte) error {
	if err := b.check(off, len(p)); err != nil {
		return errors.Wrap(err, "Buffer.WriteAt error")
	}
	copy(b.data[off:], p)
	return nil
}

// FillAt writes n copies of fill starting at off.
func (b *Buffer) FillAt(off, n int, fill byte) error {
	if err := b.check(off, n); err != nil {
		return errors.Wrap(err, "Buffer.FillAt error")
	}
	for i := off; i < off+n; i++ {
		b.data[i] = fill
	}
	return nil
}

// ReadNum decodes a value of type t at off.
func (b *Buffer) ReadNum(off int, t NumType) (uint64, error) {
	p, err := b.ReadAt(off, t.Size)
	if err != nil {
		return 0, errors.Wrap(err, "Buffer.ReadNum error")
	}
	return t.Decode(p), nil
}

// WriteNum encodes a value of type t at off.
func (b *Buffer) WriteNum(off int, t NumType, v uint64) error {
	p := make([]byte, t.Size)
	t.Encode(v, p)
	return errors.Wrap(b.WriteAt(off, p), "Buffer.WriteNum error")
}

// Bytes exposes the underlying storage. It is used for whole-file
// operations (checksumming, writing the file back out); callers must
// not grow or retain it.
func (b *Buffer) Bytes() []byte {
	return b.data
}
