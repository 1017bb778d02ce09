// Package buffer implements a contiguous, growable byte region whose
// storage is obtained through an alloc.Allocator.
package buffer

import (
	"errors"
	"fmt"

	"github.com/bulga138/growstr/alloc"
	"github.com/bulga138/growstr/growth"
)

// ErrOutOfBounds is returned when an offset or length falls outside the
// buffer.
var ErrOutOfBounds = errors.New("out of bounds")

// --- Structs ---

// Buffer owns one block of storage. Bytes in [0, Len()) are the contents;
// bytes in [Len(), Cap()) are never exposed.
//
// The zero value is an empty buffer using the default allocator and policy.
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	alloc  alloc.Allocator
	policy growth.Policy
	data   []byte // len(data) is the capacity
	length int

	reallocs int
}

// New creates an empty buffer that allocates through a and grows by p.
func New(a alloc.Allocator, p growth.Policy) *Buffer {
	return &Buffer{alloc: a, policy: p}
}

// --- Accessors ---

func (b *Buffer) allocator() alloc.Allocator {
	if b.alloc == nil {
		b.alloc = alloc.Default()
	}
	return b.alloc
}

// Allocator returns the allocator backing the buffer.
func (b *Buffer) Allocator() alloc.Allocator { return b.allocator() }

// Policy returns the growth policy.
func (b *Buffer) Policy() growth.Policy { return b.policy }

// Len returns the number of bytes in use.
func (b *Buffer) Len() int { return b.length }

// Cap returns the number of bytes allocated.
func (b *Buffer) Cap() int { return len(b.data) }

// Reallocations returns how many times the storage has been acquired or
// resized since the buffer was created.
func (b *Buffer) Reallocations() int { return b.reallocs }

// Bytes returns the contents. The slice aliases the buffer's storage and
// is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length:b.length]
}

// --- Capacity management ---

// Reserve ensures Cap() >= min, growing according to the policy. On
// failure the buffer is unchanged.
func (b *Buffer) Reserve(min int) error {
	if min < 0 {
		return fmt.Errorf("reserve %d: %w", min, ErrOutOfBounds)
	}
	if len(b.data) >= min {
		return nil
	}
	return b.resize(b.policy.Next(len(b.data), min))
}

// ReserveExact ensures Cap() >= min without applying the growth factor.
func (b *Buffer) ReserveExact(min int) error {
	if min < 0 {
		return fmt.Errorf("reserve %d: %w", min, ErrOutOfBounds)
	}
	if len(b.data) >= min {
		return nil
	}
	return b.resize(min)
}

// resize moves the contents into a block of exactly capacity bytes, which
// must be at least Len().
func (b *Buffer) resize(capacity int) error {
	a := b.allocator()

	var (
		block []byte
		err   error
	)
	switch {
	case b.data == nil:
		block, err = a.Acquire(capacity)
	case capacity > len(b.data):
		block, err = a.Grow(b.data, capacity)
	default:
		// Shrinking: copy into a fresh block, then hand back the old one.
		block, err = a.Acquire(capacity)
		if err == nil {
			copy(block, b.data[:b.length])
			if err = a.Release(b.data); err != nil {
				err = fmt.Errorf("release old block: %w", err)
				if rerr := a.Release(block); rerr != nil {
					err = errors.Join(err, fmt.Errorf("release new block: %w", rerr))
				}
				return err
			}
		}
	}
	if err != nil {
		return fmt.Errorf("resize to %d bytes: %w", capacity, err)
	}

	b.data = block
	b.reallocs++
	return nil
}

// ShrinkToFit releases unused capacity. An empty buffer gives its block
// back to the allocator entirely.
func (b *Buffer) ShrinkToFit() error {
	if len(b.data) == b.length {
		return nil
	}
	if b.length == 0 {
		return b.Release()
	}
	return b.resize(b.length)
}

// Release returns the storage to the allocator and empties the buffer.
func (b *Buffer) Release() error {
	if b.data == nil {
		b.length = 0
		return nil
	}
	if err := b.allocator().Release(b.data); err != nil {
		return fmt.Errorf("release %d bytes: %w", len(b.data), err)
	}
	b.data = nil
	b.length = 0
	return nil
}

// --- Content mutation ---

// WriteAt copies p into [offset, offset+len(p)), extending Len() if the
// write goes past it. The write must fit in Cap(); if offset is beyond
// Len() the gap holds unspecified bytes that the caller must overwrite.
// p may alias the buffer's own contents.
func (b *Buffer) WriteAt(offset int, p []byte) error {
	if offset < 0 || offset+len(p) > len(b.data) {
		return fmt.Errorf("write %d bytes at %d (len %d, cap %d): %w", len(p), offset, b.length, len(b.data), ErrOutOfBounds)
	}
	copy(b.data[offset:], p)
	if end := offset + len(p); end > b.length {
		b.length = end
	}
	return nil
}

// Move copies n bytes from src to dst inside the buffer. The ranges may
// overlap. Like WriteAt, it may extend Len() but never past Cap().
// Moving a tail right by k bytes opens a k-byte gap for an insertion.
func (b *Buffer) Move(dst, src, n int) error {
	if n < 0 || src < 0 || src+n > b.length {
		return fmt.Errorf("move %d bytes from %d (len %d): %w", n, src, b.length, ErrOutOfBounds)
	}
	return b.WriteAt(dst, b.data[src:src+n])
}

// Truncate shrinks Len() to n without releasing storage.
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > b.length {
		return fmt.Errorf("truncate to %d (len %d): %w", n, b.length, ErrOutOfBounds)
	}
	b.length = n
	return nil
}
