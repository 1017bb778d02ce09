// Package alloc abstracts acquisition and release of the raw byte blocks
// that back a growable string.
//
// Every block returned by Acquire or Grow must eventually be passed to
// exactly one Release call on the same allocator. Allocators never retry a
// failed request; they report ErrAllocationFailure and leave retry policy to
// the caller.
package alloc

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrAllocationFailure reports that an allocator could not satisfy a request.
var ErrAllocationFailure = errors.New("allocation failure")

// ErrUnsupported reports that an allocator is not available on this platform.
var ErrUnsupported = errors.New("allocator not supported on this platform")

// Allocator acquires, grows and releases byte blocks.
type Allocator interface {
	// Acquire returns a block of exactly size bytes. Acquire(0) returns a
	// nil block.
	Acquire(size int) ([]byte, error)

	// Grow returns a block of size bytes holding the contents of block.
	// The result may live at a different address; on success the old block
	// must no longer be used. On failure the old block is untouched and
	// still owned by the caller.
	Grow(block []byte, size int) ([]byte, error)

	// Release returns a block to the allocator. Release(nil) is a no-op.
	Release(block []byte) error
}

// Heap allocates blocks on the Go heap.
type Heap struct{}

// Statically check that Heap implements the Allocator interface.
var _ Allocator = Heap{}

func (Heap) Acquire(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("acquire %d bytes: %w", size, ErrAllocationFailure)
	}
	if size == 0 {
		return nil, nil
	}
	return makeBlock(size)
}

func (Heap) Grow(block []byte, size int) ([]byte, error) {
	if size < len(block) {
		return nil, fmt.Errorf("grow %d to %d bytes: %w", len(block), size, ErrAllocationFailure)
	}
	if size == len(block) {
		return block, nil
	}
	grown, err := makeBlock(size)
	if err != nil {
		return nil, fmt.Errorf("grow %d to %d bytes: %w", len(block), size, err)
	}
	copy(grown, block)
	return grown, nil
}

// makeBlock allocates size bytes, turning the runtime's out-of-range panic
// for sizes above its allocation limit into ErrAllocationFailure.
func makeBlock(size int) (block []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			block, err = nil, fmt.Errorf("make %d bytes: %v: %w", size, rerr, ErrAllocationFailure)
		}
	}()
	return make([]byte, size), nil
}

// Release is a no-op; the garbage collector reclaims heap blocks.
func (Heap) Release([]byte) error { return nil }

// Default returns the allocator used when none is configured.
func Default() Allocator { return Heap{} }
