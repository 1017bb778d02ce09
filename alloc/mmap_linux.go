//go:build linux

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap backs blocks with anonymous private mappings outside the Go heap.
// Grow uses mremap, so large strings can be extended without a copy when
// the kernel can move the pages.
//
// Blocks must be released explicitly; the garbage collector does not see
// them. Accessing a block after Release faults.
type Mmap struct{}

var _ Allocator = Mmap{}

// NewMmap returns the mmap allocator.
func NewMmap() (Allocator, error) {
	return Mmap{}, nil
}

func (Mmap) Acquire(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, ErrAllocationFailure)
	}
	if size == 0 {
		return nil, nil
	}
	block, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w: %w", size, ErrAllocationFailure, err)
	}
	return block, nil
}

func (m Mmap) Grow(block []byte, size int) ([]byte, error) {
	if size < len(block) {
		return nil, fmt.Errorf("mremap %d to %d bytes: %w", len(block), size, ErrAllocationFailure)
	}
	if block == nil {
		return m.Acquire(size)
	}
	if size == len(block) {
		return block, nil
	}
	grown, err := unix.Mremap(block, size, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, fmt.Errorf("mremap %d to %d bytes: %w: %w", len(block), size, ErrAllocationFailure, err)
	}
	return grown, nil
}

func (Mmap) Release(block []byte) error {
	if block == nil {
		return nil
	}
	if err := unix.Munmap(block); err != nil {
		return fmt.Errorf("munmap %d bytes: %w", len(block), err)
	}
	return nil
}
