package alloc

import (
	"fmt"
	"sync"
)

// Limit fails any request that would push the number of outstanding bytes
// above Max. It is useful both as a memory cap and for deterministic fault
// injection in tests.
type Limit struct {
	inner Allocator
	max   int64

	mu   sync.Mutex
	live int64
}

var _ Allocator = (*Limit)(nil)

// NewLimit wraps inner with a ceiling of max outstanding bytes.
func NewLimit(inner Allocator, max int64) *Limit {
	if inner == nil {
		inner = Default()
	}
	return &Limit{inner: inner, max: max}
}

func (l *Limit) Acquire(size int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.live+int64(size) > l.max {
		return nil, fmt.Errorf("acquire %d bytes (%d of %d in use): %w", size, l.live, l.max, ErrAllocationFailure)
	}
	block, err := l.inner.Acquire(size)
	if err != nil {
		return nil, err
	}
	l.live += int64(len(block))
	return block, nil
}

func (l *Limit) Grow(block []byte, size int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	extra := int64(size - len(block))
	if l.live+extra > l.max {
		return nil, fmt.Errorf("grow %d to %d bytes (%d of %d in use): %w", len(block), size, l.live, l.max, ErrAllocationFailure)
	}
	old := len(block)
	grown, err := l.inner.Grow(block, size)
	if err != nil {
		return nil, err
	}
	l.live += int64(len(grown) - old)
	return grown, nil
}

func (l *Limit) Release(block []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.inner.Release(block); err != nil {
		return err
	}
	l.live -= int64(len(block))
	return nil
}

// InUse returns the number of outstanding bytes.
func (l *Limit) InUse() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live
}
