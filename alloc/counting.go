package alloc

import "sync/atomic"

// Stats is a snapshot of the calls seen by a Counting allocator.
type Stats struct {
	Acquires  int64
	Grows     int64
	Releases  int64
	Failures  int64
	LiveBytes int64
	// LiveBlocks counts blocks acquired but not yet released.
	LiveBlocks int64
}

// Counting records every call made through it.
type Counting struct {
	inner Allocator

	acquires   atomic.Int64
	grows      atomic.Int64
	releases   atomic.Int64
	failures   atomic.Int64
	liveBytes  atomic.Int64
	liveBlocks atomic.Int64
}

var _ Allocator = (*Counting)(nil)

// NewCounting wraps inner. A nil inner uses the default allocator.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default()
	}
	return &Counting{inner: inner}
}

func (c *Counting) Acquire(size int) ([]byte, error) {
	block, err := c.inner.Acquire(size)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.acquires.Add(1)
	if block != nil {
		c.liveBlocks.Add(1)
		c.liveBytes.Add(int64(len(block)))
	}
	return block, nil
}

func (c *Counting) Grow(block []byte, size int) ([]byte, error) {
	old := len(block)
	grown, err := c.inner.Grow(block, size)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}
	c.grows.Add(1)
	if block == nil && grown != nil {
		c.liveBlocks.Add(1)
	}
	c.liveBytes.Add(int64(len(grown) - old))
	return grown, nil
}

func (c *Counting) Release(block []byte) error {
	if err := c.inner.Release(block); err != nil {
		c.failures.Add(1)
		return err
	}
	if block == nil {
		return nil
	}
	c.releases.Add(1)
	c.liveBlocks.Add(-1)
	c.liveBytes.Add(-int64(len(block)))
	return nil
}

// Stats returns the current counters.
func (c *Counting) Stats() Stats {
	return Stats{
		Acquires:   c.acquires.Load(),
		Grows:      c.grows.Load(),
		Releases:   c.releases.Load(),
		Failures:   c.failures.Load(),
		LiveBytes:  c.liveBytes.Load(),
		LiveBlocks: c.liveBlocks.Load(),
	}
}
