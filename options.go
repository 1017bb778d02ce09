package growstr

import (
	"github.com/bulga138/growstr/alloc"
	"github.com/bulga138/growstr/growth"
)

type settings struct {
	alloc     alloc.Allocator
	policy    growth.Policy
	eastAsian bool
}

// Option configures a String at construction.
type Option func(*settings)

// WithAllocator sets the allocator that provides the String's storage.
func WithAllocator(a alloc.Allocator) Option {
	return func(s *settings) {
		if a != nil {
			s.alloc = a
		}
	}
}

// WithPolicy sets the growth policy.
func WithPolicy(p growth.Policy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithEastAsianWidth makes Width treat ambiguous-width characters as two
// cells wide.
func WithEastAsianWidth(on bool) Option {
	return func(s *settings) {
		s.eastAsian = on
	}
}

func buildSettings(opts []Option) settings {
	st := settings{alloc: alloc.Default(), policy: growth.Default()}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// options returns the options that reproduce s's configuration.
func (s *String) options() []Option {
	return []Option{
		WithAllocator(s.buf.Allocator()),
		WithPolicy(s.buf.Policy()),
		WithEastAsianWidth(s.eastAsian),
	}
}
