// Package growth computes the next capacity of a growing buffer.
package growth

import (
	"fmt"
	"math"
)

// Bounds for Policy.Factor.
const (
	MinFactor = 1.5
	MaxFactor = 2.0
)

// Defaults used by the zero Policy.
const (
	DefaultFactor      = 2.0
	DefaultMinCapacity = 16
)

// Policy is an amortized growth rule. The zero value behaves like Default().
// Next clamps an out-of-range Factor; Validate reports it.
type Policy struct {
	// Factor multiplies the current capacity when it is too small.
	Factor float64
	// MinCapacity is the first capacity handed out for an empty buffer.
	MinCapacity int
}

// Default returns the default policy: double, starting at 16 bytes.
func Default() Policy {
	return Policy{Factor: DefaultFactor, MinCapacity: DefaultMinCapacity}
}

// Validate reports whether the policy's parameters are usable.
func (p Policy) Validate() error {
	if p.Factor < MinFactor || p.Factor > MaxFactor {
		return fmt.Errorf("growth factor %v outside [%v, %v]", p.Factor, MinFactor, MaxFactor)
	}
	if p.MinCapacity <= 0 {
		return fmt.Errorf("minimum capacity must be positive, got %d", p.MinCapacity)
	}
	return nil
}

// normalized fills zero fields with defaults and clamps Factor into
// [MinFactor, MaxFactor].
func (p Policy) normalized() Policy {
	switch {
	case p.Factor == 0 || math.IsNaN(p.Factor):
		p.Factor = DefaultFactor
	case p.Factor < MinFactor:
		p.Factor = MinFactor
	case p.Factor > MaxFactor:
		p.Factor = MaxFactor
	}
	if p.MinCapacity <= 0 {
		p.MinCapacity = DefaultMinCapacity
	}
	return p
}

// Next returns the capacity to allocate when a buffer of capacity current
// must hold at least required bytes. The result is always >= required and
// equals current when current already suffices.
func (p Policy) Next(current, required int) int {
	if current >= required {
		return current
	}
	p = p.normalized()
	if current <= 0 {
		return max(required, p.MinCapacity)
	}

	scaled := float64(current) * p.Factor
	if scaled >= math.MaxInt {
		return max(required, math.MaxInt)
	}
	return max(required, int(scaled))
}
