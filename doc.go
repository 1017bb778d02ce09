// Package growstr provides a growable string whose contents are always
// valid UTF-8.
//
// A String owns one contiguous buffer obtained from an alloc.Allocator and
// grown according to a growth.Policy. Mutations either succeed completely
// or leave the String untouched; in particular, insertions and removals
// are only accepted at codepoint boundaries.
//
// Views and Iterators are read-only projections that hold no ownership.
// Each String carries a generation counter that every mutation advances;
// a View or Iterator taken before a mutation reports ErrStaleView instead
// of reading changed or freed memory.
//
// Basic usage:
//
//	s, err := growstr.FromString("café")
//	if err != nil {
//		return err
//	}
//	s.AppendString(" au lait")       // "café au lait"
//	v, _ := s.Slice(0, 5)            // view of "café"
//	s.RemoveRange(0, 6)              // "au lait"; v is now stale
package growstr
