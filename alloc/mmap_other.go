//go:build !linux

package alloc

// NewMmap reports ErrUnsupported; mremap is only available on linux.
func NewMmap() (Allocator, error) {
	return nil, ErrUnsupported
}
