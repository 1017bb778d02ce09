package growstr

import (
	"errors"
	"fmt"

	"github.com/bulga138/growstr/alloc"
	"github.com/bulga138/growstr/buffer"
)

// Errors returned by String, View and Iterator operations.
var (
	// ErrAllocationFailure indicates the allocator could not provide storage.
	ErrAllocationFailure = alloc.ErrAllocationFailure

	// ErrOutOfBounds indicates an offset or range outside the contents.
	ErrOutOfBounds = buffer.ErrOutOfBounds

	// ErrInvalidEncoding indicates bytes that are not well-formed UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

	// ErrInvalidBoundary indicates an offset inside a multi-byte sequence.
	ErrInvalidBoundary = errors.New("offset is not a codepoint boundary")

	// ErrStaleView indicates a View or Iterator used after its source changed.
	ErrStaleView = errors.New("view used after its source was modified")

	// ErrSyntax indicates text that is not a decimal number.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates a number that does not fit the target type.
	ErrRange = errors.New("value out of range")
)

// EncodingError reports the first malformed byte in an input.
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }

// BoundaryError reports an offset that splits a codepoint.
type BoundaryError struct {
	Op     string
	Offset int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("%s: offset %d is not a codepoint boundary", e.Op, e.Offset)
}

func (e *BoundaryError) Unwrap() error { return ErrInvalidBoundary }
