package alloc

import (
	"log/slog"
)

// Logging emits a debug record for each call and a warning for each
// failure. It never changes the outcome of a call.
type Logging struct {
	inner  Allocator
	logger *slog.Logger
}

var _ Allocator = (*Logging)(nil)

// NewLogging wraps inner. A nil logger uses slog.Default().
func NewLogging(inner Allocator, logger *slog.Logger) *Logging {
	if inner == nil {
		inner = Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{inner: inner, logger: logger.With("component", "alloc")}
}

func (l *Logging) Acquire(size int) ([]byte, error) {
	block, err := l.inner.Acquire(size)
	if err != nil {
		l.logger.Warn("acquire failed", "size", size, "error", err)
		return nil, err
	}
	l.logger.Debug("acquire", "size", size)
	return block, nil
}

func (l *Logging) Grow(block []byte, size int) ([]byte, error) {
	old := len(block)
	grown, err := l.inner.Grow(block, size)
	if err != nil {
		l.logger.Warn("grow failed", "from", old, "to", size, "error", err)
		return nil, err
	}
	l.logger.Debug("grow", "from", old, "to", size)
	return grown, nil
}

func (l *Logging) Release(block []byte) error {
	if err := l.inner.Release(block); err != nil {
		l.logger.Warn("release failed", "size", len(block), "error", err)
		return err
	}
	if block != nil {
		l.logger.Debug("release", "size", len(block))
	}
	return nil
}
