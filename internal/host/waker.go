package host

import (
	"log/slog"

	"scrap/internal/embedder"
)

// Wakeuper posts a wake notification to the native event source.
type Wakeuper interface {
	Wakeup() error
}

type waker struct {
	proxy Wakeuper
	log   *slog.Logger
}

// NewWaker returns an engine waker backed by proxy. A wake that cannot be
// delivered, which happens once the event source is gone during shutdown,
// is logged and dropped.
func NewWaker(proxy Wakeuper, log *slog.Logger) embedder.Waker {
	if log == nil {
		log = NopLogger()
	}
	return &waker{proxy: proxy, log: log}
}

func (w *waker) Clone() embedder.Waker {
	return &waker{proxy: w.proxy, log: w.log}
}

func (w *waker) Wake() {
	if err := w.proxy.Wakeup(); err != nil {
		w.log.Warn("can't wake up event loop", "error", err)
	}
}
