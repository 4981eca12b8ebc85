package services

import (
	"context"
	"sync"

	"github.com/fishub/lookupload/pkg/lookupload"
)

type mockConnector struct {
	writer lookupload.DocumentWriter
	err    error
	calls  int
}

func (m *mockConnector) Connect(_ context.Context) (lookupload.DocumentWriter, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.writer, nil
}

// factoryFor returns a ConnectorFactory that hands out c and records the
// configs it was called with.
func factoryFor(c *mockConnector, seen *[]lookupload.LoadConfig) lookupload.ConnectorFactory {
	return func(cfg lookupload.LoadConfig) (lookupload.Connector, error) {
		if seen != nil {
			*seen = append(*seen, cfg)
		}
		return c, nil
	}
}

// blockingWriter holds every write until release is closed and tracks how
// many writes were in flight at once.
type blockingWriter struct {
	release chan struct{}

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	ids         []string
	closed      bool
}

func newBlockingWriter() *blockingWriter {
	return &blockingWriter{release: make(chan struct{})}
}

func (w *blockingWriter) SetValues(ctx context.Context, _, id string, _ []string) error {
	w.mu.Lock()
	w.inFlight++
	if w.inFlight > w.maxInFlight {
		w.maxInFlight = w.inFlight
	}
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight--
		w.ids = append(w.ids, id)
		w.mu.Unlock()
	}()

	select {
	case <-w.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *blockingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
