package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/fishub/lookupload/pkg/lookupload"
)

// MemoryWriter keeps documents in a map keyed by "collection/id".
// Safe for concurrent use.
type MemoryWriter struct {
	mu     sync.Mutex
	docs   map[string][]string
	writes []string
	fail   map[string]error
	closed bool
}

// NewMemoryWriter creates an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{
		docs: make(map[string][]string),
		fail: make(map[string]error),
	}
}

func docKey(collection, id string) string {
	return collection + "/" + id
}

// FailOn makes every write to collection/id return err.
func (m *MemoryWriter) FailOn(collection, id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[docKey(collection, id)] = err
}

// SetValues implements lookupload.DocumentWriter.
func (m *MemoryWriter) SetValues(ctx context.Context, collection, id string, values []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", lookupload.ErrWriteFailed, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("%w: writer is closed", lookupload.ErrWriteFailed)
	}

	key := docKey(collection, id)
	if err, ok := m.fail[key]; ok {
		return classify(err)
	}

	stored := make([]string, len(values))
	copy(stored, values)
	m.docs[key] = stored
	m.writes = append(m.writes, key)
	return nil
}

// Get returns a copy of the stored values.
func (m *MemoryWriter) Get(collection, id string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, ok := m.docs[docKey(collection, id)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Len returns the number of stored documents.
func (m *MemoryWriter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// Writes returns the document keys in the order they were written,
// including repeated writes to the same document.
func (m *MemoryWriter) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// Close marks the writer closed. Stored documents stay readable.
func (m *MemoryWriter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MemoryWriter) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MemoryConnector hands out a shared MemoryWriter.
type MemoryConnector struct {
	Writer *MemoryWriter
	Err    error
}

// NewMemoryConnector creates a connector over a fresh MemoryWriter.
func NewMemoryConnector() *MemoryConnector {
	return &MemoryConnector{Writer: NewMemoryWriter()}
}

// Connect implements lookupload.Connector.
func (c *MemoryConnector) Connect(_ context.Context) (lookupload.DocumentWriter, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Writer, nil
}

var (
	_ lookupload.Connector      = (*MemoryConnector)(nil)
	_ lookupload.DocumentWriter = (*MemoryWriter)(nil)
)
