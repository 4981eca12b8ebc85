package lookupload

import "context"

// DocumentWriter replaces whole documents in a collection.
//
// Implementations:
//   - store.FirestoreWriter: Cloud Firestore (or its emulator)
//   - store.MemoryWriter: in-process map, used for dry runs and tests
type DocumentWriter interface {
	// SetValues replaces the document collection/id with {"values": values}.
	// Any existing fields are dropped; the write is not a merge.
	SetValues(ctx context.Context, collection, id string, values []string) error

	// Close releases the underlying client.
	Close() error
}

// Connector creates a DocumentWriter. Credential problems surface here,
// before any document is written.
type Connector interface {
	Connect(ctx context.Context) (DocumentWriter, error)
}

// ConnectorFactory builds a Connector for a run configuration.
type ConnectorFactory func(cfg LoadConfig) (Connector, error)
