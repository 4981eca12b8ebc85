package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/fishub/lookupload/internal/credentials"
	"github.com/fishub/lookupload/pkg/lookupload"
	"google.golang.org/api/option"
)

type clientFactory func(ctx context.Context, projectID string, opts ...option.ClientOption) (*firestore.Client, error)

// FirestoreConnector implements lookupload.Connector for Cloud Firestore.
type FirestoreConnector struct {
	credentialsPath string
	projectID       string
	emulatorHost    string
	logger          lookupload.Logger
	newClient       clientFactory
}

// NewFirestoreConnector creates a connector for the given run configuration.
func NewFirestoreConnector(cfg lookupload.LoadConfig, logger lookupload.Logger) *FirestoreConnector {
	return &FirestoreConnector{
		credentialsPath: cfg.CredentialsPath,
		projectID:       cfg.ProjectID,
		emulatorHost:    cfg.EmulatorHost,
		logger:          logger,
		newClient:       firestore.NewClient,
	}
}

// NewConnector is a lookupload.ConnectorFactory backed by Firestore.
func NewConnector(logger lookupload.Logger) lookupload.ConnectorFactory {
	return func(cfg lookupload.LoadConfig) (lookupload.Connector, error) {
		return NewFirestoreConnector(cfg, logger), nil
	}
}

// Connect loads the key file and creates the client. Every failure here
// wraps lookupload.ErrInitialization.
//
// With an emulator host the key file is not read: the client library picks
// FIRESTORE_EMULATOR_HOST up from the environment and skips authentication.
func (c *FirestoreConnector) Connect(ctx context.Context) (lookupload.DocumentWriter, error) {
	if c.emulatorHost != "" {
		projectID := c.projectID
		if projectID == "" {
			projectID = lookupload.DefaultEmulatorProject
		}
		c.logger.Verbose("Using Firestore emulator at %s (project %s)", c.emulatorHost, projectID)
		return c.open(ctx, projectID)
	}

	sa, err := credentials.LoadServiceAccount(c.credentialsPath)
	if err != nil {
		return nil, err
	}
	defer sa.Release()

	projectID := c.projectID
	if projectID == "" {
		projectID = sa.ProjectID
	}
	c.logger.Verbose("Authenticating as %s (project %s)", sa.ClientEmail, projectID)

	creds, err := sa.GoogleCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return c.open(ctx, projectID, option.WithCredentials(creds))
}

func (c *FirestoreConnector) open(ctx context.Context, projectID string, opts ...option.ClientOption) (lookupload.DocumentWriter, error) {
	client, err := c.newClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Firestore client: %w", lookupload.ErrInitialization, err)
	}
	return &FirestoreWriter{client: client}, nil
}

// FirestoreWriter writes lookup documents with DocumentRef.Set.
type FirestoreWriter struct {
	client *firestore.Client
}

// NewFirestoreWriter wraps an existing client.
func NewFirestoreWriter(client *firestore.Client) *FirestoreWriter {
	return &FirestoreWriter{client: client}
}

// SetValues implements lookupload.DocumentWriter. Set without a merge
// option replaces the document, dropping any other fields.
func (w *FirestoreWriter) SetValues(ctx context.Context, collection, id string, values []string) error {
	doc := w.client.Collection(collection).Doc(id)
	if doc == nil {
		return fmt.Errorf("%w: invalid document path %s/%s", lookupload.ErrWriteFailed, collection, id)
	}
	if _, err := doc.Set(ctx, map[string]interface{}{lookupload.ValuesField: values}); err != nil {
		return classify(err)
	}
	return nil
}

// Close releases the Firestore client.
func (w *FirestoreWriter) Close() error {
	return w.client.Close()
}

var (
	_ lookupload.Connector      = (*FirestoreConnector)(nil)
	_ lookupload.DocumentWriter = (*FirestoreWriter)(nil)
)
