// Package firestore reads household documents out of the legacy Firestore
// project so they can be migrated into PostgreSQL.
package firestore

import (
	"context"

	"roomie/config"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Document is one raw Firestore document: its ID plus the decoded field map.
type Document struct {
	ID   string
	Data map[string]any
}

// Source reads entire collections from the legacy store. Implementations are
// read-only; the migration never writes back to Firestore.
type Source interface {
	// ReadAll returns every document in the named collection.
	ReadAll(ctx context.Context, collection string) ([]Document, error)

	// Close releases the underlying client.
	Close() error
}

type clientSource struct {
	client *firestore.Client
}

// NewSource connects to the configured Firestore project.
func NewSource(ctx context.Context, cfg *config.FirestoreConfig) (Source, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firestore project ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	return &clientSource{client: client}, nil
}

// ReadAll returns every document in the named collection.
func (s *clientSource) ReadAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to iterate collection %s", collection)
		}

		docs = append(docs, Document{
			ID:   snapshot.Ref.ID,
			Data: snapshot.Data(),
		})
	}

	return docs, nil
}

// Close releases the underlying client.
func (s *clientSource) Close() error {
	return errors.WithStack(s.client.Close())
}
