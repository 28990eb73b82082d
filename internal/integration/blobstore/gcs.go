package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// GCSStore keeps one object per key in a Cloud Storage bucket.
// Writes of several keys run concurrently and are not atomic across keys:
// a failed SaveAll may leave some objects updated.
type GCSStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

var _ adapter.BlobStore = (*GCSStore)(nil)

// NewGCSStore opens a storage client for bucket. Object names are prefix + key.
func NewGCSStore(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket is required")
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	slog.Info("Cloud Storage client created", "bucket", bucket, "prefix", prefix)
	return &GCSStore{
		client: client,
		bucket: client.Bucket(bucket),
		prefix: prefix,
	}, nil
}

func (s *GCSStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	r, err := s.bucket.Object(s.prefix + key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, true, nil
}

func (s *GCSStore) SaveAll(ctx context.Context, blobs map[string][]byte) error {
	g, gctx := errgroup.WithContext(ctx)
	for key, value := range blobs {
		g.Go(func() error {
			w := s.bucket.Object(s.prefix + key).NewWriter(gctx)
			w.ContentType = "application/json"
			if _, err := w.Write(value); err != nil {
				_ = w.Close()
				return fmt.Errorf("failed to write object %s: %w", key, err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("failed to finalize object %s: %w", key, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *GCSStore) Ping(ctx context.Context) error {
	_, err := s.bucket.Attrs(ctx)
	return err
}

// Close closes the storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
