package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/blobstore"
)

// OpenBlobStore connects the backend selected by cfg.Store.Backend.
// The returned close function releases the underlying connection.
func OpenBlobStore(ctx context.Context, cfg *config.Config) (adapter.BlobStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.StoreMemory:
		slog.Warn("Using in-memory store, data is lost on shutdown")
		return blobstore.NewMemoryStore(), noop, nil

	case config.StoreRedis:
		client, err := blobstore.OpenRedis(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return blobstore.NewRedisStore(client), client.Close, nil

	case config.StoreSQLite, config.StorePostgres:
		var (
			database *db.Database
			err      error
		)
		if cfg.Store.Backend == config.StoreSQLite {
			database, err = db.NewSQLiteConnection(&cfg.SQLite)
		} else {
			database, err = db.NewPostgresConnection(&cfg.Database)
		}
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(); err != nil {
			_ = database.Close()
			return nil, nil, err
		}
		slog.Info("Database migrations completed successfully")
		return blobstore.NewSQLStore(database.DB()), database.Close, nil

	case config.StoreGCS:
		if cfg.GCS.Bucket == "" {
			return nil, nil, fmt.Errorf("GCS_BUCKET is required for the gcs store backend")
		}
		store, err := blobstore.NewGCSStore(ctx, cfg.GCS.Bucket, cfg.GCS.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
