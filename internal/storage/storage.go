package storage

import (
	"context"
	"fmt"

	"github.com/OFFIS-RIT/carekg/internal/config"
	"github.com/OFFIS-RIT/carekg/pkg/loader"
	ioloader "github.com/OFFIS-RIT/carekg/pkg/loader/io"
	s3loader "github.com/OFFIS-RIT/carekg/pkg/loader/s3"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/store"
	badgerstore "github.com/OFFIS-RIT/carekg/pkg/store/badger"
	filestore "github.com/OFFIS-RIT/carekg/pkg/store/file"
	pgxstore "github.com/OFFIS-RIT/carekg/pkg/store/pgx"
	s3store "github.com/OFFIS-RIT/carekg/pkg/store/s3"
)

// CloseFunc releases resources held by a storage backend.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenGraphStorage returns the snapshot storage selected by
// cfg.StoreBackend.
func OpenGraphStorage(ctx context.Context, cfg config.Config) (store.GraphStorage, CloseFunc, error) {
	switch cfg.StoreBackend {
	case config.BackendFile, "":
		logger.Debug("[Storage] Using file storage", "dir", cfg.StoreDir)
		return filestore.NewFileGraphStorage(cfg.StoreDir), noopClose, nil

	case config.BackendS3:
		s, err := s3store.NewS3GraphStorage(ctx, s3store.NewS3GraphStorageParams{
			Bucket:          cfg.AWS.Bucket,
			Prefix:          cfg.AWS.Prefix,
			Region:          cfg.AWS.Region,
			Endpoint:        cfg.AWS.Endpoint,
			AccessKeyID:     cfg.AWS.AccessKey,
			SecretAccessKey: cfg.AWS.SecretKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open s3 storage: %w", err)
		}
		logger.Debug("[Storage] Using s3 storage", "bucket", cfg.AWS.Bucket, "prefix", cfg.AWS.Prefix)
		return s, noopClose, nil

	case config.BackendPostgres:
		pool, err := pgxstore.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		s, err := pgxstore.NewPgxGraphStorage(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		logger.Debug("[Storage] Using postgres storage")
		return s, func() error {
			pool.Close()
			return nil
		}, nil

	case config.BackendBadger:
		s, err := badgerstore.Open(badgerstore.Config{Path: cfg.BadgerPath, SyncWrites: true})
		if err != nil {
			return nil, nil, fmt.Errorf("open badger storage: %w", err)
		}
		logger.Debug("[Storage] Using badger storage", "path", cfg.BadgerPath)
		return s, s.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// SourceLoader returns the loader for raw source files selected by
// cfg.SourceBackend.
func SourceLoader(ctx context.Context, cfg config.Config) (loader.GraphFileLoader, error) {
	switch cfg.SourceBackend {
	case config.BackendFile, "":
		return ioloader.NewIOGraphFileLoader(), nil
	case config.BackendS3:
		l, err := s3loader.NewS3GraphFileLoader(ctx, s3loader.NewS3GraphFileLoaderParams{
			Bucket:    cfg.AWS.Bucket,
			Endpoint:  cfg.AWS.Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKey,
			SecretKey: cfg.AWS.SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("open s3 source: %w", err)
		}
		return l, nil
	}
	return nil, fmt.Errorf("unknown source backend %q", cfg.SourceBackend)
}

// SourceFiles returns the three source files of cfg.DataDir read through l.
func SourceFiles(cfg config.Config, l loader.GraphFileLoader) []loader.GraphFile {
	return loader.DefaultFiles(cfg.DataDir, l)
}
