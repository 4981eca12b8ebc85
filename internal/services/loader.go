package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fishub/lookupload/internal/lookup"
	"github.com/fishub/lookupload/internal/store"
	"github.com/fishub/lookupload/pkg/lookupload"
	"golang.org/x/sync/errgroup"
)

// LoaderService uploads the lookup table, one document per category.
type LoaderService struct {
	connectorFactory lookupload.ConnectorFactory
	logger           lookupload.Logger
}

// NewLoaderService creates a LoaderService. The factory is not used for
// dry runs.
func NewLoaderService(connectorFactory lookupload.ConnectorFactory, logger lookupload.Logger) *LoaderService {
	return &LoaderService{
		connectorFactory: connectorFactory,
		logger:           logger,
	}
}

// Load replaces lookup documents with the literal table.
//
// Connection problems are reported before any write. After that each
// category is an independent full-document replace: a failure leaves
// earlier writes in place and is not rolled back. The returned result
// lists what was committed, also on error.
func (s *LoaderService) Load(ctx context.Context, cfg lookupload.LoadConfig) (lookupload.LoadResult, error) {
	start := time.Now()
	result := lookupload.LoadResult{Collection: cfg.Collection, DryRun: cfg.DryRun}

	if err := cfg.Validate(); err != nil {
		return result, err
	}

	categories, err := lookup.Select(cfg.Categories)
	if err != nil {
		return result, err
	}

	writer, err := s.connect(ctx, cfg)
	if err != nil {
		return result, err
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			s.logger.Error("Failed to close database client: %v", cerr)
		}
	}()

	s.logger.Verbose("Writing %d categories to %s (concurrency %d)", len(categories), cfg.Collection, cfg.Concurrency)

	if cfg.Concurrency > 1 {
		result.Written, err = s.writeConcurrent(ctx, writer, cfg, categories)
	} else {
		result.Written, err = s.writeSequential(ctx, writer, cfg.Collection, categories)
	}
	result.Duration = time.Since(start)

	if err != nil {
		if len(result.Written) > 0 {
			s.logger.Error("%d of %d categories were written before the failure: %v", len(result.Written), len(categories), result.Written)
		}
		return result, err
	}
	return result, nil
}

func (s *LoaderService) connect(ctx context.Context, cfg lookupload.LoadConfig) (lookupload.DocumentWriter, error) {
	var connector lookupload.Connector
	if cfg.DryRun {
		connector = store.NewMemoryConnector()
	} else {
		c, err := s.connectorFactory(cfg)
		if err != nil {
			return nil, initError(err)
		}
		connector = c
	}

	writer, err := connector.Connect(ctx)
	if err != nil {
		return nil, initError(err)
	}
	return writer, nil
}

func initError(err error) error {
	if errors.Is(err, lookupload.ErrInitialization) {
		return err
	}
	return fmt.Errorf("%w: %w", lookupload.ErrInitialization, err)
}

func (s *LoaderService) writeSequential(ctx context.Context, w lookupload.DocumentWriter, collection string, categories []lookup.Category) ([]string, error) {
	written := make([]string, 0, len(categories))
	for i, c := range categories {
		if err := w.SetValues(ctx, collection, c.Name, c.Values); err != nil {
			return written, fmt.Errorf("category %s (%d/%d): %w", c.Name, i+1, len(categories), err)
		}
		written = append(written, c.Name)
		s.logger.Verbose("Wrote %s/%s (%d values)", collection, c.Name, len(c.Values))
	}
	return written, nil
}

// writeConcurrent stops scheduling new writes after the first failure.
// Writes already in flight may still commit.
func (s *LoaderService) writeConcurrent(ctx context.Context, w lookupload.DocumentWriter, cfg lookupload.LoadConfig, categories []lookup.Category) ([]string, error) {
	var (
		mu      sync.Mutex
		written = make([]string, 0, len(categories))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for _, c := range categories {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := w.SetValues(gctx, cfg.Collection, c.Name, c.Values); err != nil {
				return fmt.Errorf("category %s: %w", c.Name, err)
			}
			mu.Lock()
			written = append(written, c.Name)
			mu.Unlock()
			s.logger.Verbose("Wrote %s/%s (%d values)", cfg.Collection, c.Name, len(c.Values))
			return nil
		})
	}

	err := g.Wait()
	if err == nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: %w", lookupload.ErrWriteFailed, ctx.Err())
	}
	return written, err
}
