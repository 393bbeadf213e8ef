package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gozar/internal/config"
	"gozar/internal/domain"
	"gozar/internal/interfaces"
)

var errNotProcessed = errors.New("link was not processed")

// Pool parses a batch of links concurrently and turns the results into
// connection records in input order.
type Pool struct {
	config  PoolConfig
	parser  interfaces.LinkParser
	metrics domain.MetricsCollector
	logger  *zap.Logger
}

type PoolConfig struct {
	WorkerCount int
	// Clock stamps AddedAt on every record.
	Clock func() time.Time
}

func NewPool(
	cfg *config.Config,
	parser interfaces.LinkParser,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Pool {
	return NewPoolWithConfig(PoolConfig{
		WorkerCount: cfg.Workers.Count,
		Clock:       time.Now,
	}, parser, metrics, logger)
}

func NewPoolWithConfig(
	poolConfig PoolConfig,
	parser interfaces.LinkParser,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Pool {
	if poolConfig.WorkerCount < 1 {
		poolConfig.WorkerCount = 1
	}
	if poolConfig.Clock == nil {
		poolConfig.Clock = time.Now
	}

	return &Pool{
		config:  poolConfig,
		parser:  parser,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "worker_pool")),
	}
}

// Ingest parses links and assigns ids 1..n in input order. Either every link
// becomes a connection or no connection is returned and the error lists
// every failing link as an *IngestError.
func (p *Pool) Ingest(ctx context.Context, links []domain.RawLink) ([]domain.Connection, error) {
	if len(links) == 0 {
		return []domain.Connection{}, nil
	}

	jobs := make(chan job, len(links))
	results := make(chan result, len(links))
	for i, l := range links {
		jobs <- job{index: i, link: l}
	}
	close(jobs)

	workerCount := min(p.config.WorkerCount, len(links))
	p.logger.Debug("starting workers",
		zap.Int("worker_count", workerCount),
		zap.Int("links", len(links)))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		w := newWorker(i+1, jobs, results, p.parser, p.metrics, p.logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer p.handleWorkerPanic(w)
			w.Start(ctx)
		}()
	}
	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingestion cancelled: %w", err)
	}

	ordered := make([]*result, len(links))
	for r := range results {
		ordered[r.index] = &r
	}

	connections := make([]domain.Connection, 0, len(links))
	var errs error
	for i, r := range ordered {
		name := links[i].Name
		switch {
		case r == nil:
			errs = multierr.Append(errs, NewIngestError(name, StageParse, errNotProcessed))
			continue
		case r.err != nil:
			errs = multierr.Append(errs, NewIngestError(name, StageParse, r.err))
			continue
		}

		c := domain.NewConnection(int64(i+1), r.parsed, p.config.Clock())
		if err := c.Validate(); err != nil {
			errs = multierr.Append(errs, NewIngestError(name, StageValidate, err))
			continue
		}
		connections = append(connections, c)
	}

	if errs != nil {
		p.logger.Error("link ingestion failed",
			zap.Int("failed", len(multierr.Errors(errs))),
			zap.Int("links", len(links)))
		return nil, errs
	}

	p.logger.Info("links ingested", zap.Int("connections", len(connections)))
	return connections, nil
}

func (p *Pool) handleWorkerPanic(w *worker) {
	if r := recover(); r != nil {
		p.logger.Error("worker panic recovered",
			zap.Int("worker_id", w.id),
			zap.Any("panic", r),
			zap.Stack("stack"))
	}
}
