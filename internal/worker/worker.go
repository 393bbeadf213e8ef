package worker

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gozar/internal/domain"
	"gozar/internal/interfaces"
	"gozar/internal/link"
)

type job struct {
	index int
	link  domain.RawLink
}

type result struct {
	index  int
	parsed domain.ParsedConnection
	err    error
}

// worker parses links from the jobs channel until it is drained
type worker struct {
	id      int
	jobs    <-chan job
	results chan<- result
	parser  interfaces.LinkParser
	metrics domain.MetricsCollector
	logger  *zap.Logger
}

func newWorker(
	id int,
	jobs <-chan job,
	results chan<- result,
	parser interfaces.LinkParser,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *worker {
	return &worker{
		id:      id,
		jobs:    jobs,
		results: results,
		parser:  parser,
		metrics: metrics,
		logger:  logger.With(zap.Int("worker_id", id)),
	}
}

func (w *worker) Start(ctx context.Context) {
	workerID := strconv.Itoa(w.id)
	w.metrics.RecordWorkerStart(workerID)
	defer w.metrics.RecordWorkerStop(workerID)

	w.logger.Debug("worker started")
	defer w.logger.Debug("worker stopped")

	for {
		select {
		case j, ok := <-w.jobs:
			if !ok {
				return
			}
			w.results <- w.process(j)
		case <-ctx.Done():
			w.logger.Debug("context cancelled", zap.Error(ctx.Err()))
			return
		}
	}
}

func (w *worker) process(j job) result {
	parsed, err := w.parser.ParseAndValidate(j.link.URL)
	if err != nil {
		w.metrics.RecordLinkRejected(link.Reason(err))
		w.logger.Warn("link rejected",
			zap.String("link", string(j.link.Name)),
			zap.Error(err))
		return result{index: j.index, err: err}
	}

	w.metrics.RecordLinkParsed(parsed.Protocol)
	w.logger.Debug("link parsed",
		zap.String("link", string(j.link.Name)),
		zap.String("protocol", string(parsed.Protocol)),
		zap.String("host", parsed.ServerHost))
	return result{index: j.index, parsed: parsed}
}
