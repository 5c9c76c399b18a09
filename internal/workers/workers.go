// Package workers runs the server's background consumers of form events.
package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/events"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

// Worker subscribes in Run and returns once it is ready. Processing goes on
// in goroutines the worker owns until ctx is done.
type Worker interface {
	Run(ctx context.Context) error
}

type namedWorker struct {
	name string
	Worker
}

type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

// NewWorkers wires the server's background workers.
func NewWorkers(subscriber events.Subscriber, cache store.ReportCache, log *logger.Logger) *Workers {
	return &Workers{
		workers: []namedWorker{
			{name: "cache-invalidation", Worker: NewCacheInvalidationWorker(subscriber, cache, log)},
		},
		logger: log,
	}
}

// Run starts the workers in order and stops at the first one that fails to
// start.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("starting worker %s: %w", worker.name, err)
		}
		w.logger.Info().Str("worker", worker.name).Msg("worker started")
	}

	return nil
}
