package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/user-management-api/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return after ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}

	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("background workers started")
	}
	wg.Wait()
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
