package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers wires the periodic sync and usage-submit jobs. A job whose
// interval is not positive is left out.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SyncInterval > 0 {
		w.workers = append(w.workers, newJobWorker("sync", services.SyncJob, cfg.SyncInterval, logger))
	}
	if cfg.UsageSubmitInterval > 0 {
		w.workers = append(w.workers, newJobWorker("usage_submit", services.UsageJob, cfg.UsageSubmitInterval, logger))
	}

	return w
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// jobWorker runs a service.ClientJob on a fixed interval.
type jobWorker struct {
	name     string
	job      service.ClientJob
	interval time.Duration
	logger   *logger.Logger
}

func newJobWorker(name string, job service.ClientJob, interval time.Duration, logger *logger.Logger) *jobWorker {
	return &jobWorker{name: name, job: job, interval: interval, logger: logger}
}

func (j *jobWorker) Run(ctx context.Context) {
	j.logger.Info().
		Str("func", "jobWorker.Run").
		Str("worker", j.name).
		Dur("interval", j.interval).
		Msg("starting worker")

	j.job.Start(j.logger.WithContext(ctx), j.interval)
}

func (j *jobWorker) Stop() {
	j.job.Stop()

	j.logger.Info().
		Str("func", "jobWorker.Stop").
		Str("worker", j.name).
		Msg("worker stopped")
}
