package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

// DefaultJobInterval is used when a job is started with a non-positive interval.
const DefaultJobInterval = 5 * time.Minute

// tickerJob calls run on every tick until stopped.
type tickerJob struct {
	name string
	run  func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that runs a sync on every tick. A tick that
// lands while another sync is running is skipped.
func NewClientSyncJob(syncService ClientSyncService) ClientJob {
	return &tickerJob{
		name: "sync",
		run: func(ctx context.Context) error {
			err := syncService.Run(ctx)
			switch {
			case errors.Is(err, ErrSyncInProgress):
				logger.FromContext(ctx).Debug().
					Str("func", "syncJob.run").
					Msg("sync already running, tick skipped")
				return nil
			case errors.Is(err, adapter.ErrCanceled):
				return nil
			}
			return err
		},
	}
}

// NewUsageSubmitJob creates a job that drains the usage-log queue on every tick.
func NewUsageSubmitJob(usageService ClientUsageService) ClientJob {
	return &tickerJob{
		name: "usage_submit",
		run: func(ctx context.Context) error {
			_, err := usageService.SubmitPending(ctx)
			return err
		},
	}
}

// Start stops any previously running instance of the job, then calls run
// every interval until ctx is canceled or Stop is called.
func (j *tickerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultJobInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.run(jobCtx); err != nil && jobCtx.Err() == nil {
					logger.FromContext(jobCtx).Err(err).
						Str("func", "tickerJob.Start").
						Str("job", j.name).
						Msg("job run failed")
				}
			}
		}
	}()
}

// Stop cancels the job and waits for its goroutine to exit. Safe to call
// when the job is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
