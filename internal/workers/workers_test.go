// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []string{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run(context.Background())
	ws.Stop()

	expected := []string{"run1", "run2", "run3", "stop3", "stop2", "stop1"}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%s, got %s", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())
	ws.Stop()

	if w.stopCount != 1 {
		t.Errorf("expected Stop to be called exactly once, got %d", w.stopCount)
	}
}

func TestNewClientWorkers_SkipsDisabledJobs(t *testing.T) {
	services := &service.ClientServices{
		SyncJob:  &spyJob{},
		UsageJob: &spyJob{},
	}

	tests := []struct {
		name string
		cfg  config.ClientWorkers
		want int
	}{
		{name: "both", cfg: config.ClientWorkers{SyncInterval: time.Minute, UsageSubmitInterval: time.Minute}, want: 2},
		{name: "sync only", cfg: config.ClientWorkers{SyncInterval: time.Minute}, want: 1},
		{name: "none", cfg: config.ClientWorkers{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewClientWorkers(services, tt.cfg, logger.Nop())
			if ws.Len() != tt.want {
				t.Errorf("expected %d workers, got %d", tt.want, ws.Len())
			}
		})
	}
}

func TestNewClientWorkers_StartsJobsWithConfiguredInterval(t *testing.T) {
	syncJob := &spyJob{}
	usageJob := &spyJob{}
	services := &service.ClientServices{SyncJob: syncJob, UsageJob: usageJob}

	ws := NewClientWorkers(services, config.ClientWorkers{
		SyncInterval:        10 * time.Minute,
		UsageSubmitInterval: time.Minute,
	}, logger.Nop())

	ws.Run(context.Background())
	ws.Stop()

	if syncJob.interval != 10*time.Minute {
		t.Errorf("sync job: expected interval 10m, got %s", syncJob.interval)
	}
	if usageJob.interval != time.Minute {
		t.Errorf("usage job: expected interval 1m, got %s", usageJob.interval)
	}
	if !syncJob.stopped || !usageJob.stopped {
		t.Error("expected both jobs to be stopped")
	}
}

// orderWorker records Run and Stop calls into a shared slice.
type orderWorker struct {
	id    int
	order *[]string
}

func (o *orderWorker) Run(_ context.Context) {
	*o.order = append(*o.order, "run"+string(rune('0'+o.id)))
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop"+string(rune('0'+o.id)))
}

// spyJob implements service.ClientJob.
type spyJob struct {
	interval time.Duration
	stopped  bool
}

func (s *spyJob) Start(_ context.Context, interval time.Duration) {
	s.interval = interval
}

func (s *spyJob) Stop() {
	s.stopped = true
}
