// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-turf-booking/internal/config"
	"github.com/MKhiriev/go-turf-booking/internal/logger"
)

// countingWorker counts runs and blocks until cancelled.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) CheckReadiness(ctx context.Context) error {
	return f(ctx)
}

// recordingPublisher keeps every published status.
type recordingPublisher struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *recordingPublisher) SetServing(serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, serving)
}

func (r *recordingPublisher) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

func TestWorkers_Run_AllWorkersRunUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately when there is nothing to run
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	checker := checkerFunc(func(context.Context) error { return nil })

	tests := []struct {
		name      string
		cfg       config.Workers
		publisher StatusPublisher
		want      int
	}{
		{name: "probe enabled", cfg: config.Workers{HealthCheckInterval: time.Second}, publisher: &recordingPublisher{}, want: 1},
		{name: "no publisher", cfg: config.Workers{HealthCheckInterval: time.Second}, want: 0},
		{name: "no interval", cfg: config.Workers{}, publisher: &recordingPublisher{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.cfg, checker, tt.publisher, logger.Nop())
			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestHealthProbe_PublishesReadiness(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	checker := checkerFunc(func(context.Context) error {
		if healthy.Load() {
			return nil
		}
		return errors.New("database is down")
	})
	publisher := &recordingPublisher{}

	probe := NewHealthProbe(checker, publisher, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go probe.Run(ctx)

	require.Eventually(t, func() bool {
		s := publisher.snapshot()
		return len(s) > 0 && s[0]
	}, time.Second, 5*time.Millisecond, "first probe runs immediately")

	healthy.Store(false)
	require.Eventually(t, func() bool {
		s := publisher.snapshot()
		return !s[len(s)-1]
	}, time.Second, 5*time.Millisecond)

	healthy.Store(true)
	require.Eventually(t, func() bool {
		s := publisher.snapshot()
		return s[len(s)-1]
	}, time.Second, 5*time.Millisecond)
}

func TestHealthProbe_StopsOnCancel(t *testing.T) {
	publisher := &recordingPublisher{}
	probe := NewHealthProbe(checkerFunc(func(context.Context) error { return nil }), publisher, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(publisher.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probe did not stop")
	}
}
