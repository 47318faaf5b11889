// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/zk-vault/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and returns once ctx is
// done and all of them have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

type periodic struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	logger   *logger.Logger
}

// NewPeriodic returns a Worker calling fn every interval until ctx is done.
func NewPeriodic(name string, interval time.Duration, fn func(ctx context.Context), log *logger.Logger) Worker {
	return &periodic{name: name, interval: interval, fn: fn, logger: log}
}

func (p *periodic) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("worker", p.name).Msg("worker stopped")
			return
		case <-ticker.C:
			p.fn(ctx)
		}
	}
}
