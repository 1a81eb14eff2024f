// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/records-dashboard/models"
)

// DefaultRefreshInterval is used by PendingRefreshJob.Start when the given
// interval is not positive.
const DefaultRefreshInterval = time.Minute

type pendingRefreshJob struct {
	dashboard DashboardService

	// mu serializes Start and Stop for their whole duration.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPendingRefreshJob creates a job that calls dashboard.Pending on a
// ticker. The job is idle until Start is called.
func NewPendingRefreshJob(dashboard DashboardService) PendingRefreshJob {
	return &pendingRefreshJob{dashboard: dashboard}
}

// Start implements PendingRefreshJob. The first count happens after one
// interval; callers wanting an immediate result call Pending themselves.
//
// onResult runs on the job goroutine and must not call Start or Stop.
func (j *pendingRefreshJob) Start(ctx context.Context, interval time.Duration, onResult func([]models.PendingRecords, error)) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done

	go j.run(jobCtx, done, interval, onResult)
}

// Stop implements PendingRefreshJob.
func (j *pendingRefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

func (j *pendingRefreshJob) stopLocked() {
	if j.cancel == nil {
		return
	}

	j.cancel()
	<-j.done
	j.cancel = nil
	j.done = nil
}

func (j *pendingRefreshJob) run(ctx context.Context, done chan<- struct{}, interval time.Duration, onResult func([]models.PendingRecords, error)) {
	defer close(done)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			pending, err := j.dashboard.Pending(ctx)
			if ctx.Err() != nil {
				return
			}
			if onResult != nil {
				onResult(pending, err)
			}
		}
	}
}
