// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/records-dashboard/internal/mock"
	"github.com/MKhiriev/records-dashboard/models"
)

type refreshResult struct {
	pending []models.PendingRecords
	err     error
}

func TestPendingRefreshJob_DeliversResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)
	want := []models.PendingRecords{{Source: testSources[0], Count: 3}}
	dashboard.EXPECT().Pending(gomock.Any()).Return(want, nil).MinTimes(2)

	results := make(chan refreshResult, 16)
	job := NewPendingRefreshJob(dashboard)
	job.Start(context.Background(), 5*time.Millisecond, func(p []models.PendingRecords, err error) {
		select {
		case results <- refreshResult{pending: p, err: err}:
		default:
		}
	})

	for range 2 {
		select {
		case got := <-results:
			require.NoError(t, got.err)
			assert.Equal(t, want, got.pending)
		case <-time.After(2 * time.Second):
			t.Fatal("refresh job did not deliver a result")
		}
	}

	job.Stop()
}

func TestPendingRefreshJob_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockDashboardService(ctrl)
	dashboard.EXPECT().Pending(gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewPendingRefreshJob(dashboard)
	job.Start(ctx, time.Millisecond, nil)

	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestPendingRefreshJob_StopIdle(t *testing.T) {
	job := NewPendingRefreshJob(nil)
	job.Stop()
	job.Stop()
}

// countingDashboard counts Pending calls; it is safe for concurrent use.
type countingDashboard struct {
	calls atomic.Int64
}

func (d *countingDashboard) Sources() []models.RecordSource { return nil }

func (d *countingDashboard) Pending(context.Context) ([]models.PendingRecords, error) {
	d.calls.Add(1)
	return nil, nil
}

func TestPendingRefreshJob_ConcurrentStart(t *testing.T) {
	dashboard := &countingDashboard{}
	job := NewPendingRefreshJob(dashboard)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job.Start(context.Background(), time.Millisecond, nil)
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return dashboard.calls.Load() > 0 }, 2*time.Second, time.Millisecond)

	job.Stop()
	stopped := dashboard.calls.Load()

	// a leaked ticker goroutine would keep counting
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, dashboard.calls.Load())
}

func TestPendingRefreshJob_ConcurrentStartStop(t *testing.T) {
	dashboard := &countingDashboard{}
	job := NewPendingRefreshJob(dashboard)

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				job.Start(context.Background(), time.Millisecond, nil)
				return
			}
			job.Stop()
		}()
	}
	wg.Wait()

	job.Stop()
	stopped := dashboard.calls.Load()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, dashboard.calls.Load())
}
