package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int64
}

func (c *countingRefresher) RefreshCatalogCache(ctx context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestWorkerWarmsOnceAtStartup(t *testing.T) {
	refresher := &countingRefresher{}
	w := NewCatalogRefreshWorker(refresher, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return refresher.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestWorkerRefreshesOnTick(t *testing.T) {
	refresher := &countingRefresher{}
	w := NewCatalogRefreshWorker(refresher, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return refresher.calls.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
