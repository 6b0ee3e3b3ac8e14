package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePurger struct {
	calls  atomic.Int64
	purged int64
	err    error
}

func (f *fakePurger) PurgeExpired(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	return f.purged, f.err
}

func TestSweepRuns(t *testing.T) {
	purger := &fakePurger{purged: 2}
	service := New(purger, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	assert.Eventually(t, func() bool {
		return purger.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
}

func TestSweepKeepsGoingAfterError(t *testing.T) {
	purger := &fakePurger{err: errors.New("query failed")}
	service := New(purger, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	assert.Eventually(t, func() bool {
		return purger.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
}

func TestStopsOnCancel(t *testing.T) {
	purger := &fakePurger{}
	service := New(purger, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	assert.Eventually(t, func() bool {
		return purger.calls.Load() >= 1
	}, time.Second, time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := purger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, purger.calls.Load())
}
