// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/ratelimit"
)

// mockWorker counts how many times Run was called and blocks until the
// context is cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

// runAsync runs ws in a goroutine and returns a channel closed when Run
// returns.
func runAsync(ctx context.Context, ws *Workers) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ws.Run(ctx)
	}()
	return done
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, ws)

	assert.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// returns straight away with nothing to wait for
	ws.Run(ctx)
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers and logger are nil
	ws.Run(context.Background())
}

func TestLimiterCleanup_RemovesIdleLimiters(t *testing.T) {
	store := ratelimit.NewStore(1, 1, time.Nanosecond)
	store.Get("ip:10.0.0.1")
	store.Get("ip:10.0.0.2")

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, NewWorkers(logger.Nop(), NewLimiterCleanup(store, 5*time.Millisecond, logger.Nop())))

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

func TestLimiterCleanup_KeepsActiveLimiters(t *testing.T) {
	store := ratelimit.NewStore(1, 1, time.Hour)
	store.Get("ip:10.0.0.1")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	NewLimiterCleanup(store, 5*time.Millisecond, logger.Nop()).Run(ctx)

	assert.Equal(t, 1, store.Len())
}
