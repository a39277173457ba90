// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter считает вызовы onTick.
type counter struct {
	calls atomic.Int64
}

func (c *counter) tick() { c.calls.Add(1) }

// ── NewPollTimer ─────────────────────────────────────────────────────────────

func TestNewPollTimer_Idle(t *testing.T) {
	p := NewPollTimer()
	require.NotNil(t, p)

	var _ Poller = p
	assert.False(t, isRunning(p))
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestPollTimer_Start_Ticks(t *testing.T) {
	c := &counter{}
	p := NewPollTimer()

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	p.Start(context.Background(), 10*time.Millisecond, c.tick)
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	got := c.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "onTick должен быть вызван несколько раз, вызвано: %d", got)
}

func TestPollTimer_Stop_NoTicksAfterReturn(t *testing.T) {
	c := &counter{}
	p := NewPollTimer()

	p.Start(context.Background(), 5*time.Millisecond, c.tick)
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	callsAfterStop := c.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, c.calls.Load(), "после Stop новых вызовов быть не должно")
	assert.False(t, isRunning(p))
}

// Stop ждёт завершения выполняющегося onTick.
func TestPollTimer_Stop_WaitsForRunningTick(t *testing.T) {
	entered := make(chan struct{})
	var finished atomic.Bool
	p := NewPollTimer()

	var once atomic.Bool
	p.Start(context.Background(), time.Millisecond, func() {
		if !once.CompareAndSwap(false, true) {
			return
		}
		close(entered)
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})

	<-entered
	p.Stop()

	assert.True(t, finished.Load())
}

func TestPollTimer_Stop_BeforeStart_NoPanic(t *testing.T) {
	p := NewPollTimer()

	assert.NotPanics(t, func() { p.Stop() })
}

func TestPollTimer_DoubleStop_NoPanic(t *testing.T) {
	p := NewPollTimer()
	p.Start(context.Background(), 10*time.Millisecond, func() {})
	p.Stop()

	// Повторный Stop не должен паниковать
	assert.NotPanics(t, func() { p.Stop() })
}

func TestPollTimer_Start_DefaultInterval(t *testing.T) {
	c := &counter{}
	p := NewPollTimer()

	// interval <= 0 → дефолт 5s, за 20ms вызовов быть не должно
	p.Start(context.Background(), 0, c.tick)
	assert.True(t, isRunning(p))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int64(0), c.calls.Load())
}

func TestPollTimer_ContextCancelStops(t *testing.T) {
	c := &counter{}
	p := NewPollTimer()
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx, 5*time.Millisecond, c.tick)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)
	callsAfterCancel := c.calls.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, c.calls.Load())
	p.Stop()
}

func TestPollTimer_Restart_StopsPrevious(t *testing.T) {
	first := &counter{}
	second := &counter{}
	p := NewPollTimer()

	p.Start(context.Background(), 5*time.Millisecond, first.tick)
	time.Sleep(20 * time.Millisecond)

	// Перезапуск — предыдущая горутина должна остановиться
	p.Start(context.Background(), 5*time.Millisecond, second.tick)
	firstAfterRestart := first.calls.Load()
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	assert.Equal(t, firstAfterRestart, first.calls.Load())
	assert.Greater(t, second.calls.Load(), int64(0))
}

// isRunning читает состояние таймера под мьютексом.
func isRunning(p *PollTimer) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
