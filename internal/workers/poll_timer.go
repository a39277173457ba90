// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is used when Start receives a non-positive interval.
const DefaultPollInterval = 5 * time.Second

// PollTimer is the [Poller] of a chat session.
type PollTimer struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewPollTimer returns an idle timer.
func NewPollTimer() *PollTimer {
	return &PollTimer{}
}

// Start implements Poller. onTick runs on the timer goroutine and must not
// block for long; Stop waits for it.
func (p *PollTimer) Start(ctx context.Context, interval time.Duration, onTick func()) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	p.Stop()

	p.mu.Lock()
	tickCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.running = true
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-tickCtx.Done():
				return
			case <-t.C:
				// both cases may be ready at once
				if tickCtx.Err() != nil {
					return
				}
				onTick()
			}
		}
	}()
}

// Stop implements Poller. It is a no-op on an idle timer.
func (p *PollTimer) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.running = false
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
