// Package workers provides the background tickers used by the client.
//
// A worker owns at most one goroutine. Stop is synchronous: once it returns,
// the goroutine has exited and its callback will not run again.
package workers

import (
	"context"
	"time"
)

// Poller calls a function on a fixed interval until stopped.
//
// Example:
//
//	p := workers.NewPollTimer()
//	p.Start(ctx, 5*time.Second, func() { /* enqueue a refresh */ })
//	defer p.Stop()
type Poller interface {
	// Start stops any previous run, then calls onTick every interval until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration, onTick func())
	// Stop is idempotent and blocks until the ticking goroutine has exited.
	Stop()
}
