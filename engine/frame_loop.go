package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/arcade/constants"
)

const inboxSize = 64

// FrameLoop calls step once per interval until its context ends.
// Closures posted to the inbox run on the loop goroutine before the next step,
// so simulation state is never touched from two goroutines
type FrameLoop struct {
	interval time.Duration
	step     func() error
	inbox    chan func()
}

// NewFrameLoop creates a loop; a non-positive interval uses the standard frame rate
func NewFrameLoop(interval time.Duration, step func() error) *FrameLoop {
	if interval <= 0 {
		interval = constants.FrameUpdateInterval
	}
	return &FrameLoop{
		interval: interval,
		step:     step,
		inbox:    make(chan func(), inboxSize),
	}
}

// Post queues fn to run on the loop goroutine, blocking while the inbox is full
func (l *FrameLoop) Post(ctx context.Context, fn func()) error {
	select {
	case l.inbox <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives frames until ctx is cancelled (returns nil) or a step fails.
// Game over does not stop the loop; it keeps drawing the frozen state
func (l *FrameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	var frame int64
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.inbox:
			fn()
		case <-ticker.C:
			l.drain()
			frame++
			if err := l.step(); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
	}
}

// drain runs every closure already posted
func (l *FrameLoop) drain() {
	for {
		select {
		case fn := <-l.inbox:
			fn()
		default:
			return
		}
	}
}
