package driver

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
)

var ErrStopped = errors.New("driver: runner stopped")

// Runner owns a Loop on a single goroutine. Frames and queued requests are
// executed one after another, never concurrently.
type Runner struct {
	// OnFrame is called on the runner goroutine after every frame
	OnFrame func(s Snapshot)

	loop     *Loop
	interval time.Duration
	requests chan func(l *Loop)
	done     chan struct{}
}

func NewRunner(loop *Loop, fps int) *Runner {
	if fps <= 0 {
		fps = 1
	}
	return &Runner{
		loop:     loop,
		interval: time.Second / time.Duration(fps),
		requests: make(chan func(l *Loop)),
		done:     make(chan struct{}),
	}
}

func (r *Runner) Run(ctx context.Context) error {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[driver] Running at %v per frame", r.interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[driver] Stopped after %d frames", r.loop.frames)
			return nil
		case <-ticker.C:
			s := r.loop.Frame()
			if r.OnFrame != nil {
				r.OnFrame(s)
			}
		case req := <-r.requests:
			req(r.loop)
		}
	}
}

// Do runs f on the runner goroutine between two frames and waits for it.
func (r *Runner) Do(ctx context.Context, f func(l *Loop)) error {
	finished := make(chan struct{})
	req := func(l *Loop) {
		defer close(finished)
		f(l)
	}

	select {
	case r.requests <- req:
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	<-finished
	return nil
}

func (r *Runner) Input(ctx context.Context, key string) error {
	return r.Do(ctx, func(l *Loop) { l.Input(key) })
}

func (r *Runner) Snapshot(ctx context.Context) (s Snapshot, err error) {
	err = r.Do(ctx, func(l *Loop) { s = l.Snapshot() })
	return s, err
}
