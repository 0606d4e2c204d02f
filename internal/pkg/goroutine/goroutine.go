package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/caredent/caredent/internal/pkg/stacktrace"
	"go.uber.org/atomic"
)

// DefaultMaxGoroutine is the per-CPU slot multiplier applied when NewManager
// gets a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager bounds the number of concurrently running background tasks,
// recovers their panics and collects their errors for Wait.
type Manager struct {
	mu     sync.Mutex
	errs   []error
	wg     sync.WaitGroup
	sema   chan struct{}
	closed atomic.Bool
}

// NewManager builds a Manager allowing at most maxGoroutine concurrent tasks.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go runs f in a goroutine when a slot is free. After Wait has been called,
// or when every slot is busy, f is dropped with a warning instead of queued.
func (g *Manager) Go(parent context.Context, f func(ctx context.Context) error) {
	if g == nil {
		return
	}

	if g.closed.Load() {
		slog.WarnContext(parent, "goroutine manager already closed, task dropped")
		return
	}

	select {
	case g.sema <- struct{}{}:
		g.wg.Go(func() {
			defer func() {
				<-g.sema

				if rvr := recover(); rvr != nil {
					stack := debug.Stack()
					if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
						slog.ErrorContext(parent, "panic in background task", "stack", paths)
					} else {
						slog.ErrorContext(parent, "panic in background task", "stack", string(stack))
					}
				}
			}()

			select {
			case <-parent.Done():
				slog.WarnContext(parent, "background task canceled", "because", parent.Err())
			default:
				if err := f(parent); err != nil {
					g.mu.Lock()
					g.errs = append(g.errs, err)
					g.mu.Unlock()
				}
			}
		})

	default:
		slog.WarnContext(parent, "goroutine limit reached, task dropped")
	}
}

// Wait closes the manager to new tasks, blocks until running tasks finish
// and returns their joined errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.closed.Store(true)
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	return errors.Join(g.errs...)
}
