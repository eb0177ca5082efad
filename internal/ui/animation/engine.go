package animation

import (
	"context"
	"sync"
	"time"

	"pomofade/internal/core/palette"
)

// Config contains flash timing values.
type Config struct {
	Cycles      int
	OnDuration  time.Duration
	OffDuration time.Duration
}

// DefaultConfig returns the alarm flash used when a countdown completes.
func DefaultConfig() Config {
	return Config{
		Cycles:      3,
		OnDuration:  350 * time.Millisecond,
		OffDuration: 250 * time.Millisecond,
	}
}

// FlashSpec defines the colors of a single flash sequence.
// The sequence ends on Off; repainting the resting color is up to the caller.
type FlashSpec struct {
	On  palette.RGB
	Off palette.RGB
}

// Engine paints background flashes, one sequence at a time.
type Engine struct {
	mu     sync.Mutex
	config Config
	paint  func(palette.RGB)
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new flash engine.
func New(config Config, paint func(palette.RGB)) *Engine {
	return &Engine{
		config: config,
		paint:  paint,
	}
}

// Flash starts a flash sequence, replacing any active one.
// The returned channel closes when the sequence ends or is cancelled.
func (engine *Engine) Flash(ctx context.Context, spec FlashSpec) <-chan struct{} {
	return engine.start(ctx, func(runCtx context.Context) {
		for cycle := 0; cycle < engine.config.Cycles; cycle++ {
			engine.paint(spec.On)
			if !sleepWithContext(runCtx, engine.config.OnDuration) {
				return
			}
			engine.paint(spec.Off)
			if !sleepWithContext(runCtx, engine.config.OffDuration) {
				return
			}
		}
	})
}

// Stop terminates any active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) <-chan struct{} {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	previous := engine.done
	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		if previous != nil {
			<-previous
		}
		run(runCtx)
	}()
	return done
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
