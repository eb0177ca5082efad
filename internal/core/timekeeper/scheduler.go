package timekeeper

import (
	"sync"
	"time"
)

// Scheduler invokes fn periodically until the returned stop func is called.
// Stop must be idempotent and must not wait for fn, since TimeKeeper calls it
// from inside fn when a countdown completes.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (stop func())
}

// SystemScheduler drives callbacks from a time.Ticker goroutine.
type SystemScheduler struct{}

// Every starts a ticker goroutine for fn.
func (SystemScheduler) Every(interval time.Duration, fn func()) func() {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
