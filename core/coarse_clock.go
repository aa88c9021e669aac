package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the timestamp stamped onto new entries.
type Clock func() time.Time

// SystemClock is the default Clock.
var SystemClock Clock = time.Now

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// coarseResolution is how often the coarse clock refreshes its cached time.
const coarseResolution = 500 * time.Microsecond

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of
// the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseResolution)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It starts the coarse
// clock on first use, so it can be installed directly as a Clock.
func CoarseNow() time.Time {
	p := coarseNow.Load()
	if p == nil {
		StartCoarseClock()
		p = coarseNow.Load()
	}
	return *p
}
