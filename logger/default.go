package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/philipp01105/sharedlog/core"
)

var (
	globalLevel atomic.Int32 // zero value is AllLevel
	sharedLog   atomic.Pointer[Logger]
	clock       atomic.Pointer[core.Clock]

	// defaultSharedLog is what SharedLog returns until SetSharedLog is
	// called with a non-nil logger.
	defaultSharedLog = NewFileLogger(os.Stderr, core.InfoLevel).Logger
)

// GlobalLogLevel returns the process-wide threshold every log call is
// checked against.
func GlobalLogLevel() core.Level {
	return core.Level(globalLevel.Load())
}

// SetGlobalLogLevel sets the process-wide threshold
func SetGlobalLogLevel(level core.Level) {
	globalLevel.Store(int32(level))
}

// SharedLog returns the process default logger. Unless replaced it is a
// FileLogger on os.Stderr at InfoLevel.
func SharedLog() *Logger {
	if l := sharedLog.Load(); l != nil {
		return l
	}
	return defaultSharedLog
}

// SetSharedLog replaces the process default logger. Concurrent log calls
// see either the old or the new logger. A nil logger restores the
// default stderr logger.
func SetSharedLog(l *Logger) {
	sharedLog.Store(l)
}

// SetClock sets the clock used by the package-level functions and by
// loggers built without WithClock. A nil clock restores time.Now.
func SetClock(c core.Clock) {
	if c == nil {
		clock.Store(nil)
		return
	}
	clock.Store(&c)
}

// Clock returns the clock set with SetClock, or core.SystemClock.
func Clock() core.Clock {
	return processClock()
}

func processClock() core.Clock {
	if c := clock.Load(); c != nil {
		return *c
	}
	return core.SystemClock
}

// dispatch is the internal function behind the plain and conditional
// package-level functions. Filtering runs in order condition, goroutine
// logger threshold, global threshold and, when the goroutine logger is a
// forwarder, the shared log threshold, so nothing is built for entries
// that would be dropped.
func dispatch(level core.Level, cond bool, args []any) error {
	local, shared, name, ok := route(level, cond)
	if !ok {
		return nil
	}
	entry := newEntry(level, cond, name, processClock(), callerDepth)
	entry.Message = fmt.Sprint(args...)
	return deliver(local, shared, entry)
}

// dispatchf is the internal function behind the formatted package-level
// functions.
func dispatchf(level core.Level, cond bool, format string, args []any) error {
	local, shared, name, ok := route(level, cond)
	if !ok {
		return nil
	}
	entry := newEntry(level, cond, name, processClock(), callerDepth)
	entry.Message = fmt.Sprintf(format, args...)
	return deliver(local, shared, entry)
}

// route picks the goroutine logger and, for forwarders, the shared log
// the entry will reach, and applies their thresholds. The global
// threshold is checked before the goroutine logger is looked up. The
// shared log is loaded once so a concurrent SetSharedLog cannot split one
// call between two loggers.
func route(level core.Level, cond bool) (local, shared *Logger, name string, ok bool) {
	if !cond || level == core.OffLevel || level < GlobalLogLevel() {
		return nil, nil, "", false
	}
	local = localLog()
	if !core.Enabled(level, local.LogLevel(), GlobalLogLevel(), cond) {
		return nil, nil, "", false
	}
	if !local.forwards {
		return local, nil, local.name, true
	}
	shared = SharedLog()
	if !shared.Enabled(level) {
		return nil, nil, "", false
	}
	return local, shared, shared.name, true
}

// deliver hands an entry to the goroutine logger. For forwarders this is
// the relay the forwarder's sink would perform, against the shared log
// pinned by route.
func deliver(local, shared *Logger, entry *core.Entry) error {
	if shared != nil {
		return shared.Forward(entry)
	}
	return local.Forward(entry)
}
