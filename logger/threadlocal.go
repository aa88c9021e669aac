package logger

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler"
)

// threadLogs maps goroutine ids to their local loggers. count mirrors
// the number of stored loggers so the package-level functions can skip
// the goroutine id lookup while nobody uses a local logger.
var threadLogs struct {
	m     sync.Map // uint64 -> *Logger
	count atomic.Int64
}

// goroutineID is a variable to allow counting store lookups in tests
var goroutineID = core.GoroutineID

// defaultForwarder serves goroutines without a stored local logger. It
// is indistinguishable from a fresh forwarder at AllLevel.
var defaultForwarder = NewForwardLogger(core.AllLevel)

// forwardSink relays entries to the shared log.
type forwardSink struct{}

func (forwardSink) WriteLogMsg(entry *core.Entry) error {
	return SharedLog().Forward(entry)
}

var _ handler.Handler = forwardSink{}

// NewForwardLogger creates a logger that applies its own threshold and
// then forwards entries to SharedLog. It never runs a fatal handler of
// its own; the shared log escalates fatal entries.
func NewForwardLogger(level core.Level) *Logger {
	l := NewBuilder().
		WithSink(forwardSink{}).
		WithLevel(level).
		WithFatalHandler(nil).
		Build()
	l.forwards = true
	return l
}

// ThreadLog returns the calling goroutine's local logger, creating a
// forwarder at AllLevel on first access. The package-level functions
// send every entry from this goroutine through it, so lowering or
// raising its threshold only affects this goroutine.
//
// Goroutines have no exit hook: call ReleaseThreadLog before a
// goroutine that used ThreadLog or SetThreadLog returns, or its entry
// stays in the store.
func ThreadLog() *Logger {
	id := goroutineID()
	if v, ok := threadLogs.m.Load(id); ok {
		return v.(*Logger)
	}
	v, loaded := threadLogs.m.LoadOrStore(id, NewForwardLogger(core.AllLevel))
	if !loaded {
		threadLogs.count.Add(1)
	}
	return v.(*Logger)
}

// SetThreadLog replaces the calling goroutine's local logger. Other
// goroutines are unaffected. A nil logger is the same as
// ReleaseThreadLog.
func SetThreadLog(l *Logger) {
	if l == nil {
		ReleaseThreadLog()
		return
	}
	if _, loaded := threadLogs.m.Swap(goroutineID(), l); !loaded {
		threadLogs.count.Add(1)
	}
}

// ReleaseThreadLog drops the calling goroutine's local logger. The next
// package-level call from this goroutine uses a default forwarder again.
func ReleaseThreadLog() {
	if _, loaded := threadLogs.m.LoadAndDelete(goroutineID()); loaded {
		threadLogs.count.Add(-1)
	}
}

// localLog returns the logger the package-level functions use on this
// goroutine without creating one.
func localLog() *Logger {
	if threadLogs.count.Load() == 0 {
		return defaultForwarder
	}
	if v, ok := threadLogs.m.Load(goroutineID()); ok {
		return v.(*Logger)
	}
	return defaultForwarder
}
