package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// callerDepth is the runtime.Caller depth of user code as seen from
// core.GetCaller, for calls that go through exactly one public method or
// free function.
const callerDepth = 4

// FatalHandler runs after a FatalLevel entry has been written. The
// default terminates the process; a handler that returns lets the log
// call return normally.
type FatalHandler func(entry *core.Entry)

// DefaultFatalHandler terminates the process with exit status 1.
func DefaultFatalHandler(*core.Entry) {
	osExit(1)
}

// Logger filters entries against its own threshold and the global
// threshold and writes the survivors to its sink. Concrete loggers
// (FileLogger, MultiLogger, ArrayLogger, NullLogger) embed *Logger and
// provide the sink.
//
// Every log method returns the sink's error, if any. A nil error means
// the entry was written or filtered out.
type Logger struct {
	sink       handler.Handler
	parts      handler.PartHandler
	level      atomic.Int32
	fatal      atomic.Pointer[FatalHandler]
	name       string
	callerSkip int
	clock      core.Clock
	// forwards marks goroutine-local forwarders, which relay to the
	// shared log instead of writing themselves.
	forwards bool
	// discards marks loggers that never escalate fatal entries.
	discards bool

	mu sync.Mutex // serializes emission through the sink
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       handler.Handler
	parts      handler.PartHandler
	level      core.Level
	fatal      FatalHandler
	name       string
	callerSkip int
	clock      core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.AllLevel, // Default level
		fatal: DefaultFatalHandler,
		sink:  handler.Discard,
	}
}

// WithSink sets the sink
func (b *Builder) WithSink(h handler.Handler) *Builder {
	if h == nil {
		h = handler.Discard
	}
	b.sink = h
	// Cache PartHandler so the hot path avoids the interface assertion
	b.parts, _ = h.(handler.PartHandler)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFatalHandler sets the handler run after fatal entries. A nil
// handler disables fatal escalation.
func (b *Builder) WithFatalHandler(f FatalHandler) *Builder {
	b.fatal = f
	return b
}

// WithName sets the logger name carried by its entries
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithCallerSkip adds frames to skip when capturing the caller, for
// helpers that wrap a Logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithClock sets the clock used to timestamp entries. Without one the
// logger uses the process clock (see SetClock).
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		sink:       b.sink,
		parts:      b.parts,
		name:       b.name,
		callerSkip: b.callerSkip,
		clock:      b.clock,
	}
	l.level.Store(int32(b.level))
	l.SetFatalHandler(b.fatal)
	return l
}

// LogLevel returns the logger's threshold
func (l *Logger) LogLevel() core.Level {
	return core.Level(l.level.Load())
}

// SetLogLevel changes the logger's threshold
func (l *Logger) SetLogLevel(level core.Level) {
	l.level.Store(int32(level))
}

// SetFatalHandler replaces the handler run after fatal entries. A nil
// handler disables fatal escalation.
func (l *Logger) SetFatalHandler(f FatalHandler) {
	if f == nil {
		l.fatal.Store(nil)
		return
	}
	l.fatal.Store(&f)
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Sink returns the handler the logger writes to
func (l *Logger) Sink() handler.Handler {
	return l.sink
}

// Enabled reports whether an entry at level would pass the logger's
// threshold and the global threshold.
func (l *Logger) Enabled(level core.Level) bool {
	return core.Enabled(level, l.LogLevel(), GlobalLogLevel(), true)
}

// Deliver applies the logger's filter to an entry built elsewhere and
// writes it if it passes. It reports whether the entry was written.
// Deliver never runs the fatal handler; composite loggers use it for
// their children.
func (l *Logger) Deliver(entry *core.Entry) (bool, error) {
	if !core.Enabled(entry.Level, l.LogLevel(), GlobalLogLevel(), entry.Condition) {
		return false, nil
	}
	return true, l.write(entry)
}

// Forward is Deliver followed by fatal escalation.
func (l *Logger) Forward(entry *core.Entry) error {
	written, err := l.Deliver(entry)
	if written && entry.Level == core.FatalLevel {
		l.escalate(entry)
	}
	return err
}

// Close closes the sink if it implements io.Closer
func (l *Logger) Close() error {
	if c, ok := l.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// logv is the internal logging method behind every plain and
// conditional method. It must be called directly by the public method so
// the caller depth stays callerDepth.
func (l *Logger) logv(level core.Level, cond bool, args []any) error {
	// Level check optimization - exit early BEFORE any allocations
	if !core.Enabled(level, l.LogLevel(), GlobalLogLevel(), cond) {
		return nil
	}

	entry := newEntry(level, cond, l.name, l.clockFunc(), callerDepth+l.callerSkip)

	// Stream the arguments when the sink takes parts. Fatal entries are
	// always assembled because the fatal handler receives the message.
	if l.parts != nil && len(args) > 1 && level != core.FatalLevel {
		l.mu.Lock()
		err := l.writeParts(entry, args)
		l.mu.Unlock()
		return err
	}

	entry.Message = fmt.Sprint(args...)
	return l.emit(entry)
}

// logf is the internal method behind every formatted method.
func (l *Logger) logf(level core.Level, cond bool, format string, args []any) error {
	if !core.Enabled(level, l.LogLevel(), GlobalLogLevel(), cond) {
		return nil
	}

	entry := newEntry(level, cond, l.name, l.clockFunc(), callerDepth+l.callerSkip)
	entry.Message = fmt.Sprintf(format, args...)
	return l.emit(entry)
}

// emit writes a complete entry and escalates fatal entries.
func (l *Logger) emit(entry *core.Entry) error {
	err := l.write(entry)
	if entry.Level == core.FatalLevel {
		l.escalate(entry)
	}
	return err
}

func (l *Logger) write(entry *core.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.WriteLogMsg(entry)
}

// writeParts drives the three-phase protocol with one part per argument,
// inserting the spaces fmt.Sprint would put between operands. Callers
// hold mu.
func (l *Logger) writeParts(header *core.Entry, args []any) error {
	if err := l.parts.BeginLogMsg(header); err != nil {
		return err
	}

	var err error
	for i, arg := range args {
		if i > 0 && !isString(args[i-1]) && !isString(arg) {
			if err = l.parts.LogMsgPart(" "); err != nil {
				break
			}
		}
		part, ok := arg.(string)
		if !ok {
			part = fmt.Sprint(arg)
		}
		if err = l.parts.LogMsgPart(part); err != nil {
			break
		}
	}

	if finishErr := l.parts.FinishLogMsg(); err == nil {
		err = finishErr
	}
	return err
}

// escalate flushes the sink and runs the fatal handler.
func (l *Logger) escalate(entry *core.Entry) {
	if l.discards {
		return
	}
	f := l.fatal.Load()
	if f == nil {
		return
	}
	if s, ok := l.sink.(handler.Syncer); ok {
		// Best effort; the process is about to go down either way
		_ = s.Sync()
	}
	(*f)(entry)
}

func (l *Logger) clockFunc() core.Clock {
	if l.clock != nil {
		return l.clock
	}
	return processClock()
}

// newEntry builds an entry for a call that passed filtering. skip is the
// core.GetCaller depth of the user's call site.
func newEntry(level core.Level, cond bool, name string, clock core.Clock, skip int) *core.Entry {
	return &core.Entry{
		Time:       clock(),
		Level:      level,
		Caller:     core.GetCaller(skip),
		ThreadID:   core.GoroutineID(),
		Condition:  cond,
		LoggerName: name,
	}
}

// isString reports whether fmt.Sprint treats arg as a string operand.
func isString(arg any) bool {
	return arg != nil && reflect.TypeOf(arg).Kind() == reflect.String
}
