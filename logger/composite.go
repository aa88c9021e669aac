package logger

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/sharedlog/core"
)

// MultiLogger fans entries out to named child loggers in insertion
// order. Each child applies its own threshold. A child failure does not
// stop the fan-out; the call returns every child failure combined with
// multierr.
//
// Fatal entries are escalated once, by the MultiLogger, after all
// children have written them. Children never run their own fatal
// handlers during fan-out.
type MultiLogger struct {
	*Logger

	mu       sync.RWMutex // guards names and children against fan-out
	names    []string
	children map[string]*Logger
}

// NewMultiLogger creates an empty MultiLogger
func NewMultiLogger(level core.Level) *MultiLogger {
	m := &MultiLogger{children: make(map[string]*Logger)}
	m.Logger = NewBuilder().WithSink(m).WithLevel(level).Build()
	return m
}

// Insert adds a child under name. Replacing an existing name keeps its
// position in the fan-out order. A nil logger is ignored.
func (m *MultiLogger) Insert(name string, l *Logger) {
	if l == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.children[name]; !exists {
		m.names = append(m.names, name)
	}
	m.children[name] = l
}

// Remove detaches and returns the child registered under name
func (m *MultiLogger) Remove(name string) (*Logger, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.children[name]
	if !ok {
		return nil, false
	}
	delete(m.children, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return l, true
}

// Get returns the child registered under name
func (m *MultiLogger) Get(name string) (*Logger, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.children[name]
	return l, ok
}

// Names returns the child names in fan-out order
func (m *MultiLogger) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.names...)
}

// WriteLogMsg delivers the entry to every child.
func (m *MultiLogger) WriteLogMsg(entry *core.Entry) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var err error
	for _, name := range m.names {
		_, childErr := m.children[name].Deliver(entry)
		err = multierr.Append(err, childErr)
	}
	return err
}

// Sync syncs every child sink that buffers output
func (m *MultiLogger) Sync() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var err error
	for _, name := range m.names {
		err = multierr.Append(err, syncSink(m.children[name]))
	}
	return err
}

// Close closes every child
func (m *MultiLogger) Close() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var err error
	for _, name := range m.names {
		err = multierr.Append(err, m.children[name].Close())
	}
	return err
}

// ArrayLogger fans entries out to an ordered list of child loggers. It
// follows the same filtering, failure and fatal rules as MultiLogger.
type ArrayLogger struct {
	*Logger

	mu       sync.RWMutex // guards children against fan-out
	children []*Logger
}

// NewArrayLogger creates an ArrayLogger with the given children. Nil
// children are skipped.
func NewArrayLogger(level core.Level, children ...*Logger) *ArrayLogger {
	a := &ArrayLogger{}
	for _, c := range children {
		if c != nil {
			a.children = append(a.children, c)
		}
	}
	a.Logger = NewBuilder().WithSink(a).WithLevel(level).Build()
	return a
}

// Append adds a child at the end of the fan-out order. A nil logger is
// ignored.
func (a *ArrayLogger) Append(l *Logger) {
	if l == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.children = append(a.children, l)
}

// Remove detaches the first occurrence of l
func (a *ArrayLogger) Remove(l *Logger) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, c := range a.children {
		if c == l {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return true
		}
	}
	return false
}

// Loggers returns the children in fan-out order
func (a *ArrayLogger) Loggers() []*Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Logger(nil), a.children...)
}

// WriteLogMsg delivers the entry to every child.
func (a *ArrayLogger) WriteLogMsg(entry *core.Entry) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var err error
	for _, child := range a.children {
		_, childErr := child.Deliver(entry)
		err = multierr.Append(err, childErr)
	}
	return err
}

// Sync syncs every child sink that buffers output
func (a *ArrayLogger) Sync() error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var err error
	for _, child := range a.children {
		err = multierr.Append(err, syncSink(child))
	}
	return err
}

// Close closes every child
func (a *ArrayLogger) Close() error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var err error
	for _, child := range a.children {
		err = multierr.Append(err, child.Close())
	}
	return err
}

func syncSink(l *Logger) error {
	if s, ok := l.sink.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
