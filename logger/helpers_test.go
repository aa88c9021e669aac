package logger

import (
	"sync"
	"testing"

	"github.com/philipp01105/sharedlog/core"
)

// journal records the order in which recorders receive entries.
type journal struct {
	mu    sync.Mutex
	names []string
}

func (j *journal) add(name string) {
	j.mu.Lock()
	j.names = append(j.names, name)
	j.mu.Unlock()
}

func (j *journal) snapshot() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.names...)
}

// recorder is a Handler that keeps every entry it is given.
type recorder struct {
	name    string
	journal *journal
	err     error

	mu      sync.Mutex
	entries []*core.Entry
	syncs   int
}

func (r *recorder) WriteLogMsg(e *core.Entry) error {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	if r.journal != nil {
		r.journal.add(r.name)
	}
	return r.err
}

func (r *recorder) Sync() error {
	r.mu.Lock()
	r.syncs++
	r.mu.Unlock()
	if r.journal != nil {
		r.journal.add(r.name + ":sync")
	}
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Message
	}
	return out
}

func (r *recorder) last() *core.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

// partRecorder is a Handler that also takes messages in parts.
type partRecorder struct {
	recorder
	parts  []string
	header *core.Entry
}

func (p *partRecorder) BeginLogMsg(header *core.Entry) error {
	p.header = header
	p.parts = nil
	return nil
}

func (p *partRecorder) LogMsgPart(part string) error {
	p.parts = append(p.parts, part)
	return nil
}

func (p *partRecorder) FinishLogMsg() error {
	if p.journal != nil {
		p.journal.add("finish")
	}
	return nil
}

// newRecorded returns a logger at level writing to a fresh recorder.
func newRecorded(level core.Level) (*Logger, *recorder) {
	r := &recorder{}
	return NewBuilder().WithSink(r).WithLevel(level).WithFatalHandler(nil).Build(), r
}

// useSharedLog installs l as the shared log for the duration of the test.
func useSharedLog(t *testing.T, l *Logger) {
	t.Helper()
	old := sharedLog.Load()
	SetSharedLog(l)
	t.Cleanup(func() { sharedLog.Store(old) })
}

// useGlobalLevel sets the global threshold for the duration of the test.
func useGlobalLevel(t *testing.T, level core.Level) {
	t.Helper()
	old := GlobalLogLevel()
	SetGlobalLogLevel(level)
	t.Cleanup(func() { SetGlobalLogLevel(old) })
}

// captureExit replaces osExit and returns the recorded exit code, -1 if
// osExit was not called.
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	orig := osExit
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = orig })
	return &code
}
