package logger

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler/filehandler"
)

func TestSharedLog_Default(t *testing.T) {
	useSharedLog(t, nil)

	l := SharedLog()
	require.NotNil(t, l)
	assert.Same(t, defaultSharedLog, l)
	assert.Equal(t, core.InfoLevel, l.LogLevel())
	assert.IsType(t, &filehandler.FileHandler{}, l.Sink())
}

func TestSharedLog_SetNilRestoresDefault(t *testing.T) {
	l, _ := newRecorded(core.AllLevel)
	useSharedLog(t, l)
	assert.Same(t, l, SharedLog())

	SetSharedLog(nil)
	assert.Same(t, defaultSharedLog, SharedLog())
}

func TestGlobalLogLevel(t *testing.T) {
	useGlobalLevel(t, core.AllLevel)
	assert.Equal(t, core.AllLevel, GlobalLogLevel())

	SetGlobalLogLevel(core.CriticalLevel)
	assert.Equal(t, core.CriticalLevel, GlobalLogLevel())
}

func TestFunctions_FilterGrid(t *testing.T) {
	useSharedLog(t, nil)
	useGlobalLevel(t, core.AllLevel)
	for _, global := range allLevels {
		SetGlobalLogLevel(global)
		for _, threshold := range allLevels {
			l, r := newRecorded(threshold)
			SetSharedLog(l)
			for _, level := range allLevels {
				require.NoError(t, Log(level, "x"))
				require.NoError(t, LogfIf(level, false, "%s", "x"))
			}

			want := 0
			for _, level := range allLevels {
				if level != core.OffLevel && level >= threshold && level >= global {
					want++
				}
			}
			assert.Equal(t, want, r.count(), "threshold=%s global=%s", threshold, global)
		}
	}
}

func TestFunctions_SharedLogOff(t *testing.T) {
	l, r := newRecorded(core.OffLevel)
	useSharedLog(t, l)
	code := captureExit(t)

	for _, level := range allLevels {
		require.NoError(t, Log(level, "x"))
		require.NoError(t, Logf(level, "%d", 1))
	}
	require.NoError(t, Fatal("x"))

	assert.Zero(t, r.count())
	assert.Equal(t, -1, *code)
}

func TestFunctions_GlobalThreshold(t *testing.T) {
	l, r := newRecorded(core.AllLevel)
	useSharedLog(t, l)
	useGlobalLevel(t, core.ErrorLevel)

	require.NoError(t, Warning("dropped"))
	require.NoError(t, Error("kept"))
	require.NoError(t, Critical("kept too"))

	assert.Equal(t, []string{"kept", "kept too"}, r.messages())
}

func TestFunctions_Formatted(t *testing.T) {
	var buf bytes.Buffer
	useSharedLog(t, NewFileLogger(&buf, core.AllLevel).Logger)

	require.NoError(t, Infof("%s=%d", "count", 5))
	require.NoError(t, ErrorfIf(true, "%s=%d", "count", 6))
	require.NoError(t, TracefIf(false, "%s=%d", "count", 7))

	out := buf.String()
	assert.Contains(t, out, "[INFO] default_test.go:")
	assert.Contains(t, out, "] count=5\n")
	assert.Contains(t, out, "[ERROR] ")
	assert.Contains(t, out, "count=6\n")
	assert.NotContains(t, out, "count=7")
}

func TestFunctions_CallerIsCallSite(t *testing.T) {
	l, r := newRecorded(core.AllLevel)
	useSharedLog(t, l)

	_, _, line, _ := runtime.Caller(0)
	require.NoError(t, Info("a"))
	require.NoError(t, Warningf("%s", "b"))
	require.NoError(t, ErrorIf(true, "c"))
	require.NoError(t, CriticalfIf(true, "%s", "d"))

	require.Equal(t, 4, r.count())
	for i, e := range r.entries {
		assert.Equal(t, "default_test.go", e.Caller.ShortFile)
		assert.Equal(t, line+1+i, e.Caller.Line)
		assert.Contains(t, e.Caller.Function, "TestFunctions_CallerIsCallSite")
		assert.Equal(t, core.GoroutineID(), e.ThreadID)
	}
}

func TestFunctions_Lazy(t *testing.T) {
	l, r := newRecorded(core.AllLevel)
	useSharedLog(t, l)
	useGlobalLevel(t, core.ErrorLevel)

	calls := 0
	lazy := Lazy(func() string {
		calls++
		return "dump"
	})

	require.NoError(t, Info(lazy))
	require.NoError(t, Tracef("%v", lazy))
	require.NoError(t, ErrorIf(false, lazy))
	assert.Zero(t, calls)
	assert.Zero(t, r.count())

	require.NoError(t, Error(lazy))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "dump", r.last().Message)
}

func TestFunctions_SinkError(t *testing.T) {
	boom := errors.New("boom")
	useSharedLog(t, NewBuilder().WithSink(&recorder{err: boom}).Build())

	assert.ErrorIs(t, Info("x"), boom)
	assert.ErrorIs(t, Criticalf("%s", "x"), boom)
}

func TestFunctions_FatalEscalatesOnSharedLog(t *testing.T) {
	code := captureExit(t)
	r := &recorder{}
	escalated := 0
	useSharedLog(t, NewBuilder().
		WithSink(r).
		WithFatalHandler(func(*core.Entry) { escalated++ }).
		Build())

	require.NoError(t, Fatal("one"))
	require.NoError(t, Fatalf("%s", "two"))
	require.NoError(t, FatalIf(false, "three"))

	assert.Equal(t, 2, escalated)
	assert.Equal(t, []string{"one", "two"}, r.messages())
	assert.Equal(t, -1, *code)
}

func TestFunctions_FatalOnDefaultHandler(t *testing.T) {
	code := captureExit(t)
	var buf bytes.Buffer
	useSharedLog(t, NewFileLogger(&buf, core.InfoLevel).Logger)

	require.NoError(t, Fatal("bye"))

	assert.Equal(t, 1, *code)
	assert.Contains(t, buf.String(), "[FATAL]")
}

func TestFunctions_NullSharedLogSilencesFatal(t *testing.T) {
	code := captureExit(t)
	useSharedLog(t, NewNullLogger().Logger)

	require.NoError(t, Fatal("x"))
	require.NoError(t, Critical("x"))
	assert.Equal(t, -1, *code)
}

func TestSharedLog_ConcurrentReassignment(t *testing.T) {
	a, ra := newRecorded(core.AllLevel)
	b, rb := newRecorded(core.AllLevel)
	useSharedLog(t, a)

	const workers, calls = 8, 200
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for range calls {
				if err := Info("tick"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	SetSharedLog(b)
	require.NoError(t, g.Wait())

	// Every call reached exactly one of the two loggers
	assert.Equal(t, workers*calls, ra.count()+rb.count())

	before := ra.count()
	require.NoError(t, Info("after"))
	assert.Equal(t, before, ra.count())
	assert.Equal(t, "after", rb.last().Message)
}
