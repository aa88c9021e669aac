package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler/filehandler"
	"github.com/philipp01105/sharedlog/logger"
	"github.com/philipp01105/sharedlog/metrics"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBuild_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := Build(SinkConfig{
		Type:            TypeFile,
		Path:            path,
		Level:           core.InfoLevel,
		TimestampFormat: "2006",
	})
	require.NoError(t, err)

	require.NoError(t, l.Trace("hidden"))
	require.NoError(t, l.Infof("%s=%d", "count", 5))
	require.NoError(t, l.Close())

	out := readFile(t, path)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] build_test.go:")
	assert.Contains(t, out, "count=5\n")
}

func TestBuild_FileModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0o644))

	l, err := Build(SinkConfig{Type: TypeFile, Path: path, Mode: filehandler.ModeAppend})
	require.NoError(t, err)
	require.NoError(t, l.Info("appended"))
	require.NoError(t, l.Close())
	assert.Contains(t, readFile(t, path), "old line\n")

	l, err = Build(SinkConfig{Type: TypeFile, Path: path, Mode: filehandler.ModeTruncate})
	require.NoError(t, err)
	require.NoError(t, l.Info("fresh"))
	require.NoError(t, l.Close())
	out := readFile(t, path)
	assert.NotContains(t, out, "old line")
	assert.Contains(t, out, "fresh")

	l, err = Build(SinkConfig{Type: TypeFile, Path: path, Mode: filehandler.ModeRotate, MaxSizeMB: 1})
	require.NoError(t, err)
	require.NoError(t, l.Info("rotating"))
	require.NoError(t, l.Close())
	assert.Contains(t, readFile(t, path), "rotating")
}

func TestBuild_Multi(t *testing.T) {
	dir := t.TempDir()
	all := filepath.Join(dir, "all.log")
	errs := filepath.Join(dir, "errors.log")

	l, err := Build(SinkConfig{
		Type: TypeMulti,
		Children: []SinkConfig{
			{Name: "all", Type: TypeFile, Path: all},
			{Name: "errors", Type: TypeFile, Path: errs, Level: core.ErrorLevel},
			{Type: TypeNull},
		},
	})
	require.NoError(t, err)

	require.NoError(t, l.Warning("careful"))
	require.NoError(t, l.Error("broken"))
	require.NoError(t, l.Close())

	assert.Contains(t, readFile(t, all), "careful")
	assert.Contains(t, readFile(t, all), "broken")
	assert.NotContains(t, readFile(t, errs), "careful")
	assert.Contains(t, readFile(t, errs), "broken")
}

func TestBuild_Array(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	l, err := Build(SinkConfig{
		Type:  TypeArray,
		Level: core.WarningLevel,
		Children: []SinkConfig{
			{Type: TypeFile, Path: first},
			{Type: TypeFile, Path: second},
		},
	})
	require.NoError(t, err)

	require.NoError(t, l.Info("below"))
	require.NoError(t, l.Critical("both"))
	require.NoError(t, l.Close())

	for _, p := range []string{first, second} {
		out := readFile(t, p)
		assert.NotContains(t, out, "below")
		assert.Contains(t, out, "[CRITICAL]")
	}
}

func TestBuild_Zap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zap.json")
	l, err := Build(SinkConfig{Type: TypeZap, Path: path, Level: core.InfoLevel})
	require.NoError(t, err)

	require.NoError(t, l.Trace("hidden"))
	require.NoError(t, l.Warning("hello zap"))
	require.NoError(t, l.Close())

	out := readFile(t, path)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"msg":"hello zap"`)
	assert.Contains(t, out, `"goroutine":`)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		sc   SinkConfig
	}{
		{"unknown type", SinkConfig{Type: "syslog"}},
		{"empty type", SinkConfig{}},
		{"file without path", SinkConfig{Type: TypeFile}},
		{"bad zap encoding", SinkConfig{Type: TypeZap, Encoding: "xml"}},
		{"bad child", SinkConfig{Type: TypeArray, Children: []SinkConfig{{Type: "nope"}}}},
		{"duplicate child", SinkConfig{Type: TypeMulti, Children: []SinkConfig{
			{Name: "a", Type: TypeNull},
			{Name: "a", Type: TypeNull},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.sc)
			assert.Error(t, err)
		})
	}
}

func TestBuild_WithCollector(t *testing.T) {
	dir := t.TempDir()
	c := metrics.NewCollector("test")

	l, err := Build(SinkConfig{
		Type: TypeMulti,
		Children: []SinkConfig{
			{Name: "a", Type: TypeFile, Path: filepath.Join(dir, "a.log")},
			{Name: "b", Type: TypeFile, Path: filepath.Join(dir, "b.log"), Level: core.ErrorLevel},
			{Name: "quiet", Type: TypeNull},
		},
	}, WithCollector(c))
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Info("one"))
	require.NoError(t, l.Error("two"))

	assert.Equal(t, 2, testutil.CollectAndCount(c, "test_sink_write_failures_total"))
	assert.Equal(t, 3, testutil.CollectAndCount(c, "test_sink_entries_written_total"))
}

func TestApply(t *testing.T) {
	t.Cleanup(func() {
		logger.SetSharedLog(nil)
		logger.SetGlobalLogLevel(core.AllLevel)
		logger.SetClock(nil)
	})
	path := filepath.Join(t.TempDir(), "shared.log")
	before := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	logger.SetGlobalLogLevel(core.TraceLevel)
	logger.SetClock(func() time.Time { return before })

	closer, err := Apply(&Config{
		GlobalLevel: core.WarningLevel,
		Shared:      SinkConfig{Type: TypeFile, Path: path},
	})
	require.NoError(t, err)

	assert.Equal(t, core.WarningLevel, logger.GlobalLogLevel())
	assert.NotEqual(t, before, logger.Clock()())
	require.NoError(t, logger.Info("filtered globally"))
	require.NoError(t, logger.Errorf("code=%d", 7))
	require.NoError(t, closer.Close())

	out := readFile(t, path)
	assert.NotContains(t, out, "filtered globally")
	assert.Contains(t, out, "code=7")

	h, ok := logger.SharedLog().Sink().(*filehandler.FileHandler)
	require.True(t, ok)
	assert.Equal(t, os.Stderr.Name(), h.Name(), "closing restores the default shared log")
	assert.Equal(t, core.TraceLevel, logger.GlobalLogLevel())
	assert.Equal(t, before, logger.Clock()())
}

func TestApply_KeepsReplacedSharedLog(t *testing.T) {
	t.Cleanup(func() {
		logger.SetSharedLog(nil)
		logger.SetGlobalLogLevel(core.AllLevel)
		logger.SetClock(nil)
	})

	closer, err := Apply(&Config{
		GlobalLevel: core.ErrorLevel,
		Shared:      SinkConfig{Type: TypeNull},
		CoarseClock: true,
	})
	require.NoError(t, err)

	other := logger.NewNullLogger().Logger
	logger.SetSharedLog(other)
	require.NoError(t, closer.Close())
	assert.Same(t, other, logger.SharedLog())
	assert.Equal(t, core.ErrorLevel, logger.GlobalLogLevel(), "state of a replaced log is left alone")
}

func TestApply_BuildError(t *testing.T) {
	_, err := Apply(&Config{Shared: SinkConfig{Type: TypeFile}})
	assert.Error(t, err)
}
