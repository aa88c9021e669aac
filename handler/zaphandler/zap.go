package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sharedlog/core"
)

// ZapHandler forwards entries into a zapcore.Core. It writes to the core
// directly instead of going through a zap.Logger, so zap's fatal and
// panic hooks never fire and write errors reach the caller. Sampling
// cores are bypassed for the same reason.
type ZapHandler struct {
	core zapcore.Core
}

// New creates a handler writing to c.
func New(c zapcore.Core) *ZapHandler {
	return &ZapHandler{core: c}
}

// FromLogger creates a handler writing to the core behind l.
func FromLogger(l *zap.Logger) *ZapHandler {
	return New(l.Core())
}

// ZapLevel maps a level onto zap's scale.
func ZapLevel(l core.Level) zapcore.Level {
	switch {
	case l <= core.TraceLevel:
		return zapcore.DebugLevel
	case l == core.InfoLevel:
		return zapcore.InfoLevel
	case l == core.WarningLevel:
		return zapcore.WarnLevel
	case l == core.ErrorLevel:
		return zapcore.ErrorLevel
	case l == core.CriticalLevel:
		return zapcore.DPanicLevel
	default:
		return zapcore.FatalLevel
	}
}

// WriteLogMsg writes the entry if the core is enabled for its level.
func (h *ZapHandler) WriteLogMsg(entry *core.Entry) error {
	ze := zapcore.Entry{
		Level:      ZapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.LoggerName,
		Message:    entry.Message,
		Caller: zapcore.EntryCaller{
			Defined:  entry.Caller.Defined,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		},
	}

	if !h.core.Enabled(ze.Level) {
		return nil
	}
	return h.core.Write(ze, []zapcore.Field{zap.Uint64("goroutine", entry.ThreadID)})
}

// Sync flushes the core.
func (h *ZapHandler) Sync() error {
	return h.core.Sync()
}
