package logger

import (
	"github.com/philipp01105/sharedlog/core"
)

// Log logs a message at an explicit level. The message is built as by
// fmt.Sprint, and only if the entry passes filtering.
func (l *Logger) Log(level core.Level, args ...any) error {
	return l.logv(level, true, args)
}

// Logf logs a formatted message at an explicit level
func (l *Logger) Logf(level core.Level, format string, args ...any) error {
	return l.logf(level, true, format, args)
}

// LogIf logs a message at an explicit level when cond is true
func (l *Logger) LogIf(level core.Level, cond bool, args ...any) error {
	return l.logv(level, cond, args)
}

// LogfIf logs a formatted message at an explicit level when cond is true
func (l *Logger) LogfIf(level core.Level, cond bool, format string, args ...any) error {
	return l.logf(level, cond, format, args)
}

// Trace logs tracing detail
func (l *Logger) Trace(args ...any) error {
	return l.logv(core.TraceLevel, true, args)
}

// Tracef logs a formatted trace message
func (l *Logger) Tracef(format string, args ...any) error {
	return l.logf(core.TraceLevel, true, format, args)
}

// TraceIf logs a trace message when cond is true
func (l *Logger) TraceIf(cond bool, args ...any) error {
	return l.logv(core.TraceLevel, cond, args)
}

// TracefIf logs a formatted trace message when cond is true
func (l *Logger) TracefIf(cond bool, format string, args ...any) error {
	return l.logf(core.TraceLevel, cond, format, args)
}

// Info logs routine information
func (l *Logger) Info(args ...any) error {
	return l.logv(core.InfoLevel, true, args)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(core.InfoLevel, true, format, args)
}

// InfoIf logs a info message when cond is true
func (l *Logger) InfoIf(cond bool, args ...any) error {
	return l.logv(core.InfoLevel, cond, args)
}

// InfofIf logs a formatted info message when cond is true
func (l *Logger) InfofIf(cond bool, format string, args ...any) error {
	return l.logf(core.InfoLevel, cond, format, args)
}

// Warning logs a condition that deserves attention
func (l *Logger) Warning(args ...any) error {
	return l.logv(core.WarningLevel, true, args)
}

// Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...any) error {
	return l.logf(core.WarningLevel, true, format, args)
}

// WarningIf logs a warning message when cond is true
func (l *Logger) WarningIf(cond bool, args ...any) error {
	return l.logv(core.WarningLevel, cond, args)
}

// WarningfIf logs a formatted warning message when cond is true
func (l *Logger) WarningfIf(cond bool, format string, args ...any) error {
	return l.logf(core.WarningLevel, cond, format, args)
}

// Error logs a failed operation
func (l *Logger) Error(args ...any) error {
	return l.logv(core.ErrorLevel, true, args)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(core.ErrorLevel, true, format, args)
}

// ErrorIf logs a error message when cond is true
func (l *Logger) ErrorIf(cond bool, args ...any) error {
	return l.logv(core.ErrorLevel, cond, args)
}

// ErrorfIf logs a formatted error message when cond is true
func (l *Logger) ErrorfIf(cond bool, format string, args ...any) error {
	return l.logf(core.ErrorLevel, cond, format, args)
}

// Critical logs a failure that leaves the program degraded
func (l *Logger) Critical(args ...any) error {
	return l.logv(core.CriticalLevel, true, args)
}

// Criticalf logs a formatted critical message
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.logf(core.CriticalLevel, true, format, args)
}

// CriticalIf logs a critical message when cond is true
func (l *Logger) CriticalIf(cond bool, args ...any) error {
	return l.logv(core.CriticalLevel, cond, args)
}

// CriticalfIf logs a formatted critical message when cond is true
func (l *Logger) CriticalfIf(cond bool, format string, args ...any) error {
	return l.logf(core.CriticalLevel, cond, format, args)
}

// Fatal logs an unrecoverable failure and then runs the fatal handler, which by
// default terminates the process.
func (l *Logger) Fatal(args ...any) error {
	return l.logv(core.FatalLevel, true, args)
}

// Fatalf logs a formatted fatal message
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.logf(core.FatalLevel, true, format, args)
}

// FatalIf logs a fatal message when cond is true
func (l *Logger) FatalIf(cond bool, args ...any) error {
	return l.logv(core.FatalLevel, cond, args)
}

// FatalfIf logs a formatted fatal message when cond is true
func (l *Logger) FatalfIf(cond bool, format string, args ...any) error {
	return l.logf(core.FatalLevel, cond, format, args)
}
