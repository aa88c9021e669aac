package logger

import (
	"github.com/philipp01105/sharedlog/core"
)

// Package-level functions. They filter against the global threshold and
// the calling goroutine's local logger, then hand the entry to that
// local logger, which by default forwards it to SharedLog.

// Log logs a message at an explicit level
func Log(level core.Level, args ...any) error {
	return dispatch(level, true, args)
}

// Logf logs a formatted message at an explicit level
func Logf(level core.Level, format string, args ...any) error {
	return dispatchf(level, true, format, args)
}

// LogIf logs a message at an explicit level when cond is true
func LogIf(level core.Level, cond bool, args ...any) error {
	return dispatch(level, cond, args)
}

// LogfIf logs a formatted message at an explicit level when cond is true
func LogfIf(level core.Level, cond bool, format string, args ...any) error {
	return dispatchf(level, cond, format, args)
}

// Trace logs tracing detail using the shared log
func Trace(args ...any) error {
	return dispatch(core.TraceLevel, true, args)
}

// Tracef logs a formatted trace message using the shared log
func Tracef(format string, args ...any) error {
	return dispatchf(core.TraceLevel, true, format, args)
}

// TraceIf logs a trace message using the shared log when cond is true
func TraceIf(cond bool, args ...any) error {
	return dispatch(core.TraceLevel, cond, args)
}

// TracefIf logs a formatted trace message using the shared log when cond is true
func TracefIf(cond bool, format string, args ...any) error {
	return dispatchf(core.TraceLevel, cond, format, args)
}

// Info logs routine information using the shared log
func Info(args ...any) error {
	return dispatch(core.InfoLevel, true, args)
}

// Infof logs a formatted info message using the shared log
func Infof(format string, args ...any) error {
	return dispatchf(core.InfoLevel, true, format, args)
}

// InfoIf logs a info message using the shared log when cond is true
func InfoIf(cond bool, args ...any) error {
	return dispatch(core.InfoLevel, cond, args)
}

// InfofIf logs a formatted info message using the shared log when cond is true
func InfofIf(cond bool, format string, args ...any) error {
	return dispatchf(core.InfoLevel, cond, format, args)
}

// Warning logs a condition that deserves attention using the shared log
func Warning(args ...any) error {
	return dispatch(core.WarningLevel, true, args)
}

// Warningf logs a formatted warning message using the shared log
func Warningf(format string, args ...any) error {
	return dispatchf(core.WarningLevel, true, format, args)
}

// WarningIf logs a warning message using the shared log when cond is true
func WarningIf(cond bool, args ...any) error {
	return dispatch(core.WarningLevel, cond, args)
}

// WarningfIf logs a formatted warning message using the shared log when cond is true
func WarningfIf(cond bool, format string, args ...any) error {
	return dispatchf(core.WarningLevel, cond, format, args)
}

// Error logs a failed operation using the shared log
func Error(args ...any) error {
	return dispatch(core.ErrorLevel, true, args)
}

// Errorf logs a formatted error message using the shared log
func Errorf(format string, args ...any) error {
	return dispatchf(core.ErrorLevel, true, format, args)
}

// ErrorIf logs a error message using the shared log when cond is true
func ErrorIf(cond bool, args ...any) error {
	return dispatch(core.ErrorLevel, cond, args)
}

// ErrorfIf logs a formatted error message using the shared log when cond is true
func ErrorfIf(cond bool, format string, args ...any) error {
	return dispatchf(core.ErrorLevel, cond, format, args)
}

// Critical logs a failure that leaves the program degraded using the shared log
func Critical(args ...any) error {
	return dispatch(core.CriticalLevel, true, args)
}

// Criticalf logs a formatted critical message using the shared log
func Criticalf(format string, args ...any) error {
	return dispatchf(core.CriticalLevel, true, format, args)
}

// CriticalIf logs a critical message using the shared log when cond is true
func CriticalIf(cond bool, args ...any) error {
	return dispatch(core.CriticalLevel, cond, args)
}

// CriticalfIf logs a formatted critical message using the shared log when cond is true
func CriticalfIf(cond bool, format string, args ...any) error {
	return dispatchf(core.CriticalLevel, cond, format, args)
}

// Fatal logs an unrecoverable failure through the shared log, whose fatal handler
// terminates the process by default.
func Fatal(args ...any) error {
	return dispatch(core.FatalLevel, true, args)
}

// Fatalf logs a formatted fatal message using the shared log
func Fatalf(format string, args ...any) error {
	return dispatchf(core.FatalLevel, true, format, args)
}

// FatalIf logs a fatal message using the shared log when cond is true
func FatalIf(cond bool, args ...any) error {
	return dispatch(core.FatalLevel, cond, args)
}

// FatalfIf logs a formatted fatal message using the shared log when cond is true
func FatalfIf(cond bool, format string, args ...any) error {
	return dispatchf(core.FatalLevel, cond, format, args)
}
