package logger

import (
	"github.com/philipp01105/sharedlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	AllLevel      = core.AllLevel
	TraceLevel    = core.TraceLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	FatalLevel    = core.FatalLevel
	OffLevel      = core.OffLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
