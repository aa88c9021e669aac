package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry. Levels are totally
// ordered; AllLevel admits everything and OffLevel admits nothing.
type Level int8

const (
	// AllLevel is the lowest threshold and lets every entry through
	AllLevel Level = iota
	// TraceLevel for detailed tracing information
	TraceLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for conditions that deserve attention
	WarningLevel
	// ErrorLevel for failed operations
	ErrorLevel
	// CriticalLevel for failures that leave the program degraded
	CriticalLevel
	// FatalLevel for unrecoverable failures (runs the fatal handler)
	FatalLevel
	// OffLevel is the highest threshold and lets nothing through
	OffLevel
)

var levelNames = [...]string{
	AllLevel:      "ALL",
	TraceLevel:    "TRACE",
	InfoLevel:     "INFO",
	WarningLevel:  "WARNING",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	FatalLevel:    "FATAL",
	OffLevel:      "OFF",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < AllLevel || l > OffLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a case-insensitive level name to a Level.
// "WARN" is accepted as an alias for WarningLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ALL":
		return AllLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "OFF":
		return OffLevel, nil
	}
	return OffLevel, fmt.Errorf("unknown log level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Enabled is the single filtering predicate used by every log call: an
// entry at level passes a logger with the given threshold under the given
// global threshold only if cond holds and level is at or above both.
// Entries tagged OffLevel never pass.
func Enabled(level, threshold, global Level, cond bool) bool {
	return cond && level != OffLevel && level >= threshold && level >= global
}
