package logger

import (
	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler"
)

// NullLogger accepts every entry and discards it. It never runs a fatal
// handler, which makes it the way to silence a library completely, fatal
// entries included.
type NullLogger struct {
	*Logger
}

// NewNullLogger creates a NullLogger at AllLevel
func NewNullLogger() *NullLogger {
	l := NewBuilder().
		WithSink(handler.Discard).
		WithLevel(core.AllLevel).
		Build()
	l.discards = true
	return &NullLogger{Logger: l}
}
