package handler

import (
	"github.com/philipp01105/sharedlog/core"
)

// Handler is the sink capability every logger writes through.
// WriteLogMsg receives entries that already passed filtering; a Handler
// does not need to look at thresholds. The entry must not be modified
// or used after the call unless the Handler copies it.
type Handler interface {
	// WriteLogMsg emits one entry
	WriteLogMsg(entry *core.Entry) error
}

// PartHandler is an optional interface for sinks that want to receive a
// message in pieces. A logger that finds it on its sink drives
// BeginLogMsg, zero or more LogMsgPart calls and FinishLogMsg for calls
// with several arguments, so the message is never concatenated in
// memory. FinishLogMsg is called whenever BeginLogMsg succeeded, even if
// a part failed.
type PartHandler interface {
	// BeginLogMsg starts a message. The entry carries everything but
	// the message text.
	BeginLogMsg(header *core.Entry) error
	// LogMsgPart appends one fragment of the message
	LogMsgPart(part string) error
	// FinishLogMsg completes the message
	FinishLogMsg() error
}

// Syncer is implemented by handlers that buffer output. Loggers sync
// their handler before running the fatal handler so the fatal entry is
// visible before the process terminates.
type Syncer interface {
	Sync() error
}

// StatsProvider is implemented by handlers that keep Stats.
type StatsProvider interface {
	Stats() Snapshot
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(entry *core.Entry) error

// WriteLogMsg calls f(entry).
func (f HandlerFunc) WriteLogMsg(entry *core.Entry) error {
	return f(entry)
}

// WriteParts drives the three phases of p for a complete entry: the
// header, the whole message as a single part, and the finish. It is the
// default WriteLogMsg for handlers built around PartHandler.
func WriteParts(p PartHandler, entry *core.Entry) error {
	header := entry.Header()
	if err := p.BeginLogMsg(&header); err != nil {
		return err
	}
	err := p.LogMsgPart(entry.Message)
	if finishErr := p.FinishLogMsg(); err == nil {
		err = finishErr
	}
	return err
}

// partsAdapter gives a PartHandler the WriteLogMsg it lacks.
type partsAdapter struct {
	PartHandler
}

func (a partsAdapter) WriteLogMsg(entry *core.Entry) error {
	return WriteParts(a.PartHandler, entry)
}

// FromParts returns a Handler whose WriteLogMsg is WriteParts(p, entry).
// The result still implements PartHandler.
func FromParts(p PartHandler) Handler {
	if h, ok := p.(Handler); ok {
		return h
	}
	return partsAdapter{p}
}

// Discard is a Handler that drops every entry.
var Discard Handler = discard{}

type discard struct{}

func (discard) WriteLogMsg(*core.Entry) error { return nil }
