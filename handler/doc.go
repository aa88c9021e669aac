// Package handler defines the sink capability loggers write through.
//
// A sink implements Handler, a single WriteLogMsg method that receives an
// entry that already passed every threshold. Sinks that want to stream a
// message in fragments also implement PartHandler
// (BeginLogMsg / LogMsgPart / FinishLogMsg); loggers detect it when they
// are built and use it for multi-argument calls. WriteParts is the
// default WriteLogMsg body for such sinks and FromParts wraps a sink that
// only implements the granular hooks.
//
// Optional interfaces:
//
//   - Syncer flushes buffered output before a fatal handler runs.
//   - io.Closer is called by Logger.Close.
//   - StatsProvider exposes written and failed counts via Stats.
//
// Built-in sinks live in sub-packages: filehandler writes the text line
// format to a stream or a file, zaphandler forwards into a zapcore.Core.
package handler
