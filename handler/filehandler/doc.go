// Package filehandler provides the sink behind FileLogger: it formats
// entries into the stable text line format and writes them to an output
// stream.
//
// A FileHandler is created either over an already open stream
// (NewStreamHandler, used for os.Stdout and os.Stderr, which are never
// closed by the handler) or over a path (NewFileHandler). Paths are opened
// in one of three modes:
//
//   - ModeAppend keeps existing content and appends.
//   - ModeTruncate discards existing content.
//   - ModeRotate appends and rotates by size and age through lumberjack,
//     keeping MaxBackups old files and optionally compressing them.
//
// Writes are synchronous and unbuffered: when WriteLogMsg or FinishLogMsg
// returns, the line has been handed to the operating system.
package filehandler
