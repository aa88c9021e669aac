// Package formatter defines how entries are rendered into text lines.
//
// A Formatter renders in two steps: FormatHeader writes everything in
// front of the message and FormatEntry writes the whole line. File sinks
// use the split to write the header in BeginLogMsg and then append
// message parts through FormatPart as they arrive.
//
// TextFormatter escapes line breaks in messages as \n and \r, so a reader
// can split the output on newlines and get one entry per line.
//
// TextFormatter produces the stable line format shared by every
// FileLogger:
//
//	2026-10-19T10:28:00.123Z [INFO] main.go:42 main.run [g1] db: connected
//
// Fields appear in a fixed order: timestamp, level, file:line, function,
// goroutine id, optional logger name, message. The formatter relies on
// Go's Append-style functions (time.AppendFormat, strconv.AppendInt)
// writing into the buffer's spare capacity so formatting does not
// allocate, and it pre-computes the bracketed level strings.
package formatter
