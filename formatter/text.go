package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/philipp01105/sharedlog/core"
)

// TextFormatter renders entries as one human-readable line:
//
//	<timestamp> [<LEVEL>] <file>:<line> <function> [g<goroutine>] <name>: <message>
//
// The field order is fixed. "<name>: " only appears for named loggers.
// Entries without caller information render the location as "???:0 ???".
// Line breaks inside the message are escaped, so one entry is always one
// line.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.AllLevel:      " [ALL] ",
	core.TraceLevel:    " [TRACE] ",
	core.InfoLevel:     " [INFO] ",
	core.WarningLevel:  " [WARNING] ",
	core.ErrorLevel:    " [ERROR] ",
	core.CriticalLevel: " [CRITICAL] ",
	core.FatalLevel:    " [FATAL] ",
	core.OffLevel:      " [OFF] ",
}

// FormatHeader writes timestamp, level, location, goroutine and logger name.
func (f *TextFormatter) FormatHeader(entry *core.Entry, buf *bytes.Buffer) {
	t := entry.Time
	if f.UTC {
		t = t.UTC()
	}
	// AppendFormat into the spare capacity avoids a string allocation
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level >= 0 && int(entry.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if entry.Caller.Defined {
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteByte(' ')
		buf.WriteString(entry.Caller.Function)
	} else {
		buf.WriteString("???:0 ???")
	}

	buf.WriteString(" [g")
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), entry.ThreadID, 10))
	buf.WriteString("] ")

	if entry.LoggerName != "" {
		buf.WriteString(entry.LoggerName)
		buf.WriteString(": ")
	}
}

// FormatEntry writes the header, the message and a newline.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.FormatHeader(entry, buf)
	f.FormatPart(entry.Message, buf)
	buf.WriteByte('\n')
}

// FormatPart writes message text with line breaks escaped as \n and \r,
// so every entry stays on one line.
func (f *TextFormatter) FormatPart(part string, buf *bytes.Buffer) {
	if !strings.ContainsAny(part, "\r\n") {
		buf.WriteString(part)
		return
	}
	for i := 0; i < len(part); i++ {
		switch c := part[i]; c {
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteByte(c)
		}
	}
}
