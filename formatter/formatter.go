package formatter

import (
	"bytes"

	"github.com/philipp01105/sharedlog/core"
)

// Formatter renders entries into text. Rendering is split so that a sink
// can write the header before the message has been assembled and stream
// message parts after it.
type Formatter interface {
	// FormatHeader writes everything that precedes the message.
	FormatHeader(entry *core.Entry, buf *bytes.Buffer)
	// FormatEntry writes the complete line for the entry, including
	// the trailing newline.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
	// FormatPart writes one fragment of a message streamed after
	// FormatHeader.
	FormatPart(part string, buf *bytes.Buffer)
}

// DefaultTimestampFormat is a millisecond precision RFC 3339 layout.
const DefaultTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// UTC converts timestamps to UTC before formatting
	UTC bool
}
