package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/formatter"
	"github.com/philipp01105/sharedlog/handler"
)

// ErrClosed is returned by writes after Close.
var ErrClosed = errors.New("filehandler: handler is closed")

var errNoMessage = errors.New("filehandler: no message in progress")

// Mode selects how a path is opened.
type Mode int

const (
	// ModeAppend opens or creates the file and appends to it
	ModeAppend Mode = iota
	// ModeTruncate opens or creates the file and discards previous content
	ModeTruncate
	// ModeRotate appends and rotates the file by size and age
	ModeRotate
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeTruncate:
		return "truncate"
	case ModeRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// ParseMode converts a case-insensitive mode name to a Mode. The empty
// string selects ModeAppend.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return ModeAppend, nil
	case "truncate":
		return ModeTruncate, nil
	case "rotate":
		return ModeRotate, nil
	}
	return ModeAppend, fmt.Errorf("filehandler: unknown mode %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Mode selects append, truncate or rotate (default: append)
	Mode Mode
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSizeMB is the size in megabytes that triggers rotation (ModeRotate only, default 100)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep (0 = keep all)
	MaxBackups int
	// MaxAgeDays is the number of days to keep rotated files (0 = no age limit)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// FileHandler writes one formatted line per entry to an output stream.
// Each line is assembled in a handler-owned buffer and written with a
// single Write call, so lines from different handlers sharing a file
// descriptor do not interleave within a line.
//
// FileHandler implements handler.Handler and handler.PartHandler. While a
// message is being assembled through BeginLogMsg/LogMsgPart/FinishLogMsg
// the handler stays locked, so the three calls must come from one
// goroutine, which is what a Logger guarantees.
type FileHandler struct {
	name      string
	writer    io.Writer
	closer    io.Closer // nil for streams the handler does not own
	formatter formatter.Formatter
	stats     *handler.Stats

	mu        sync.Mutex // protects everything below and the writer
	buf       bytes.Buffer
	partLevel core.Level
	inMessage bool
	closed    bool
}

// NewStreamHandler creates a handler over an already open stream such as
// os.Stderr. Close does not close the stream.
func NewStreamHandler(w io.Writer, f formatter.Formatter) *FileHandler {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	name := "stream"
	if file, ok := w.(*os.File); ok {
		name = file.Name()
	}
	return newFileHandler(name, w, nil, f)
}

// NewFileHandler opens cfg.Filename according to cfg.Mode and returns a
// handler that owns the file.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filehandler: filename is required")
	}
	applyFileDefaults(&cfg)

	if cfg.Mode == ModeRotate {
		lj := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		return newFileHandler(cfg.Filename, lj, lj, cfg.Formatter), nil
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filehandler: create directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	switch cfg.Mode {
	case ModeTruncate:
		flags |= os.O_TRUNC
	case ModeAppend:
		flags |= os.O_APPEND
	default:
		return nil, fmt.Errorf("filehandler: unknown mode %v", cfg.Mode)
	}

	file, err := os.OpenFile(cfg.Filename, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("filehandler: open: %w", err)
	}
	return newFileHandler(cfg.Filename, file, file, cfg.Formatter), nil
}

func newFileHandler(name string, w io.Writer, c io.Closer, f formatter.Formatter) *FileHandler {
	h := &FileHandler{
		name:      name,
		writer:    w,
		closer:    c,
		formatter: f,
		stats:     handler.NewStats(),
	}
	h.buf.Grow(256)
	return h
}

// Name returns the file name, or "stream" for anonymous writers.
func (h *FileHandler) Name() string {
	return h.name
}

// WriteLogMsg formats and writes a complete entry.
func (h *FileHandler) WriteLogMsg(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	h.buf.Reset()
	h.formatter.FormatEntry(entry, &h.buf)
	return h.flushLine(entry.Level)
}

// BeginLogMsg writes the line header into the buffer and keeps the
// handler locked until FinishLogMsg.
func (h *FileHandler) BeginLogMsg(header *core.Entry) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	h.buf.Reset()
	h.formatter.FormatHeader(header, &h.buf)
	h.partLevel = header.Level
	h.inMessage = true
	return nil
}

// LogMsgPart appends a message fragment.
func (h *FileHandler) LogMsgPart(part string) error {
	if !h.inMessage {
		return errNoMessage
	}
	h.formatter.FormatPart(part, &h.buf)
	return nil
}

// FinishLogMsg terminates the line, writes it and unlocks the handler.
func (h *FileHandler) FinishLogMsg() error {
	if !h.inMessage {
		return errNoMessage
	}
	defer h.mu.Unlock()
	h.inMessage = false
	h.buf.WriteByte('\n')
	return h.flushLine(h.partLevel)
}

// flushLine writes the buffered line. Callers hold mu.
func (h *FileHandler) flushLine(level core.Level) error {
	if _, err := h.writer.Write(h.buf.Bytes()); err != nil {
		h.stats.IncrementFailed()
		return fmt.Errorf("filehandler: write %s: %w", h.name, err)
	}
	h.stats.IncrementWritten(level)
	return nil
}

// Sync commits written data to stable storage when the writer is a file.
func (h *FileHandler) Sync() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.writer.(interface{ Sync() error }); ok && !h.closed {
		return s.Sync()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying file if the handler owns it. Further
// writes fail with ErrClosed.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil // Already closed
	}
	h.closed = true
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}
