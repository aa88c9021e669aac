package logger

import (
	"io"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/handler/filehandler"
)

// FileLogger writes each entry as one text line to a stream or file.
type FileLogger struct {
	*Logger
	file *filehandler.FileHandler
}

// NewFileLogger creates a FileLogger over an open stream. Closing the
// logger does not close the stream.
func NewFileLogger(w io.Writer, level core.Level) *FileLogger {
	return NewFileLoggerWithHandler(filehandler.NewStreamHandler(w, nil), level)
}

// OpenFileLogger opens cfg.Filename and creates a FileLogger that owns
// the file.
func OpenFileLogger(cfg filehandler.FileConfig, level core.Level) (*FileLogger, error) {
	h, err := filehandler.NewFileHandler(cfg)
	if err != nil {
		return nil, err
	}
	return NewFileLoggerWithHandler(h, level), nil
}

// NewFileLoggerWithHandler creates a FileLogger around a configured
// handler, for callers that need a custom formatter.
func NewFileLoggerWithHandler(h *filehandler.FileHandler, level core.Level) *FileLogger {
	return &FileLogger{
		Logger: NewBuilder().WithSink(h).WithLevel(level).Build(),
		file:   h,
	}
}

// File returns the underlying file handler
func (f *FileLogger) File() *filehandler.FileHandler {
	return f.file
}
