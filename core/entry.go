package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Entry represents one log event. It is built on the calling goroutine
// after filtering and handed to sinks by pointer; sinks must not modify it.
type Entry struct {
	Time       time.Time
	Level      Level
	Message    string
	Caller     CallerInfo
	ThreadID   uint64
	Condition  bool
	LoggerName string
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// Header returns a copy of the entry without its message. It is what a
// sink sees in BeginLogMsg before the message parts arrive.
func (e *Entry) Header() Entry {
	h := *e
	h.Message = ""
	return h
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// CallerFromPC resolves a program counter, as recorded by log/slog, into
// caller information.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
