package filehandler_test

import (
	"os"
	"time"

	"github.com/philipp01105/sharedlog/core"
	"github.com/philipp01105/sharedlog/formatter"
	"github.com/philipp01105/sharedlog/handler/filehandler"
)

func ExampleNewStreamHandler() {
	h := filehandler.NewStreamHandler(os.Stdout, formatter.NewTextFormatter(formatter.Config{
		TimestampFormat: time.DateTime,
		UTC:             true,
	}))
	defer h.Close()

	_ = h.WriteLogMsg(&core.Entry{
		Time:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:      core.WarningLevel,
		Message:    "disk at 85%",
		ThreadID:   7,
		LoggerName: "monitor",
	})
	// Output:
	// 2026-01-02 03:04:05 [WARNING] ???:0 ??? [g7] monitor: disk at 85%
}
