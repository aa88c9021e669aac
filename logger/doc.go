// Package logger is the public API of sharedlog. Most users only need to
// import this package.
//
// Every entry passes two thresholds before anything is built: the
// threshold of the logger it is sent to and the process-wide global
// threshold. An entry is written when its condition holds, its level
// is not OffLevel, and its level is at least both thresholds. Filtered
// calls do not capture the caller, format the message or evaluate Lazy
// arguments.
//
// The package-level functions (Info, Errorf, WarningIf, ...) go through
// the calling goroutine's local logger, which by default forwards to the
// shared log. The shared log starts as a FileLogger on os.Stderr at
// InfoLevel and is replaced with SetSharedLog:
//
//	logger.SetSharedLog(logger.NewFileLogger(f, logger.TraceLevel).Logger)
//	logger.Infof("listening on %s", addr)
//
// Loggers are built with the Builder or with the constructors of the
// concrete loggers:
//
//	log := logger.NewBuilder().
//	    WithSink(h).
//	    WithLevel(logger.WarningLevel).
//	    WithName("db").
//	    Build()
//
// MultiLogger and ArrayLogger fan one entry out to child loggers, each
// with its own threshold. NullLogger discards everything.
//
// Entries at FatalLevel run the logger's FatalHandler after they are
// written. The default handler exits the process with status 1.
package logger
