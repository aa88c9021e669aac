// Package zaphandler lets a sharedlog Logger write into an existing zap
// setup. Entries become zapcore entries with the caller, timestamp and
// logger name carried over and the goroutine id added as the
// "goroutine" field; encoding is whatever the zap core is configured
// with.
package zaphandler
