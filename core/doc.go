// Package core defines the shared types used across sharedlog.
//
// It provides the Level type and the Enabled predicate that every
// filtering decision goes through, the Entry type that represents a
// single log event, caller capture, goroutine identification and the
// clocks used to timestamp entries.
//
// Entries are never pooled. A sink or fatal handler may keep a pointer
// to the entry it was given, so each log call that passes filtering
// allocates a fresh one. Calls that are filtered out allocate nothing.
//
// CoarseNow is a cheaper alternative to time.Now: a background goroutine
// refreshes a cached timestamp every 500µs and CoarseNow reads it with a
// single atomic load.
package core
