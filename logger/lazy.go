package logger

// Lazy defers building part of a message until the entry is known to be
// written. Pass it as an argument to any log call:
//
//	log.Trace("state: ", logger.Lazy(func() string { return dump(state) }))
//
// If the call is filtered out the function is never called.
type Lazy func() string

// String calls the function.
func (f Lazy) String() string {
	return f()
}
