package session

// Call describes one outbound API request. The retried flag is call-scoped:
// it is set exactly once, immediately before the replay that follows a
// successful refresh, and never reset on this instance. Concurrent calls
// therefore cannot interfere with each other's retry accounting.
type Call struct {
	Method       string
	Path         string
	Body         any
	RequiresAuth bool

	retried bool
}

// Retried reports whether this call has already been replayed once.
func (c *Call) Retried() bool {
	return c.retried
}
