package client

// RuntimeError is a recoverable failure raised during key dispatch. The
// input pump reports it on the status line and through the RuntimeError hook
// and keeps the session alive.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// NewRuntimeError builds a recoverable dispatch error.
func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{Message: message}
}

// RemovedError requests teardown of the session. It propagates past the
// runtime-error boundary so the registry removes the client.
type RemovedError struct {
	Graceful bool
}

func (e *RemovedError) Error() string {
	if e.Graceful {
		return "client removed (graceful)"
	}
	return "client removed"
}
