package main

import (
	"errors"
	"fmt"

	"github.com/learnsphere-dev/learnsphere/shared/apiclient"
	"github.com/learnsphere-dev/learnsphere/shared/cookie"
	"github.com/learnsphere-dev/learnsphere/shared/logger"
)

// errorName is the JS Error.name a rejected promise carries, so page script
// can tell an unreachable backend from a garbled response.
func errorName(err error) string {
	switch {
	case errors.Is(err, apiclient.ErrBackendUnavailable):
		return "BackendUnavailableError"
	case errors.Is(err, apiclient.ErrInvalidJSON):
		return "InvalidJSONError"
	default:
		return "Error"
	}
}

// logMissing reports malformed cookies; a merely absent one is expected.
func logMissing(err error) {
	if !errors.Is(err, cookie.ErrNoCookie) {
		logger.Log.Warn("unreadable cookie", "error", err)
	}
}

// errScript marks an exception thrown by JavaScript while the bridge called
// into it. syscall/js reports those as panics.
var errScript = errors.New("script exception")

// recovered turns a recovered panic value into an error that still wraps the
// original one, so a js.Error can be rethrown unchanged.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", errScript, err)
	}
	return fmt.Errorf("%w: %v", errScript, r)
}
