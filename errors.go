package moneta

import (
	"errors"
	"fmt"
)

// The error taxonomy of the client, by where the failure is detected:
//
//   - ValidationError: client-detected before any network call.
//   - ErrCredentialMissing: no session token available; every subsystem
//     call short-circuits on it before any I/O.
//   - RemoteError: the service answered non-2xx, optionally with a
//     structured message that is surfaced verbatim.
//   - NetworkError: the request never completed.
//
// Validation failures are recovered locally and rendered inline next to
// the offending field; the other three surface as transient notifications
// and are never fatal to a screen.

// ErrCredentialMissing means no bearer credential is available.
var ErrCredentialMissing = errors.New("credential missing")

// ValidationError is a client-detected bad input, tied to one field.
// Key is a localization key; the client never hardcodes user-facing text.
type ValidationError struct {
	Field string
	Key   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%s)", e.Field, e.Key)
}

// RemoteError is a non-2xx response from the remote service. Message, when
// present, is the service's own structured error text.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote error %d", e.Status)
}

// NetworkError wraps a request that never completed.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteMessage extracts the verbatim remote message from err, if any.
// Screens use it to prefer the service's wording over a generic fallback.
func RemoteMessage(err error) (string, bool) {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message, true
	}
	return "", false
}
