package api

import (
	"errors"
	"fmt"
)

// NetworkError indicates that the request never produced an HTTP response:
// the connection failed, the host could not be resolved, TLS negotiation
// broke, or the context was cancelled mid-flight. It is never used for an
// HTTP error status.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v (likely causes: server down, CORS policy, DNS failure, TLS misconfiguration)", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Fields carries the backend-supplied
// payload unmodified when the body was JSON; Message is pulled from the
// conventional "message"/"error"/"detail" keys, falling back to the HTTP
// status text for non-JSON bodies.
type HTTPError struct {
	StatusCode int
	Message    string
	Fields     map[string]any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Field returns a named value from the backend error payload.
func (e *HTTPError) Field(name string) (any, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// ParseError is a 2xx response whose body could not be decoded as the
// expected JSON shape.
type ParseError struct {
	ContentType string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable response (content type %q): %v", e.ContentType, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownError wraps failures that fit none of the other categories, such
// as a response body that could not be read.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string { return fmt.Sprintf("unexpected client failure: %v", e.Err) }

func (e *UnknownError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// AsHTTPError unwraps err into an HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	he, ok := AsHTTPError(err)
	return ok && he.StatusCode == 404
}
