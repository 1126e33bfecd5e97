package service

import (
	"errors"
	"fmt"
)

// Fetch failure kinds. A *FetchError always carries one of these as Kind.
var (
	ErrTransport     = errors.New("transport error")
	ErrNotFound      = errors.New("not found")
	ErrEmptyResponse = errors.New("empty response")
	ErrMalformedJSON = errors.New("malformed json")
	ErrMissingField  = errors.New("missing field")
)

// FetchError describes why a request to the remote service failed.
type FetchError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// URL is the requested endpoint.
	URL string
	// Field names the absent field for ErrMissingField.
	Field string
	// Err is the underlying cause, if any.
	Err error
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.URL != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.URL)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
