package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no relational row matches an identifier.
	ErrNotFound = errors.New("not found")
	// ErrTransport is returned when the log store, the database or the feed server can't be reached.
	ErrTransport = errors.New("transport failure")
	// ErrMalformedPayload marks a document whose payload can't be located or parsed.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrTruncatedPayload marks a payload cut off by the logging pipeline.
	ErrTruncatedPayload = errors.New("truncated payload")
	// ErrUnsupported is returned when a marketplace doesn't provide a record kind.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrResultCapExceeded is returned when the log store holds more hits than one query may return
	// and the truncation policy forbids partial results.
	ErrResultCapExceeded = errors.New("result cap exceeded")
)

// NotFoundError reports an identifier that no lookup strategy could resolve.
type NotFoundError struct {
	Entity     string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("can't find %s by %q", e.Entity, e.Identifier)
}

// Is makes NotFoundError match ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedError reports a record kind the marketplace doesn't provide.
type UnsupportedError struct {
	Marketplace string
	Kind        string
	Reason      string
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Marketplace, e.Reason)
	}

	return fmt.Sprintf("%s are not supported for %s", e.Kind, e.Marketplace)
}

// Is makes UnsupportedError match ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// CountMismatchWarning tells that the log store reported more hits than were parsed cleanly.
type CountMismatchWarning struct {
	Leg    string
	Total  int
	Parsed int
}

func (w *CountMismatchWarning) Error() string {
	return fmt.Sprintf("%s leg: log store reported %d hits, %d parsed", w.Leg, w.Total, w.Parsed)
}
