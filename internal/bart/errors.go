package bart

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned by cached queries before the first successful
// refresh of the snapshot they depend on.
var ErrNotReady = errors.New("station data not ready: no successful refresh yet")

// TransportError indicates the upstream API was unreachable, timed out, or
// answered with a non-200 status.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bart: %s: request to %s failed: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError indicates the upstream payload was not well-formed.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bart: %s: malformed payload: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates a lookup miss, such as an unknown station
// abbreviation.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bart: %s %q not found", e.Kind, e.Key)
}
