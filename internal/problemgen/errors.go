package problemgen

import (
	"errors"
	"fmt"
)

// MalformedResponseError indicates that no array of questions could be
// recovered from a generation response.
type MalformedResponseError struct {
	// Raw is the response text exactly as received.
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed generation response (%d bytes): %v", len(e.Raw), e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// InsufficientResultsError indicates that generation produced fewer
// questions than requested.
type InsufficientResultsError struct {
	Want int
	Got  int
}

func (e *InsufficientResultsError) Error() string {
	return fmt.Sprintf("generation produced %d of %d questions", e.Got, e.Want)
}

var errNoArray = errors.New("no JSON array found")
