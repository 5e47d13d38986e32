package remote

import (
	"fmt"

	"github.com/AlexTLDR/partyplanner/internal/planner"
)

// NetworkError is returned when the request could not be completed or the
// server answered with an unexpected status.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FailureKind implements the planner's failure classification.
func (e *NetworkError) FailureKind() planner.Kind { return planner.KindNetwork }

// DecodeError is returned when a response body is not the expected JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FailureKind implements the planner's failure classification.
func (e *DecodeError) FailureKind() planner.Kind { return planner.KindDecode }
