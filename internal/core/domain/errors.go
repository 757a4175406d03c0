package domain

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is the fallback used when the backend rejects a
// request without supplying an `error` field in its JSON body.
const GenericFailureMessage = "Network response was not ok"

// CORSGuidance is the actionable message surfaced when a transport failure
// looks like a cross-origin rejection.
const CORSGuidance = "CORS error: Unable to connect to backend server. Please ensure the backend is running and CORS is enabled."

var ErrPostNotFound = errors.New("post not found")
var ErrPageNotFound = errors.New("page not found")

// APIError carries a non-2xx backend response. Message is the backend's own
// `error` field when the body was JSON, else GenericFailureMessage.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ConnectivityError is a transport-level failure: the backend could not be
// reached at all. CORS is set when the underlying message mentions "CORS";
// detection is deliberately no stricter than that substring.
type ConnectivityError struct {
	Err  error
	CORS bool
}

func (e *ConnectivityError) Error() string {
	if e.CORS {
		return CORSGuidance
	}
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
