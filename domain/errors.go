package domain

import (
	"errors"
	"fmt"
)

const (
	PredictionErrorTransport      = "transport"
	PredictionErrorResponseFormat = "response_format"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

// TransportError means the classifier call did not complete or returned a
// non-2xx status. StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("prediction transport error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("prediction transport error: %s", msg)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ResponseFormatError means the classifier answered 2xx but the payload could
// not be read as a binary verdict.
type ResponseFormatError struct {
	Message    string
	RawPayload string
	Cause      error
}

func (e *ResponseFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("prediction response format error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("prediction response format error: %s", e.Message)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}

// NewPredictionError converts a classifier failure into its reportable form.
func NewPredictionError(err error) *PredictionError {
	var formatErr *ResponseFormatError
	if errors.As(err, &formatErr) {
		return &PredictionError{
			Kind:       PredictionErrorResponseFormat,
			Message:    "Error reading prediction.",
			RawPayload: formatErr.RawPayload,
		}
	}

	return &PredictionError{
		Kind:    PredictionErrorTransport,
		Message: "Error calling prediction API.",
	}
}
