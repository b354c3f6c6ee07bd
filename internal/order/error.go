package order

import (
	"errors"
	"fmt"
)

// GenericSubmitMessage is shown when the server gives no usable message.
const GenericSubmitMessage = "Network error. Please check your connection and try again."

var (
	ErrNothingToRetry    = errors.New("no failed submission to retry")
	ErrSubmissionPending = errors.New("submission already in flight")
	ErrAlreadySaved      = errors.New("order already saved")
	ErrUnknownOrder      = errors.New("order is not the one being submitted")
	ErrNonJSONResponse   = errors.New("order service returned a non-JSON response")
)

// SubmitError is a failed submission. Message is safe to show to the user.
type SubmitError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submit order: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("submit order: %s", e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// UserMessage extracts the user-facing text from any submission error.
func UserMessage(err error) string {
	var se *SubmitError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return GenericSubmitMessage
}
