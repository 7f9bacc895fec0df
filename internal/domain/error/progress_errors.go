package error

import "errors"

// Goal progress domain errors.
var (
	// ErrNegativeProgressBalance is returned when a recorded balance is negative.
	ErrNegativeProgressBalance = errors.New("progress balance must be non-negative")

	// ErrInvalidProgressSource is returned when the progress source is not a known value.
	ErrInvalidProgressSource = errors.New("invalid progress source")

	// ErrProgressOnTerminalGoal is returned when recording progress against a completed or cancelled goal.
	ErrProgressOnTerminalGoal = errors.New("cannot record progress on a completed or cancelled goal")
)

// ProgressErrorCode defines error codes for goal progress errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	ErrCodeNegativeProgressBalance ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidProgressSource   ProgressErrorCode = "PRG-010002"
	ErrCodeProgressOnTerminalGoal  ProgressErrorCode = "PRG-010003"
	ErrCodeMissingProgressFields   ProgressErrorCode = "PRG-010004"
)

// ProgressError represents a goal progress error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
