package error

import "errors"

// Planning domain errors.
//
// A missing snapshot and an empty goal list are NOT errors: the engine
// returns a valid plan for both. The only failure mode is corrupt or
// unreadable storage, which fails the whole computation.
var (
	// ErrPlanComputationFailed is returned when a plan could not be computed
	// from storage. Plans are never partially computed.
	ErrPlanComputationFailed = errors.New("unable to compute plan")
)

// PlanningErrorCode defines error codes for planning errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanningErrorCode string

const (
	ErrCodePlanComputationFailed PlanningErrorCode = "PLN-010001"
)

// PlanningError represents a planning error with code and message.
type PlanningError struct {
	Code    PlanningErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanningError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanningError) Unwrap() error {
	return e.Err
}

// NewPlanningError creates a new PlanningError with the given code and message.
func NewPlanningError(code PlanningErrorCode, message string, err error) *PlanningError {
	return &PlanningError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
