package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrTargetDateNotFuture is returned when the target date is not strictly in the future.
	ErrTargetDateNotFuture = errors.New("target date must be in the future")

	// ErrGoalLimitExceeded is returned when the user already has the maximum number of active goals.
	ErrGoalLimitExceeded = errors.New("active goal limit exceeded")

	// ErrInvalidGoalType is returned when the goal type is not a known value.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidGoalPriority is returned when the priority is not a known value.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrInvalidGoalStatus is returned when a status value or transition is not allowed.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrGoalAlreadyTerminal is returned when modifying a completed or cancelled goal.
	ErrGoalAlreadyTerminal = errors.New("goal is already completed or cancelled")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrNoFieldsToUpdate is returned when an update request carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010002"
	ErrCodeTargetDateNotFuture    GoalErrorCode = "GOL-010003"
	ErrCodeGoalLimitExceeded      GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalType        GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalPriority    GoalErrorCode = "GOL-010006"
	ErrCodeInvalidGoalStatus      GoalErrorCode = "GOL-010007"
	ErrCodeGoalAlreadyTerminal    GoalErrorCode = "GOL-010008"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010009"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010010"
	ErrCodeNoFieldsToUpdate       GoalErrorCode = "GOL-010011"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
