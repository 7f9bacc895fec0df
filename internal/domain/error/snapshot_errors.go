package error

import "errors"

// Snapshot domain errors.
var (
	// ErrNegativeSnapshotAmount is returned when an income, expense, debt, or savings amount is negative.
	ErrNegativeSnapshotAmount = errors.New("snapshot amounts must be non-negative")

	// ErrInvalidIncomeFrequency is returned when the income frequency is not a known value.
	ErrInvalidIncomeFrequency = errors.New("invalid income frequency")

	// ErrInvalidDebtType is returned when a debt type is not a known value.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidInterestRate is returned when an annual interest rate is outside [0, 100].
	ErrInvalidInterestRate = errors.New("invalid annual interest rate")

	// ErrSnapshotSaveFailed is returned when the snapshot replacement transaction fails.
	ErrSnapshotSaveFailed = errors.New("failed to save snapshot")
)

// SnapshotErrorCode defines error codes for snapshot errors.
// Format: SNP-XXYYYY where XX is category and YYYY is specific error.
type SnapshotErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeSnapshotAmount SnapshotErrorCode = "SNP-010001"
	ErrCodeInvalidIncomeFrequency SnapshotErrorCode = "SNP-010002"
	ErrCodeInvalidDebtType        SnapshotErrorCode = "SNP-010003"
	ErrCodeInvalidInterestRate    SnapshotErrorCode = "SNP-010004"
	ErrCodeMissingSnapshotFields  SnapshotErrorCode = "SNP-010005"

	// Persistence errors (02XXXX)
	ErrCodeSnapshotSaveFailed SnapshotErrorCode = "SNP-020001"
)

// SnapshotError represents a snapshot error with code and message.
type SnapshotError struct {
	Code    SnapshotErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// NewSnapshotError creates a new SnapshotError with the given code and message.
func NewSnapshotError(code SnapshotErrorCode, message string, err error) *SnapshotError {
	return &SnapshotError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
