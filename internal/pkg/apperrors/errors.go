package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Citizen errors
var (
	ErrCitizenNotFound      = errors.New("citizen not found")
	ErrAadhaarAlreadyExists = errors.New("citizen with this Aadhaar number already exists")
)

// Category errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInterestNotFound = errors.New("category interest not found")
)

// Scheme errors
var (
	ErrSchemeNotFound = errors.New("scheme not found")
	ErrRuleNotFound   = errors.New("rule not found")
)

// Application errors
var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationNotOpen   = errors.New("application is no longer pending")
	ErrApplicationDuplicate = errors.New("an application for this scheme already exists")
)

// Grievance errors
var (
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrGrievanceResolved = errors.New("grievance is already resolved")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
