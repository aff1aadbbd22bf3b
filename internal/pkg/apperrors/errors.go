package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrValidationFailed      = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")
)

// Department and employee errors
var (
	ErrDepartmentNotFound = NewCustomError(ErrResourceNotFound, "department not found")
	ErrEmployeeNotFound   = NewCustomError(ErrResourceNotFound, "employee not found")
)

// Product and description errors
var (
	ErrProductNotFound          = NewCustomError(ErrResourceNotFound, "product not found")
	ErrDescriptionNotFound      = NewCustomError(ErrResourceNotFound, "description not found")
	ErrDescriptionAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "product already has a description")
)

// Student and course errors
var (
	ErrStudentNotFound    = NewCustomError(ErrResourceNotFound, "student not found")
	ErrCourseNotFound     = NewCustomError(ErrResourceNotFound, "course not found")
	ErrEnrollmentNotFound = NewCustomError(ErrResourceNotFound, "student is not enrolled in course")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return NewCustomError(ErrConflict, message)
}

// NewValidationError creates a validation error carrying field level details
func NewValidationError(message string, details map[string]interface{}) error {
	return NewCustomError(ErrValidationFailed, message).WithDetails(details)
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return NewCustomError(ErrBadRequest, message)
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
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

// DetailsOf returns the details attached to the first CustomError in the chain
func DetailsOf(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}

// MessageOf returns the message of the first CustomError in the chain, or fallback
func MessageOf(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
