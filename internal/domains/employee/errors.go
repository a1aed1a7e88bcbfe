package employee

import (
	"errors"
	"fmt"
	"net/http"
)

// EmployeeError is the base error for the employee domain
type EmployeeError struct {
	Code    string            // Stable error code (e.g. "EMPLOYEE_NOT_FOUND")
	Message string            // Human-readable message
	Fields  map[string]string // Field-level messages (validation errors only)
	Err     error             // Underlying error
}

// Error implements error interface
func (e *EmployeeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *EmployeeError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewEmployeeNotFound - the id does not resolve to any record
func NewEmployeeNotFound(id int64) *EmployeeError {
	return &EmployeeError{
		Code:    "EMPLOYEE_NOT_FOUND",
		Message: fmt.Sprintf("Employee %d not found", id),
	}
}

// NewEmployeeEmailExists - email collides with another row (active or deleted)
func NewEmployeeEmailExists(email string) *EmployeeError {
	return &EmployeeError{
		Code:    "EMPLOYEE_EMAIL_EXISTS",
		Message: fmt.Sprintf("Email '%s' is already in use", email),
	}
}

// NewEmployeeAlreadyDeleted - soft delete on an already-deleted record
func NewEmployeeAlreadyDeleted(id int64) *EmployeeError {
	return &EmployeeError{
		Code:    "EMPLOYEE_ALREADY_DELETED",
		Message: fmt.Sprintf("Employee %d is already deleted", id),
	}
}

// NewEmployeeValidationError wraps ozzo field errors
func NewEmployeeValidationError(err error) *EmployeeError {
	return &EmployeeError{
		Code:    "EMPLOYEE_VALIDATION_FAILED",
		Message: "Validation failed",
		Fields:  FieldErrors(err),
		Err:     err,
	}
}

// NewInvalidEmployeeID - the path parameter is not an integer id
func NewInvalidEmployeeID(raw string) *EmployeeError {
	return &EmployeeError{
		Code:    "INVALID_EMPLOYEE_ID",
		Message: fmt.Sprintf("Invalid employee ID: %s", raw),
	}
}

// NewEmployeeStoreError - the store failed; fatal for the current request
func NewEmployeeStoreError(err error) *EmployeeError {
	return &EmployeeError{
		Code:    "EMPLOYEE_STORE_ERROR",
		Message: "Employee store unavailable",
		Err:     err,
	}
}

// ============================================
// ERROR CLASSIFICATION
// ============================================

// GetErrorCode extracts the domain error code
func GetErrorCode(err error) string {
	var empErr *EmployeeError
	if errors.As(err, &empErr) {
		return empErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorFields extracts field-level messages (nil unless validation failed)
func GetErrorFields(err error) map[string]string {
	var empErr *EmployeeError
	if errors.As(err, &empErr) {
		return empErr.Fields
	}
	return nil
}

// GetErrorResponse maps a domain error to HTTP status, message and code.
// Every error is handled at the handler boundary; nothing propagates past it.
func GetErrorResponse(err error) (statusCode int, message string, errorCode string) {
	var empErr *EmployeeError
	if !errors.As(err, &empErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch empErr.Code {
	case "EMPLOYEE_NOT_FOUND":
		return http.StatusNotFound, empErr.Message, empErr.Code
	case "EMPLOYEE_EMAIL_EXISTS", "EMPLOYEE_ALREADY_DELETED":
		return http.StatusConflict, empErr.Message, empErr.Code
	case "EMPLOYEE_VALIDATION_FAILED":
		return http.StatusUnprocessableEntity, empErr.Message, empErr.Code
	case "INVALID_EMPLOYEE_ID":
		return http.StatusBadRequest, empErr.Message, empErr.Code
	default:
		return http.StatusInternalServerError, empErr.Message, empErr.Code
	}
}
