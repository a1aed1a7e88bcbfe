package employee

import (
	"context"
)

// Service defines all business logic operations for the Employee domain.
// Each operation is a single request/response transaction; none composes another.
type Service interface {
	// ListEmployees retrieves all active employees
	ListEmployees(ctx context.Context) ([]*EmployeeResponse, error)

	// CreateEmployee validates the field set and inserts a new active employee
	CreateEmployee(ctx context.Context, req *EmployeeRequest) (*EmployeeResponse, error)

	// UpdateEmployee validates and overwrites name/email/mobile_no/skills
	UpdateEmployee(ctx context.Context, id int64, req *EmployeeRequest) (*EmployeeResponse, error)

	// SoftDeleteEmployee marks an active employee deleted. One-way transition:
	// a second delete on the same id returns EMPLOYEE_ALREADY_DELETED
	SoftDeleteEmployee(ctx context.Context, id int64) error
}
