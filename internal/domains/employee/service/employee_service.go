package service

import (
	"context"

	"employees-backend/internal/domains/employee"
)

// employeeService implements employee.Service
type employeeService struct {
	repo employee.Repository
}

// NewEmployeeService creates a new employee service instance
// Dependency injection pattern - receives repository from container
func NewEmployeeService(repo employee.Repository) employee.Service {
	return &employeeService{
		repo: repo,
	}
}

// ListEmployees retrieves all active employees
func (s *employeeService) ListEmployees(ctx context.Context) ([]*employee.EmployeeResponse, error) {
	emps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*employee.EmployeeResponse, len(emps))
	for i, emp := range emps {
		responses[i] = emp.ToResponse()
	}
	return responses, nil
}

// CreateEmployee validates the field set and inserts a new active employee.
// Normalization happens before validation so whitespace-only fields fail the
// required rules instead of being trimmed to empty strings afterwards.
// The uniqueness pre-check keeps the common duplicate case out of the store;
// the UNIQUE constraint remains the guard for the concurrent-create race.
func (s *employeeService) CreateEmployee(ctx context.Context, req *employee.EmployeeRequest) (*employee.EmployeeResponse, error) {
	normalized := req.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, employee.NewEmployeeValidationError(err)
	}

	emp := toEmployee(normalized)

	taken, err := s.repo.EmailExists(ctx, emp.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, employee.NewEmployeeEmailExists(emp.Email)
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

// UpdateEmployee overwrites name/email/mobile_no/skills on an existing record.
// status and deleted_at are never touched; a deleted record cannot be edited.
// The uniqueness check excludes the record being updated
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, req *employee.EmployeeRequest) (*employee.EmployeeResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, employee.NewEmployeeNotFound(id)
	}
	if current.IsDeleted() {
		return nil, employee.NewEmployeeAlreadyDeleted(id)
	}

	normalized := req.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, employee.NewEmployeeValidationError(err)
	}

	emp := toEmployee(normalized)

	taken, err := s.repo.EmailExists(ctx, emp.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, employee.NewEmployeeEmailExists(emp.Email)
	}

	updated, err := s.repo.Update(ctx, id, emp)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

// SoftDeleteEmployee marks an active employee deleted. The transition is
// one-way: deleting an already-deleted record is a conflict, not a no-op
func (s *employeeService) SoftDeleteEmployee(ctx context.Context, id int64) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return employee.NewEmployeeNotFound(id)
	}
	if current.IsDeleted() {
		return employee.NewEmployeeAlreadyDeleted(id)
	}

	return s.repo.SoftDelete(ctx, id)
}

// toEmployee builds the entity from an already-normalized request
func toEmployee(req employee.EmployeeRequest) *employee.Employee {
	return &employee.Employee{
		Name:     req.Name,
		Email:    req.Email,
		MobileNo: req.MobileNo,
		Skills:   append([]string(nil), req.Skills...),
	}
}
