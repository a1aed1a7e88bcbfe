package employee

import (
	"time"
)

// Status represents the lifecycle state of an employee record.
// An employee transitions active -> deleted exactly once; there is no restore.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// Employee is the persisted entity. Skills are stored as a JSON-encoded
// array in a text column; see skills.go for the codec.
type Employee struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	MobileNo  string     `json:"mobile_no" db:"mobile_no"`
	Skills    []string   `json:"skills" db:"skills"`
	Status    Status     `json:"status" db:"status"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsDeleted reports whether the record has been soft-deleted.
func (e *Employee) IsDeleted() bool {
	return e.Status == StatusDeleted
}

// EmployeeResponse - public representation returned by the API
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	MobileNo  string    `json:"mobile_no"`
	Skills    []string  `json:"skills"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse converts Employee entity to EmployeeResponse
func (e *Employee) ToResponse() *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		MobileNo:  e.MobileNo,
		Skills:    e.Skills,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
