package employee

import (
	"context"
)

// Repository defines all data access operations for the Employee domain
type Repository interface {
	// List retrieves active employees only (status=active, deleted_at IS NULL)
	List(ctx context.Context) ([]*Employee, error)

	// GetByID retrieves an employee by id regardless of status.
	// Returns nil if not found (soft-deleted rows remain findable by id)
	GetByID(ctx context.Context, id int64) (*Employee, error)

	// Create inserts a new row with status=active.
	// Returns EMPLOYEE_EMAIL_EXISTS on a unique violation
	Create(ctx context.Context, emp *Employee) (*Employee, error)

	// Update overwrites name/email/mobile_no/skills on the identified row.
	// status and deleted_at are never touched
	Update(ctx context.Context, id int64, emp *Employee) (*Employee, error)

	// SoftDelete sets status=deleted and deleted_at=now on the identified row
	SoftDelete(ctx context.Context, id int64) error

	// EmailExists reports whether email is used by a row other than excludeID.
	// The check spans active AND deleted rows - the UNIQUE constraint does too.
	// Pass excludeID=0 for create
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
