package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"employees-backend/internal/domains/employee"
	"employees-backend/pkg/cache"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	activeListCacheKey = "employees:active"
	cachePattern       = "employees:*"
	listCacheTTL       = 60 * time.Second
)

// postgresRepository implements employee.Repository
// Uses pgxpool for PostgreSQL connection management
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new employee repository instance
// Dependency injection pattern - receives pool and cache from container
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) employee.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List retrieves all active employees. Soft-deleted rows are excluded here
// but remain findable via GetByID. Serves from the redis cache when warm;
// cache failures fall through to the database and never fail the request.
func (r *postgresRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	if r.cache != nil {
		var cached []*employee.Employee
		if found, err := r.cache.Get(ctx, activeListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := `
    SELECT id, name, email, mobile_no, skills, status, deleted_at, created_at, updated_at
    FROM employees
    WHERE status = 'active' AND deleted_at IS NULL
    ORDER BY id
  `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, employee.NewEmployeeStoreError(fmt.Errorf("failed to list employees: %w", err))
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, employee.NewEmployeeStoreError(err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, employee.NewEmployeeStoreError(fmt.Errorf("error iterating employee rows: %w", err))
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, activeListCacheKey, employees, listCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache employee list")
		}
	}

	return employees, nil
}

// GetByID retrieves an employee by id regardless of status.
// Returns nil if not found
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	query := `
    SELECT id, name, email, mobile_no, skills, status, deleted_at, created_at, updated_at
    FROM employees
    WHERE id = $1
  `
	emp, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, employee.NewEmployeeStoreError(fmt.Errorf("failed to get employee by id: %w", err))
	}
	return emp, nil
}

// Create inserts a new employee with status=active, deleted_at=NULL
func (r *postgresRepository) Create(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	skills, err := employee.EncodeSkills(emp.Skills)
	if err != nil {
		return nil, employee.NewEmployeeStoreError(err)
	}

	query := `
    INSERT INTO employees (name, email, mobile_no, skills, status)
    VALUES ($1, $2, $3, $4, 'active')
    RETURNING id, name, email, mobile_no, skills, status, deleted_at, created_at, updated_at
  `
	created, err := scanEmployee(r.pool.QueryRow(ctx, query, emp.Name, emp.Email, emp.MobileNo, skills))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, employee.NewEmployeeEmailExists(emp.Email)
		}
		return nil, employee.NewEmployeeStoreError(fmt.Errorf("failed to create employee: %w", err))
	}

	r.invalidate(ctx)
	return created, nil
}

// Update overwrites name/email/mobile_no/skills on the row identified by id.
// status and deleted_at are never written here - deleted rows stay deleted
func (r *postgresRepository) Update(ctx context.Context, id int64, emp *employee.Employee) (*employee.Employee, error) {
	skills, err := employee.EncodeSkills(emp.Skills)
	if err != nil {
		return nil, employee.NewEmployeeStoreError(err)
	}

	query := `
    UPDATE employees
    SET name = $1, email = $2, mobile_no = $3, skills = $4, updated_at = NOW()
    WHERE id = $5
    RETURNING id, name, email, mobile_no, skills, status, deleted_at, created_at, updated_at
  `
	updated, err := scanEmployee(r.pool.QueryRow(ctx, query, emp.Name, emp.Email, emp.MobileNo, skills, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.NewEmployeeNotFound(id)
		}
		if isUniqueViolation(err) {
			return nil, employee.NewEmployeeEmailExists(emp.Email)
		}
		return nil, employee.NewEmployeeStoreError(fmt.Errorf("failed to update employee: %w", err))
	}

	r.invalidate(ctx)
	return updated, nil
}

// SoftDelete sets status=deleted and deleted_at=NOW() in one statement,
// keeping the two fields in lockstep
func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `
    UPDATE employees
    SET status = 'deleted', deleted_at = NOW(), updated_at = NOW()
    WHERE id = $1
  `
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return employee.NewEmployeeStoreError(fmt.Errorf("failed to soft delete employee: %w", err))
	}
	if result.RowsAffected() == 0 {
		return employee.NewEmployeeNotFound(id)
	}

	r.invalidate(ctx)
	return nil
}

// EmailExists checks email uniqueness across ALL rows (active + deleted),
// matching the scope of the UNIQUE constraint. excludeID=0 means no exclusion
func (r *postgresRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, employee.NewEmployeeStoreError(fmt.Errorf("failed to check email uniqueness: %w", err))
	}
	return exists, nil
}

// invalidate drops cached employee listings after any mutation
func (r *postgresRepository) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, cachePattern); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate employee cache")
	}
}

// scanEmployee reads one employee row, decoding the stored skills column
func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var emp employee.Employee
	var rawSkills string

	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.MobileNo,
		&rawSkills,
		&emp.Status,
		&emp.DeletedAt,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	emp.Skills, err = employee.DecodeSkills(rawSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to decode skills for employee %d: %w", emp.ID, err)
	}
	return &emp, nil
}

// isUniqueViolation checks for PostgreSQL error code 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
