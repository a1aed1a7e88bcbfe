package service

import (
	"context"
	"testing"
	"time"

	"employees-backend/internal/domains/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory employee.Repository. It mirrors the store
// semantics the service relies on: active-only listings, id lookup across
// statuses, and email uniqueness spanning active and deleted rows.
type fakeRepository struct {
	nextID    int64
	employees map[int64]*employee.Employee
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:    1,
		employees: make(map[int64]*employee.Employee),
	}
}

func (f *fakeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	var active []*employee.Employee
	for id := int64(1); id < f.nextID; id++ {
		if emp, ok := f.employees[id]; ok && emp.Status == employee.StatusActive {
			active = append(active, copyEmployee(emp))
		}
	}
	return active, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return copyEmployee(emp), nil
}

func (f *fakeRepository) Create(ctx context.Context, emp *employee.Employee) (*employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return nil, employee.NewEmployeeEmailExists(emp.Email)
		}
	}

	now := time.Now()
	created := copyEmployee(emp)
	created.ID = f.nextID
	created.Status = employee.StatusActive
	created.CreatedAt = now
	created.UpdatedAt = now

	f.employees[created.ID] = created
	f.nextID++
	return copyEmployee(created), nil
}

func (f *fakeRepository) Update(ctx context.Context, id int64, emp *employee.Employee) (*employee.Employee, error) {
	current, ok := f.employees[id]
	if !ok {
		return nil, employee.NewEmployeeNotFound(id)
	}
	for otherID, existing := range f.employees {
		if otherID != id && existing.Email == emp.Email {
			return nil, employee.NewEmployeeEmailExists(emp.Email)
		}
	}

	current.Name = emp.Name
	current.Email = emp.Email
	current.MobileNo = emp.MobileNo
	current.Skills = append([]string(nil), emp.Skills...)
	current.UpdatedAt = time.Now()
	return copyEmployee(current), nil
}

func (f *fakeRepository) SoftDelete(ctx context.Context, id int64) error {
	current, ok := f.employees[id]
	if !ok {
		return employee.NewEmployeeNotFound(id)
	}
	now := time.Now()
	current.Status = employee.StatusDeleted
	current.DeletedAt = &now
	return nil
}

func (f *fakeRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	for id, existing := range f.employees {
		if id != excludeID && existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func copyEmployee(emp *employee.Employee) *employee.Employee {
	clone := *emp
	clone.Skills = append([]string(nil), emp.Skills...)
	return &clone
}

func newTestService() (employee.Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewEmployeeService(repo), repo
}

func annRequest() *employee.EmployeeRequest {
	return &employee.EmployeeRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		MobileNo: "12345",
		Skills:   []string{"php", "mysql"},
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, employee.StatusActive, created.Status)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "ann@x.com", list[0].Email)
	assert.Equal(t, "12345", list[0].MobileNo)
	assert.Equal(t, []string{"php", "mysql"}, list[0].Skills)
	assert.Equal(t, employee.StatusActive, list[0].Status)
}

func TestCreateEmployeeNormalizes(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateEmployee(context.Background(), &employee.EmployeeRequest{
		Name:     "  Ann  ",
		Email:    " Ann@X.COM ",
		MobileNo: " 12345 ",
		Skills:   []string{" php "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", created.Name)
	assert.Equal(t, "ann@x.com", created.Email)
	assert.Equal(t, "12345", created.MobileNo)
	assert.Equal(t, []string{"php"}, created.Skills)
}

func TestCreateEmployeeWhitespaceOnlyFields(t *testing.T) {
	svc, repo := newTestService()

	// Whitespace-only fields must fail validation, not be trimmed to empty
	// strings and stored
	_, err := svc.CreateEmployee(context.Background(), &employee.EmployeeRequest{
		Name:     "   ",
		Email:    "ann@x.com",
		MobileNo: "\t ",
		Skills:   []string{"   "},
	})
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_VALIDATION_FAILED", employee.GetErrorCode(err))

	fields := employee.GetErrorFields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "mobile_no")
	assert.Contains(t, fields, "skills")

	assert.Empty(t, repo.employees)
}

func TestUpdateEmployeeWhitespaceOnlyFields(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	req := annRequest()
	req.Name = "   "
	_, err = svc.UpdateEmployee(ctx, created.ID, req)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_VALIDATION_FAILED", employee.GetErrorCode(err))
	assert.Equal(t, "Ann", repo.employees[created.ID].Name)
}

func TestCreateEmployeeValidationFailure(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	req := annRequest()
	req.Skills = nil

	_, err := svc.CreateEmployee(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_VALIDATION_FAILED", employee.GetErrorCode(err))
	assert.Contains(t, employee.GetErrorFields(err), "skills")

	// No mutation on validation failure
	assert.Empty(t, repo.employees)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	dup := annRequest()
	dup.Name = "Other Ann"
	_, err = svc.CreateEmployee(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_EMAIL_EXISTS", employee.GetErrorCode(err))
	assert.Len(t, repo.employees, 1)
}

func TestCreateEmployeeDuplicateEmailOfDeletedRow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDeleteEmployee(ctx, created.ID))

	// The UNIQUE constraint spans deleted rows, so re-using the email fails
	_, err = svc.CreateEmployee(ctx, annRequest())
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_EMAIL_EXISTS", employee.GetErrorCode(err))
}

func TestUpdateEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, created.ID, &employee.EmployeeRequest{
		Name:     "Ann Lee",
		Email:    "ann.lee@x.com",
		MobileNo: "67890",
		Skills:   []string{"react"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", updated.Name)
	assert.Equal(t, "ann.lee@x.com", updated.Email)
	assert.Equal(t, []string{"react"}, updated.Skills)
	assert.Equal(t, employee.StatusActive, updated.Status)
}

func TestUpdateEmployeeKeepsOwnEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	// Unchanged email must not trip the uniqueness check against itself
	req := annRequest()
	req.Name = "Ann Lee"
	_, err = svc.UpdateEmployee(ctx, created.ID, req)
	assert.NoError(t, err)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateEmployee(context.Background(), 42, annRequest())
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", employee.GetErrorCode(err))
}

func TestUpdateEmployeeEmailCollision(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	second := annRequest()
	second.Name = "Bob"
	second.Email = "bob@x.com"
	_, err = svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	// Point row 1 at row 2's email
	req := annRequest()
	req.Email = "bob@x.com"
	_, err = svc.UpdateEmployee(ctx, first.ID, req)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_EMAIL_EXISTS", employee.GetErrorCode(err))

	// Row 1 unchanged
	assert.Equal(t, "ann@x.com", repo.employees[first.ID].Email)
}

func TestUpdateEmployeeValidationFailure(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	req := annRequest()
	req.Email = "broken"
	_, err = svc.UpdateEmployee(ctx, created.ID, req)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_VALIDATION_FAILED", employee.GetErrorCode(err))
	assert.Equal(t, "ann@x.com", repo.employees[created.ID].Email)
}

func TestUpdateEmployeeDeleted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)
	require.NoError(t, svc.SoftDeleteEmployee(ctx, created.ID))

	_, err = svc.UpdateEmployee(ctx, created.ID, annRequest())
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_ALREADY_DELETED", employee.GetErrorCode(err))
}

func TestSoftDeleteEmployee(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteEmployee(ctx, created.ID))

	// Gone from the list...
	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// ...but still findable by id, with status and deleted_at set together
	stored := repo.employees[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, employee.StatusDeleted, stored.Status)
	assert.NotNil(t, stored.DeletedAt)
}

func TestSoftDeleteEmployeeNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SoftDeleteEmployee(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", employee.GetErrorCode(err))
}

func TestSoftDeleteEmployeeTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, annRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDeleteEmployee(ctx, created.ID))

	// The transition is one-way and happens exactly once
	err = svc.SoftDeleteEmployee(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "EMPLOYEE_ALREADY_DELETED", employee.GetErrorCode(err))
}

func TestListEmployeesEmpty(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
