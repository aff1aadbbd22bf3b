package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func exact(s string) string {
	return regexp.QuoteMeta(s)
}

func TestDepartmentRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("INSERT INTO departments (name) VALUES ($1) RETURNING id")).
		WithArgs("Research").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	department := &models.Department{Name: "Research"}
	require.NoError(t, repo.Create(context.Background(), department))
	assert.Equal(t, int64(3), department.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("SELECT id, name FROM departments WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_ListWithEmployees(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("SELECT id, name FROM departments ORDER BY id LIMIT 10")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Research").
			AddRow(int64(2), "Sales"))
	mock.ExpectQuery(exact("SELECT e.department_id, e.id, e.name FROM employees e WHERE e.department_id IN ($1,$2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"department_id", "id", "name"}).
			AddRow(int64(1), int64(10), "Ada").
			AddRow(int64(1), int64(11), "Grace"))

	departments, err := repo.ListWithEmployees(context.Background(), Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, departments, 2)

	require.Len(t, departments[0].Employees, 2)
	assert.Equal(t, "Ada", departments[0].Employees[0].Name)
	assert.Equal(t, int64(1), departments[0].Employees[1].DepartmentID)

	assert.NotNil(t, departments[1].Employees)
	assert.Empty(t, departments[1].Employees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_ListWithEmployees_EmptyPage(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("SELECT id, name FROM departments ORDER BY id LIMIT 10 OFFSET 20")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	departments, err := repo.ListWithEmployees(context.Background(), Page{Offset: 20, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, departments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectExec(exact("UPDATE departments SET name = $1 WHERE id = $2")).
		WithArgs("Ops", int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &models.Department{ID: 9, Name: "Ops"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_DeleteIsOneStatement(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	// employees go with the department through ON DELETE CASCADE
	mock.ExpectExec(exact("DELETE FROM departments WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_Count(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("SELECT COUNT(*) FROM departments")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestDepartmentRepository_Exists(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(exact("SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
