package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/db"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/dberrors"
)

const employeeDepartmentFK = "employees_department_id_fkey"

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(conn db.DBTX) *EmployeeRepository {
	return &EmployeeRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// withDepartment selects employees joined to their department. Every
// employee has exactly one department so an inner join loses no rows.
func (r *EmployeeRepository) withDepartment() squirrel.SelectBuilder {
	return r.sb.Select("e.id", "e.name", "e.department_id", "d.id", "d.name").
		From("employees e").
		Join("departments d ON d.id = e.department_id")
}

func scanEmployeeWithDepartment(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	var d models.Department
	if err := row.Scan(&e.ID, &e.Name, &e.DepartmentID, &d.ID, &d.Name); err != nil {
		return nil, err
	}
	e.Department = &d
	return &e, nil
}

// Create creates a new employee
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query, args, err := r.sb.Insert("employees").
		Columns("name", "department_id").
		Values(employee.Name, employee.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert employee query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&employee.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err, employeeDepartmentFK) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee and its department
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	query, args, err := r.withDepartment().
		Where(squirrel.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get employee query: %w", err)
	}

	employee, err := scanEmployeeWithDepartment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// ListWithDepartment retrieves one page of employees, each with its
// department, in a single statement.
func (r *EmployeeRepository) ListWithDepartment(ctx context.Context, page Page) ([]*models.Employee, error) {
	query, args, err := page.apply(r.withDepartment().OrderBy("e.id")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		employee, err := scanEmployeeWithDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// Count returns the number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "employees")
}

// Update changes the name and department of an employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query, args, err := r.sb.Update("employees").
		Set("name", employee.Name).
		Set("department_id", employee.DepartmentID).
		Where(squirrel.Eq{"id": employee.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, employeeDepartmentFK) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}

// Delete deletes an employee by ID
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}
	return nil
}
