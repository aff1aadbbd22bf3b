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
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(conn db.DBTX) *DepartmentRepository {
	return &DepartmentRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query, args, err := r.sb.Insert("departments").
		Columns("name").
		Values(department.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&department.ID); err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query, args, err := r.sb.Select("id", "name").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get department query: %w", err)
	}

	var department models.Department
	err = r.db.QueryRow(ctx, query, args...).Scan(&department.ID, &department.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// Exists reports whether a department with the given id exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	sub, subArgs, err := squirrel.Select("1").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building department lookup: %w", err)
	}

	query, args, err := r.sb.Select().
		Column("EXISTS("+sub+")", subArgs...).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building department exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// List retrieves one page of departments ordered by id
func (r *DepartmentRepository) List(ctx context.Context, page Page) ([]*models.Department, error) {
	query, args, err := page.apply(r.sb.Select("id", "name").
		From("departments").
		OrderBy("id")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, &department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// ListWithEmployees retrieves one page of departments with their employees.
// Employees of the whole page are fetched in one additional statement.
func (r *DepartmentRepository) ListWithEmployees(ctx context.Context, page Page) ([]*models.Department, error) {
	departments, err := r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := r.loadEmployees(ctx, departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// GetWithEmployees retrieves a department and its employees
func (r *DepartmentRepository) GetWithEmployees(ctx context.Context, id int64) (*models.Department, error) {
	department, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadEmployees(ctx, []*models.Department{department}); err != nil {
		return nil, err
	}
	return department, nil
}

func (r *DepartmentRepository) loadEmployees(ctx context.Context, departments []*models.Department) error {
	if len(departments) == 0 {
		return nil
	}

	ids := make([]int64, len(departments))
	for i, d := range departments {
		ids[i] = d.ID
	}

	q := r.sb.Select("e.department_id", "e.id", "e.name").
		From("employees e").
		Where(squirrel.Eq{"e.department_id": ids}).
		OrderBy("e.department_id", "e.id")

	grouped, err := queryRelated(ctx, r.db, q, func(rows pgx.Rows) (relatedRow[*models.Employee], error) {
		var e models.Employee
		if err := rows.Scan(&e.DepartmentID, &e.ID, &e.Name); err != nil {
			return relatedRow[*models.Employee]{}, err
		}
		return relatedRow[*models.Employee]{parentID: e.DepartmentID, childID: e.ID, child: &e}, nil
	})
	if err != nil {
		return fmt.Errorf("error loading department employees: %w", err)
	}

	for _, d := range departments {
		d.Employees = childrenOf(grouped, d.ID)
	}
	return nil
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "departments")
}

// Update renames an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query, args, err := r.sb.Update("departments").
		Set("name", department.Name).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Delete deletes a department by ID. Its employees are removed by the
// foreign key cascade in the same statement.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
