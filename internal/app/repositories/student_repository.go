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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("name").
		Values(student.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&student.ID); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select("id", "name").
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get student query: %w", err)
	}

	var student models.Student
	if err := r.db.QueryRow(ctx, query, args...).Scan(&student.ID, &student.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetWithCourses retrieves a student and the courses it is enrolled in
func (r *StudentRepository) GetWithCourses(ctx context.Context, id int64) (*models.Student, error) {
	student, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadCourses(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}
	return student, nil
}

// List retrieves one page of students ordered by id
func (r *StudentRepository) List(ctx context.Context, page Page) ([]*models.Student, error) {
	query, args, err := page.apply(r.sb.Select("id", "name").
		From("students").
		OrderBy("id")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// ListWithCourses retrieves one page of students with their courses using
// at most two statements.
func (r *StudentRepository) ListWithCourses(ctx context.Context, page Page) ([]*models.Student, error) {
	students, err := r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := r.loadCourses(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepository) loadCourses(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	ids := make([]int64, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}

	q := r.sb.Select("cs.student_id", "c.id", "c.name").
		From("course_students cs").
		Join("courses c ON c.id = cs.course_id").
		Where(squirrel.Eq{"cs.student_id": ids}).
		OrderBy("cs.student_id", "c.id")

	grouped, err := queryRelated(ctx, r.db, q, func(rows pgx.Rows) (relatedRow[*models.Course], error) {
		var studentID int64
		var c models.Course
		if err := rows.Scan(&studentID, &c.ID, &c.Name); err != nil {
			return relatedRow[*models.Course]{}, err
		}
		return relatedRow[*models.Course]{parentID: studentID, childID: c.ID, child: &c}, nil
	})
	if err != nil {
		return fmt.Errorf("error loading student courses: %w", err)
	}

	for _, s := range students {
		s.Courses = childrenOf(grouped, s.ID)
	}
	return nil
}

// MissingIDs returns the ids in ids that do not belong to any student, in
// input order.
func (r *StudentRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := r.sb.Select("id").
		From("students").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student lookup query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error looking up students: %w", err)
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student ids: %w", err)
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "students")
}

// Update renames a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student. Its enrolments are removed by the cascade on
// course_students.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
