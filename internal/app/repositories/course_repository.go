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

const (
	enrollmentCourseFK  = "course_students_course_id_fkey"
	enrollmentStudentFK = "course_students_student_id_fkey"
)

// CourseRepository handles database operations for courses and their
// student enrolments
type CourseRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// Create creates a course and enrolls studentIDs in the same transaction
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, studentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		txRepo := NewCourseRepository(tx)
		if err := txRepo.Insert(ctx, course); err != nil {
			return err
		}
		return txRepo.AddStudents(ctx, course.ID, studentIDs)
	})
}

// Insert inserts a course row on its own
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Insert("courses").
		Columns("name").
		Values(course.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert course query: %w", err)
	}
	if err := r.db.QueryRow(ctx, query, args...).Scan(&course.ID); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course without its students
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.sb.Select("c.id", "c.name").
		From("courses c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get course query: %w", err)
	}

	var course models.Course
	if err := r.db.QueryRow(ctx, query, args...).Scan(&course.ID, &course.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetWithStudents retrieves a course and its students in two statements
func (r *CourseRepository) GetWithStudents(ctx context.Context, id int64) (*models.Course, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadStudents(ctx, []*models.Course{course}); err != nil {
		return nil, err
	}
	return course, nil
}

// List retrieves one page of courses ordered by id
func (r *CourseRepository) List(ctx context.Context, page Page) ([]*models.Course, error) {
	query, args, err := page.apply(r.sb.Select("c.id", "c.name").
		From("courses c").
		OrderBy("c.id")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

// ListWithStudents retrieves one page of courses together with all of their
// students. The first statement lists the courses; a second one fetches the
// students of every listed course at once. No second statement is issued
// for an empty page.
func (r *CourseRepository) ListWithStudents(ctx context.Context, page Page) ([]*models.Course, error) {
	courses, err := r.List(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := r.loadStudents(ctx, courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) loadStudents(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}

	q := r.sb.Select("cs.course_id", "s.id", "s.name").
		From("course_students cs").
		Join("students s ON s.id = cs.student_id").
		Where(squirrel.Eq{"cs.course_id": ids}).
		OrderBy("cs.course_id", "s.id")

	grouped, err := queryRelated(ctx, r.db, q, func(rows pgx.Rows) (relatedRow[*models.Student], error) {
		var courseID int64
		var s models.Student
		if err := rows.Scan(&courseID, &s.ID, &s.Name); err != nil {
			return relatedRow[*models.Student]{}, err
		}
		return relatedRow[*models.Student]{parentID: courseID, childID: s.ID, child: &s}, nil
	})
	if err != nil {
		return fmt.Errorf("error loading course students: %w", err)
	}

	for _, c := range courses {
		c.Students = childrenOf(grouped, c.ID)
	}
	return nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "courses")
}

// Update renames a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Update("courses").
		Set("name", course.Name).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete deletes a course. Its enrolments are removed by the cascade on
// course_students; the students themselves are kept.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// AddStudents enrolls studentIDs in a course with a single statement. Pairs
// that already exist are left untouched.
func (r *CourseRepository) AddStudents(ctx context.Context, courseID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	insert := r.sb.Insert("course_students").Columns("course_id", "student_id")
	for _, e := range models.EnrollmentsFor(courseID, studentIDs) {
		insert = insert.Values(e.CourseID, e.StudentID)
	}
	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("error building enroll query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err, enrollmentCourseFK):
			return apperrors.ErrCourseNotFound
		case dberrors.IsForeignKeyViolation(err, enrollmentStudentFK):
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error enrolling students: %w", err)
	}
	return nil
}

// RemoveStudent withdraws a student from a course
func (r *CourseRepository) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	query, args, err := r.sb.Delete("course_students").
		Where(squirrel.Eq{"course_id": courseID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building withdraw query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error withdrawing student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
