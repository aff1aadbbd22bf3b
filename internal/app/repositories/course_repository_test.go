package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/dberrors"
)

const courseStudents = "SELECT cs.course_id, s.id, s.name FROM course_students cs JOIN students s ON s.id = cs.student_id"

func TestCourseRepository_ListWithStudents_TwoStatements(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(exact("SELECT c.id, c.name FROM courses c ORDER BY c.id LIMIT 10")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Databases").
			AddRow(int64(2), "Compilers").
			AddRow(int64(3), "Networks"))
	mock.ExpectQuery(exact(courseStudents + " WHERE cs.course_id IN ($1,$2,$3) ORDER BY cs.course_id, s.id")).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id", "id", "name"}).
			AddRow(int64(1), int64(10), "Ann").
			AddRow(int64(1), int64(11), "Bob").
			AddRow(int64(1), int64(11), "Bob").
			AddRow(int64(2), int64(10), "Ann"))

	courses, err := repo.ListWithStudents(context.Background(), Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, courses, 3)

	require.Len(t, courses[0].Students, 2, "duplicate pairs are collapsed")
	assert.Equal(t, int64(10), courses[0].Students[0].ID)
	assert.Equal(t, int64(11), courses[0].Students[1].ID)

	require.Len(t, courses[1].Students, 1)
	assert.Equal(t, "Ann", courses[1].Students[0].Name)

	assert.NotNil(t, courses[2].Students)
	assert.Empty(t, courses[2].Students)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_ListWithStudents_NoCoursesOneStatement(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(exact("SELECT c.id, c.name FROM courses c ORDER BY c.id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	courses, err := repo.ListWithStudents(context.Background(), Page{})
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetWithStudents(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(exact("SELECT c.id, c.name FROM courses c WHERE c.id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(4), "Algebra"))
	mock.ExpectQuery(exact(courseStudents + " WHERE cs.course_id IN ($1)")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"course_id", "id", "name"}).
			AddRow(int64(4), int64(1), "Ann"))

	course, err := repo.GetWithStudents(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, course.Students, 1)
	assert.Equal(t, "Ann", course.Students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_GetWithStudents_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(exact("FROM courses c WHERE c.id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetWithStudents(context.Background(), 4)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_CreateWithStudents(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(exact("INSERT INTO courses (name) VALUES ($1) RETURNING id")).
		WithArgs("Databases").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(exact("INSERT INTO course_students (course_id,student_id) VALUES ($1,$2),($3,$4) ON CONFLICT DO NOTHING")).
		WithArgs(int64(9), int64(1), int64(9), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	course := &models.Course{Name: "Databases"}
	require.NoError(t, repo.Create(context.Background(), course, []int64{1, 2}))
	assert.Equal(t, int64(9), course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_CreateWithoutStudents(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(exact("INSERT INTO courses (name) VALUES ($1) RETURNING id")).
		WithArgs("Databases").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), &models.Course{Name: "Databases"}, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_AddStudents_UnknownStudent(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(exact("INSERT INTO course_students")).
		WithArgs(int64(1), int64(77)).
		WillReturnError(&pgconn.PgError{Code: dberrors.ForeignKeyViolation, ConstraintName: enrollmentStudentFK})

	err := repo.AddStudents(context.Background(), 1, []int64{77})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_AddStudents_UnknownCourse(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(exact("INSERT INTO course_students")).
		WithArgs(int64(1), int64(77)).
		WillReturnError(&pgconn.PgError{Code: dberrors.ForeignKeyViolation, ConstraintName: enrollmentCourseFK})

	err := repo.AddStudents(context.Background(), 1, []int64{77})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_AddStudents_NoneIsNoop(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	require.NoError(t, repo.AddStudents(context.Background(), 1, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_RemoveStudent(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(exact("DELETE FROM course_students WHERE course_id = $1 AND student_id = $2")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(exact("DELETE FROM course_students")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.RemoveStudent(context.Background(), 1, 2))
	assert.ErrorIs(t, repo.RemoveStudent(context.Background(), 1, 2), apperrors.ErrEnrollmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_AddStudents_CollapsesDuplicates(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(exact("INSERT INTO course_students (course_id,student_id) VALUES ($1,$2),($3,$4) ON CONFLICT DO NOTHING")).
		WithArgs(int64(1), int64(5), int64(1), int64(6)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	require.NoError(t, repo.AddStudents(context.Background(), 1, []int64{5, 6, 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
