package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/repositories"
	"github.com/yigit/relcatalog/internal/db"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// CourseService defines the interface for courses and enrolment. Courses are
// always returned with their students.
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course, studentIDs []int64) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error)
	UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	EnrollStudents(ctx context.Context, courseID int64, studentIDs []int64) (*models.Course, error)
	WithdrawStudent(ctx context.Context, courseID, studentID int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	conn       db.DBTX
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(conn db.DBTX, courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		conn:       conn,
		courseRepo: courseRepo,
	}
}

// checkStudents fails with ErrStudentNotFound listing every unknown id
func checkStudents(ctx context.Context, studentRepo *repositories.StudentRepository, studentIDs []int64) error {
	for _, id := range studentIDs {
		if id <= 0 {
			return fmt.Errorf("%w: invalid student ID %d", apperrors.ErrValidationFailed, id)
		}
	}

	missing, err := studentRepo.MissingIDs(ctx, studentIDs)
	if err != nil {
		return fmt.Errorf("error checking students: %w", err)
	}
	if len(missing) > 0 {
		return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student not found").
			WithDetails(map[string]interface{}{"studentIds": missing})
	}
	return nil
}

// CreateCourse creates a course, enrolling studentIDs in the same transaction
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course, studentIDs []int64) (*models.Course, error) {
	course.Name = strings.TrimSpace(course.Name)
	if err := validateModel("course", course); err != nil {
		return nil, err
	}

	err := db.WithTransaction(ctx, s.conn, func(ctx context.Context, tx pgx.Tx) error {
		if err := checkStudents(ctx, repositories.NewStudentRepository(tx), studentIDs); err != nil {
			return err
		}
		courseRepo := repositories.NewCourseRepository(tx)
		if err := courseRepo.Insert(ctx, course); err != nil {
			return err
		}
		return courseRepo.AddStudents(ctx, course.ID, studentIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.courseRepo.GetWithStudents(ctx, course.ID)
}

// GetCourseByID retrieves a course with its students
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID("course", id); err != nil {
		return nil, err
	}
	return s.courseRepo.GetWithStudents(ctx, id)
}

// ListCourses retrieves one page of courses with their students
func (s *courseServiceImpl) ListCourses(ctx context.Context, page, size int) ([]*models.Course, dto.PaginationInfo, error) {
	total, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting courses: %w", err)
	}

	courses, err := s.courseRepo.ListWithStudents(ctx, pageOf(page, size))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateCourse renames a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := validateID("course", course.ID); err != nil {
		return nil, err
	}
	course.Name = strings.TrimSpace(course.Name)
	if err := validateModel("course", course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courseRepo.GetWithStudents(ctx, course.ID)
}

// DeleteCourse deletes a course and its enrolments
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validateID("course", id); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}

// EnrollStudents adds students to a course. Already enrolled students are
// ignored; unknown ids abort the whole request.
func (s *courseServiceImpl) EnrollStudents(ctx context.Context, courseID int64, studentIDs []int64) (*models.Course, error) {
	if err := validateID("course", courseID); err != nil {
		return nil, err
	}
	if len(studentIDs) == 0 {
		return nil, apperrors.NewValidationError("invalid enrolment", map[string]interface{}{
			"studentIds": "at least one student is required",
		})
	}

	err := db.WithTransaction(ctx, s.conn, func(ctx context.Context, tx pgx.Tx) error {
		courseRepo := repositories.NewCourseRepository(tx)
		if _, err := courseRepo.GetByID(ctx, courseID); err != nil {
			return err
		}
		if err := checkStudents(ctx, repositories.NewStudentRepository(tx), studentIDs); err != nil {
			return err
		}
		return courseRepo.AddStudents(ctx, courseID, studentIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.courseRepo.GetWithStudents(ctx, courseID)
}

// WithdrawStudent removes one student from a course
func (s *courseServiceImpl) WithdrawStudent(ctx context.Context, courseID, studentID int64) error {
	if err := validateID("course", courseID); err != nil {
		return err
	}
	if err := validateID("student", studentID); err != nil {
		return err
	}
	return s.courseRepo.RemoveStudent(ctx, courseID, studentID)
}
