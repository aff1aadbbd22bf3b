package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/repositories"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64, withCourses bool) (*models.Student, error)
	ListStudents(ctx context.Context, page, size int, withCourses bool) ([]*models.Student, dto.PaginationInfo, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	student.Name = strings.TrimSpace(student.Name)
	if err := validateModel("student", student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64, withCourses bool) (*models.Student, error) {
	if err := validateID("student", id); err != nil {
		return nil, err
	}
	if withCourses {
		return s.studentRepo.GetWithCourses(ctx, id)
	}
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int, withCourses bool) ([]*models.Student, dto.PaginationInfo, error) {
	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting students: %w", err)
	}

	var students []*models.Student
	if withCourses {
		students, err = s.studentRepo.ListWithCourses(ctx, pageOf(page, size))
	} else {
		students, err = s.studentRepo.List(ctx, pageOf(page, size))
	}
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, helpers.NewPaginationInfo(total, page, size), nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateID("student", student.ID); err != nil {
		return err
	}
	student.Name = strings.TrimSpace(student.Name)
	if err := validateModel("student", student); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent removes a student and its enrolments. Courses are kept.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := validateID("student", id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}
