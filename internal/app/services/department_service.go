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

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64, withEmployees bool) (*models.Department, error)
	ListDepartments(ctx context.Context, page, size int, withEmployees bool) ([]*models.Department, dto.PaginationInfo, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	department.Name = strings.TrimSpace(department.Name)
	if err := validateModel("department", department); err != nil {
		return err
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetDepartmentByID retrieves a department, optionally with its employees
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64, withEmployees bool) (*models.Department, error) {
	if err := validateID("department", id); err != nil {
		return nil, err
	}

	if withEmployees {
		return s.departmentRepo.GetWithEmployees(ctx, id)
	}
	return s.departmentRepo.GetByID(ctx, id)
}

// ListDepartments retrieves one page of departments
func (s *departmentServiceImpl) ListDepartments(ctx context.Context, page, size int, withEmployees bool) ([]*models.Department, dto.PaginationInfo, error) {
	total, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting departments: %w", err)
	}

	var departments []*models.Department
	if withEmployees {
		departments, err = s.departmentRepo.ListWithEmployees(ctx, pageOf(page, size))
	} else {
		departments, err = s.departmentRepo.List(ctx, pageOf(page, size))
	}
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateDepartment renames an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := validateID("department", department.ID); err != nil {
		return err
	}
	department.Name = strings.TrimSpace(department.Name)
	if err := validateModel("department", department); err != nil {
		return err
	}

	return s.departmentRepo.Update(ctx, department)
}

// DeleteDepartment deletes a department and, through the cascade, its employees
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if err := validateID("department", id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}
