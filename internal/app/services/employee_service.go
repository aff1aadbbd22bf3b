package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/repositories"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// EmployeeService defines the interface for employee-related operations.
// Every employee it returns carries its department.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	ListEmployees(ctx context.Context, page, size int) ([]*models.Employee, dto.PaginationInfo, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo   *repositories.EmployeeRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo *repositories.EmployeeRepository, departmentRepo *repositories.DepartmentRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *employeeServiceImpl) validateEmployee(employee *models.Employee) error {
	employee.Name = strings.TrimSpace(employee.Name)
	return validateModel("employee", employee)
}

func (s *employeeServiceImpl) ensureDepartment(ctx context.Context, departmentID int64) error {
	exists, err := s.departmentRepo.Exists(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// CreateEmployee creates an employee in an existing department and returns
// it with the department loaded
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := s.validateEmployee(employee); err != nil {
		return nil, err
	}
	if err := s.ensureDepartment(ctx, employee.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return s.employeeRepo.GetByID(ctx, employee.ID)
}

// GetEmployeeByID retrieves an employee with its department
func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if err := validateID("employee", id); err != nil {
		return nil, err
	}
	return s.employeeRepo.GetByID(ctx, id)
}

// ListEmployees retrieves one page of employees with their departments
func (s *employeeServiceImpl) ListEmployees(ctx context.Context, page, size int) ([]*models.Employee, dto.PaginationInfo, error) {
	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting employees: %w", err)
	}

	employees, err := s.employeeRepo.ListWithDepartment(ctx, pageOf(page, size))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving employees: %w", err)
	}
	return employees, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateEmployee changes the name and department of an employee
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := validateID("employee", employee.ID); err != nil {
		return nil, err
	}
	if err := s.validateEmployee(employee); err != nil {
		return nil, err
	}
	if err := s.ensureDepartment(ctx, employee.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return s.employeeRepo.GetByID(ctx, employee.ID)
}

// DeleteEmployee deletes an employee
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := validateID("employee", id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
