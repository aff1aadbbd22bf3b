package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/services"
	"github.com/yigit/relcatalog/internal/middleware"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// CreateEmployee handles employee creation
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=models.Employee}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx, &models.Employee{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, employee)
}

// GetEmployeeByID retrieves an employee with its department
// @Summary Get employee details
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=models.Employee}
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "employee")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, employee)
}

// GetAllEmployees lists employees with their departments
// @Summary List employees
// @Tags employees
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	employees, pagination, err := c.employeeService.ListEmployees(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, employees, pagination)
}

// UpdateEmployee updates the name and department of an employee
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Employee information"
// @Success 200 {object} dto.APIResponse{data=models.Employee}
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "employee")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx, &models.Employee{
		ID:           id,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, employee)
}

// DeleteEmployee deletes an employee
// @Summary Delete an employee
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "employee")
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondDeleted(ctx, "Employee deleted successfully")
}
