package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/repositories"
	"github.com/yigit/relcatalog/internal/db"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// Services defined in this package:
// - DepartmentService: departments and their employees
// - EmployeeService: employees, always loaded with their department
// - ProductService: products and their one-to-one descriptions
// - StudentService: students and the courses they attend
// - CourseService: courses, their students and enrolment
type Services struct {
	DepartmentService DepartmentService
	EmployeeService   EmployeeService
	ProductService    ProductService
	StudentService    StudentService
	CourseService     CourseService
}

// NewServices wires every service on top of repos. conn is used to open
// transactions spanning several repository calls.
func NewServices(conn db.DBTX, repos *repositories.Repositories) *Services {
	return &Services{
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		EmployeeService:   NewEmployeeService(repos.EmployeeRepository, repos.DepartmentRepository),
		ProductService:    NewProductService(repos.ProductRepository, repos.DescriptionRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		CourseService:     NewCourseService(conn, repos.CourseRepository),
	}
}

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match the
// request bodies.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateModel runs the struct tags of a model and turns failures into a
// validation error carrying per-field messages.
func validateModel(entity string, v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return apperrors.NewValidationError("invalid "+entity, dto.ValidationMessages(err))
	}
	return nil
}

func validateID(entity string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid %s ID", apperrors.ErrValidationFailed, entity)
	}
	return nil
}

func pageOf(page, size int) repositories.Page {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return repositories.Page{Offset: offset, Limit: limit}
}
