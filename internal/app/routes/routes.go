package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/relcatalog/internal/app/controllers"
	"github.com/yigit/relcatalog/internal/app/models/dto"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Department *controllers.DepartmentController
	Employee   *controllers.EmployeeController
	Product    *controllers.ProductController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	// Departments own their employees
	departments := v1.Group("/departments")
	{
		departments.GET("", ctrl.Department.GetAllDepartments)
		departments.POST("", ctrl.Department.CreateDepartment)
		departments.GET("/:id", ctrl.Department.GetDepartmentByID)
		departments.PUT("/:id", ctrl.Department.UpdateDepartment)
		departments.DELETE("/:id", ctrl.Department.DeleteDepartment)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", ctrl.Employee.GetAllEmployees)
		employees.POST("", ctrl.Employee.CreateEmployee)
		employees.GET("/:id", ctrl.Employee.GetEmployeeByID)
		employees.PUT("/:id", ctrl.Employee.UpdateEmployee)
		employees.DELETE("/:id", ctrl.Employee.DeleteEmployee)
	}

	// Products and descriptions are one-to-one; deleting either side deletes both
	products := v1.Group("/products")
	{
		products.GET("", ctrl.Product.GetAllProducts)
		products.POST("", ctrl.Product.CreateProduct)
		products.GET("/:id", ctrl.Product.GetProductByID)
		products.PUT("/:id", ctrl.Product.UpdateProduct)
		products.DELETE("/:id", ctrl.Product.DeleteProduct)
	}

	descriptions := v1.Group("/descriptions")
	{
		descriptions.GET("", ctrl.Product.GetAllDescriptions)
		descriptions.GET("/:id", ctrl.Product.GetDescriptionByID)
		descriptions.PUT("/:id", ctrl.Product.UpdateDescription)
		descriptions.DELETE("/:id", ctrl.Product.DeleteDescription)
	}

	students := v1.Group("/students")
	{
		students.GET("", ctrl.Student.GetAllStudents)
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("/:id", ctrl.Student.GetStudentByID)
		students.PUT("/:id", ctrl.Student.UpdateStudent)
		students.DELETE("/:id", ctrl.Student.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", ctrl.Course.GetAllCourses)
		courses.POST("", ctrl.Course.CreateCourse)
		courses.GET("/:id", ctrl.Course.GetCourseByID)
		courses.PUT("/:id", ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", ctrl.Course.DeleteCourse)

		// Enrolment
		courses.POST("/:id/students", ctrl.Course.EnrollStudents)
		courses.DELETE("/:id/students/:studentId", ctrl.Course.WithdrawStudent)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
