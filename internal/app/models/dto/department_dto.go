package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

// CreateEmployeeRequest represents employee creation data
type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// UpdateEmployeeRequest represents employee update data. The department can
// be changed but never cleared.
type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}
