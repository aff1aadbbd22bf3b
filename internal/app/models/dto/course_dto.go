package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	Name string `json:"name" binding:"required,max=150"`
}

// CreateCourseRequest represents course creation data. StudentIDs optionally
// enrolls existing students in the same transaction.
type CreateCourseRequest struct {
	Name       string  `json:"name" binding:"required,max=50"`
	StudentIDs []int64 `json:"studentIds" binding:"omitempty,unique,dive,gt=0"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// EnrollStudentsRequest adds students to a course
type EnrollStudentsRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1,unique,dive,gt=0"`
}
