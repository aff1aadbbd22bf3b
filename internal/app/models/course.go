package models

// Course owns the many-to-many set of enrolled students. The association is
// stored in course_students and has no identity of its own.
type Course struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=50"`

	// Relations (populated when needed)
	Students []*Student `json:"students,omitempty"`
}

// Enrollment is one row of the course_students join relation.
type Enrollment struct {
	CourseID  int64 `json:"courseId" db:"course_id"`
	StudentID int64 `json:"studentId" db:"student_id"`
}

// EnrollmentsFor pairs courseID with every distinct id in studentIDs,
// keeping the first occurrence order.
func EnrollmentsFor(courseID int64, studentIDs []int64) []Enrollment {
	seen := make(map[int64]struct{}, len(studentIDs))
	enrollments := make([]Enrollment, 0, len(studentIDs))
	for _, id := range studentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		enrollments = append(enrollments, Enrollment{CourseID: courseID, StudentID: id})
	}
	return enrollments
}
