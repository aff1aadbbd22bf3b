package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentsFor(t *testing.T) {
	testCases := []struct {
		name       string
		studentIDs []int64
		want       []Enrollment
	}{
		{name: "none", studentIDs: nil, want: []Enrollment{}},
		{name: "distinct", studentIDs: []int64{4, 2}, want: []Enrollment{{CourseID: 7, StudentID: 4}, {CourseID: 7, StudentID: 2}}},
		{name: "duplicates", studentIDs: []int64{4, 2, 4}, want: []Enrollment{{CourseID: 7, StudentID: 4}, {CourseID: 7, StudentID: 2}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EnrollmentsFor(7, tc.studentIDs))
		})
	}
}
