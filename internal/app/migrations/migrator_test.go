package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	b, err := fs.ReadFile(Files(), name)
	require.NoError(t, err)
	up, _, found := strings.Cut(string(b), "---- create above / drop below ----")
	require.True(t, found, "%s has no down section", name)
	return up
}

func TestMigrationsAreOrdered(t *testing.T) {
	entries, err := fs.ReadDir(Files(), ".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"001_create_departments_employees.sql",
		"002_create_products_descriptions.sql",
		"003_create_students_courses.sql",
	}, names)
}

func TestEmployeeRequiresDepartmentAndCascades(t *testing.T) {
	up := readMigration(t, "001_create_departments_employees.sql")
	assert.Contains(t, up, "department_id BIGINT NOT NULL")
	assert.Contains(t, up, "REFERENCES departments (id) ON DELETE CASCADE")
	assert.Contains(t, up, "name VARCHAR(20) NOT NULL")
}

func TestDescriptionIsOneToOne(t *testing.T) {
	up := readMigration(t, "002_create_products_descriptions.sql")
	assert.Contains(t, up, "product_id BIGINT NOT NULL")
	assert.Contains(t, up, "CONSTRAINT descriptions_product_id_key UNIQUE")
	assert.Contains(t, up, "REFERENCES products (id) ON DELETE CASCADE")
}

func TestEnrollmentHasNoIdentity(t *testing.T) {
	up := readMigration(t, "003_create_students_courses.sql")
	assert.Contains(t, up, "PRIMARY KEY (course_id, student_id)")
	assert.Equal(t, 2, strings.Count(up, "ON DELETE CASCADE"))

	joinTable := up[strings.Index(up, "CREATE TABLE course_students"):]
	assert.NotContains(t, joinTable[:strings.Index(joinTable, ");")], "BIGSERIAL")
}
