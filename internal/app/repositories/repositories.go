package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/relcatalog/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository  *DepartmentRepository
	EmployeeRepository    *EmployeeRepository
	ProductRepository     *ProductRepository
	DescriptionRepository *DescriptionRepository
	StudentRepository     *StudentRepository
	CourseRepository      *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		DepartmentRepository:  NewDepartmentRepository(conn),
		EmployeeRepository:    NewEmployeeRepository(conn),
		ProductRepository:     NewProductRepository(conn),
		DescriptionRepository: NewDescriptionRepository(conn),
		StudentRepository:     NewStudentRepository(conn),
		CourseRepository:      NewCourseRepository(conn),
	}
}

// Page selects a window of an ordered list
type Page struct {
	Offset uint64
	Limit  uint64
}

func (p Page) apply(q squirrel.SelectBuilder) squirrel.SelectBuilder {
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}
	return q
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// count runs a COUNT(*) over table
func count(ctx context.Context, conn db.DBTX, table string) (int64, error) {
	query, args, err := statementBuilder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building count query: %w", err)
	}

	var total int64
	if err := conn.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return total, nil
}

// relatedRow is one row of a batched relation query: the parent it belongs
// to, the child itself and the child's identity.
type relatedRow[C any] struct {
	parentID int64
	childID  int64
	child    C
}

// queryRelated runs a single batched statement for the children of many
// parents and groups the result by parent id. A child appearing twice under
// the same parent is kept once.
func queryRelated[C any](ctx context.Context, conn db.DBTX, q squirrel.SelectBuilder, scan func(pgx.Rows) (relatedRow[C], error)) (map[int64][]C, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building relation query: %w", err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing relation query: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]C)
	seen := make(map[[2]int64]struct{})
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning relation row: %w", err)
		}
		key := [2]int64{row.parentID, row.childID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		grouped[row.parentID] = append(grouped[row.parentID], row.child)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating relation rows: %w", err)
	}

	return grouped, nil
}

// childrenOf returns the grouped children of id, never nil, so a loaded but
// empty relation is distinguishable from one that was not loaded.
func childrenOf[C any](grouped map[int64][]C, id int64) []C {
	if children, ok := grouped[id]; ok {
		return children
	}
	return []C{}
}
