package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/relcatalog/internal/app/models"
	appRepos "github.com/yigit/relcatalog/internal/app/repositories"
)

// CreateDefaultData inserts one example of every relationship pair into the
// tables that are still empty. Failures are collected and returned together;
// one failing pair does not stop the others.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedDepartments(ctx, repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default departments")
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedProducts(ctx, repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default products")
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedCourses(ctx, repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error creating default courses")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// --- Departments & Employees --- //
func seedDepartments(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	count, err := repos.DepartmentRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Info().Msg("Departments already exist, skipping creation")
		return nil
	}

	defaults := map[string][]string{
		"Engineering": {"Ada Lovelace", "Alan Turing"},
		"Sales":       {"Grace Hopper"},
	}
	for _, name := range []string{"Engineering", "Sales"} {
		department := &appModels.Department{Name: name}
		if err := repos.DepartmentRepository.Create(ctx, department); err != nil {
			return err
		}
		for _, employeeName := range defaults[name] {
			employee := &appModels.Employee{Name: employeeName, DepartmentID: department.ID}
			if err := repos.EmployeeRepository.Create(ctx, employee); err != nil {
				return err
			}
		}
	}
	lgr.Info().Msg("Default departments and employees created")
	return nil
}

// --- Products & Descriptions --- //
func seedProducts(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	count, err := repos.ProductRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Info().Msg("Products already exist, skipping creation")
		return nil
	}

	product := &appModels.Product{Name: "Desk Lamp"}
	description := &appModels.Description{Text: "Adjustable LED desk lamp with a weighted base."}
	if err := repos.ProductRepository.CreateWithDescription(ctx, product, description); err != nil {
		return err
	}
	lgr.Info().Int64("productID", product.ID).Msg("Default product created")
	return nil
}

// --- Students & Courses --- //
func seedCourses(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	count, err := repos.StudentRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Info().Msg("Students already exist, skipping creation")
		return nil
	}

	var ids []int64
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		student := &appModels.Student{Name: name}
		if err := repos.StudentRepository.Create(ctx, student); err != nil {
			return err
		}
		ids = append(ids, student.ID)
	}

	// Bob attends both courses
	if err := repos.CourseRepository.Create(ctx, &appModels.Course{Name: "Databases"}, ids[:2]); err != nil {
		return err
	}
	if err := repos.CourseRepository.Create(ctx, &appModels.Course{Name: "Networks"}, ids[1:]); err != nil {
		return err
	}
	lgr.Info().Msg("Default students and courses created")
	return nil
}
