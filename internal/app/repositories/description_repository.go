package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/db"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/dberrors"
)

const (
	descriptionProductKey = "descriptions_product_id_key"
	descriptionProductFK  = "descriptions_product_id_fkey"
)

// DescriptionRepository handles database operations for descriptions
type DescriptionRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewDescriptionRepository creates a new description repository
func NewDescriptionRepository(conn db.DBTX) *DescriptionRepository {
	return &DescriptionRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

func (r *DescriptionRepository) withProduct() squirrel.SelectBuilder {
	return r.sb.Select("d.id", "d.text", "d.product_id", "p.id", "p.name").
		From("descriptions d").
		Join("products p ON p.id = d.product_id")
}

func scanDescriptionWithProduct(row pgx.Row) (*models.Description, error) {
	var d models.Description
	var p models.Product
	if err := row.Scan(&d.ID, &d.Text, &d.ProductID, &p.ID, &p.Name); err != nil {
		return nil, err
	}
	d.Product = &p
	return &d, nil
}

// Create attaches a description to an existing product
func (r *DescriptionRepository) Create(ctx context.Context, description *models.Description) error {
	query, args, err := r.sb.Insert("descriptions").
		Columns("text", "product_id").
		Values(description.Text, description.ProductID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert description query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&description.ID); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, descriptionProductKey):
			return apperrors.ErrDescriptionAlreadyExists
		case dberrors.IsForeignKeyViolation(err, descriptionProductFK):
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("error creating description: %w", err)
	}
	return nil
}

// GetByID retrieves a description and its product
func (r *DescriptionRepository) GetByID(ctx context.Context, id int64) (*models.Description, error) {
	query, args, err := r.withProduct().
		Where(squirrel.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get description query: %w", err)
	}

	description, err := scanDescriptionWithProduct(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDescriptionNotFound
		}
		return nil, fmt.Errorf("error retrieving description: %w", err)
	}
	return description, nil
}

// ListWithProduct retrieves one page of descriptions, each with its product,
// in a single statement.
func (r *DescriptionRepository) ListWithProduct(ctx context.Context, page Page) ([]*models.Description, error) {
	query, args, err := page.apply(r.withProduct().OrderBy("d.id")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list descriptions query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing descriptions: %w", err)
	}
	defer rows.Close()

	descriptions := []*models.Description{}
	for rows.Next() {
		description, err := scanDescriptionWithProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning description: %w", err)
		}
		descriptions = append(descriptions, description)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating descriptions: %w", err)
	}
	return descriptions, nil
}

// Count returns the number of descriptions
func (r *DescriptionRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "descriptions")
}

// UpdateText replaces the text of a description
func (r *DescriptionRepository) UpdateText(ctx context.Context, id int64, text string) error {
	query, args, err := r.sb.Update("descriptions").
		Set("text", text).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update description query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating description: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDescriptionNotFound
	}
	return nil
}

// Delete removes a description together with its product. The product row
// is deleted and the cascade on descriptions.product_id removes the
// description, so neither side outlives the other.
func (r *DescriptionRepository) Delete(ctx context.Context, id int64) error {
	// placeholders stay as ? until the outer statement is rendered
	sub, subArgs, err := squirrel.Select("product_id").
		From("descriptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building description lookup: %w", err)
	}

	query, args, err := r.sb.Delete("products").
		Where("id = ("+sub+")", subArgs...).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete description query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting description: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDescriptionNotFound
	}
	return nil
}
