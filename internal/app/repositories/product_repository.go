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
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new product repository
func NewProductRepository(conn db.DBTX) *ProductRepository {
	return &ProductRepository{
		db: conn,
		sb: statementBuilder(),
	}
}

// CreateWithDescription inserts a product and its description in one
// transaction. Both IDs are set on success.
func (r *ProductRepository) CreateWithDescription(ctx context.Context, product *models.Product, description *models.Description) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.sb.Insert("products").
			Columns("name").
			Values(product.Name).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("error building insert product query: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&product.ID); err != nil {
			return fmt.Errorf("error creating product: %w", err)
		}

		description.ProductID = product.ID
		if err := NewDescriptionRepository(tx).Create(ctx, description); err != nil {
			return err
		}

		product.Description = description
		return nil
	})
}

// GetByID retrieves a product without its description
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query, args, err := r.sb.Select("id", "name").
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get product query: %w", err)
	}

	var product models.Product
	if err := r.db.QueryRow(ctx, query, args...).Scan(&product.ID, &product.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}
	return &product, nil
}

// GetWithDescription retrieves a product and its description in one
// statement. A product whose description is missing is still returned, with
// Description nil.
func (r *ProductRepository) GetWithDescription(ctx context.Context, id int64) (*models.Product, error) {
	query, args, err := r.sb.Select("p.id", "p.name", "COALESCE(d.id, 0)", "COALESCE(d.text, '')").
		From("products p").
		LeftJoin("descriptions d ON d.product_id = p.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building get product query: %w", err)
	}

	var product models.Product
	var description models.Description
	err = r.db.QueryRow(ctx, query, args...).Scan(&product.ID, &product.Name, &description.ID, &description.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("error retrieving product: %w", err)
	}

	if description.ID != 0 {
		description.ProductID = product.ID
		product.Description = &description
	}
	return &product, nil
}

// List retrieves one page of products ordered by id
func (r *ProductRepository) List(ctx context.Context, page Page) ([]*models.Product, error) {
	query, args, err := page.apply(r.sb.Select("id", "name").
		From("products").
		OrderBy("id")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list products query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// Count returns the number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "products")
}

// Update renames a product
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query, args, err := r.sb.Update("products").
		Set("name", product.Name).
		Where(squirrel.Eq{"id": product.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update product query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}

// Delete deletes a product. Its description goes with it through the
// foreign key cascade.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete product query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}
