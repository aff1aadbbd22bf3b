package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/repositories"
	"github.com/yigit/relcatalog/internal/pkg/apperrors"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// ProductService defines the interface for products and their descriptions
type ProductService interface {
	CreateProduct(ctx context.Context, name, description string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, dto.PaginationInfo, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListDescriptions(ctx context.Context, page, size int) ([]*models.Description, dto.PaginationInfo, error)
	GetDescriptionByID(ctx context.Context, id int64) (*models.Description, error)
	UpdateDescription(ctx context.Context, id int64, text string) (*models.Description, error)
	DeleteDescription(ctx context.Context, id int64) error
}

// productServiceImpl implements the ProductService interface
type productServiceImpl struct {
	productRepo     *repositories.ProductRepository
	descriptionRepo *repositories.DescriptionRepository
}

// NewProductService creates a new product service instance
func NewProductService(productRepo *repositories.ProductRepository, descriptionRepo *repositories.DescriptionRepository) ProductService {
	return &productServiceImpl{
		productRepo:     productRepo,
		descriptionRepo: descriptionRepo,
	}
}

// CreateProduct creates a product together with its description
func (s *productServiceImpl) CreateProduct(ctx context.Context, name, text string) (*models.Product, error) {
	product := &models.Product{Name: strings.TrimSpace(name)}
	if err := validateModel("product", product); err != nil {
		return nil, err
	}
	description := &models.Description{Text: strings.TrimSpace(text)}
	if description.Text == "" {
		return nil, apperrors.NewValidationError("invalid product", map[string]interface{}{
			"description": "description is required",
		})
	}

	if err := s.productRepo.CreateWithDescription(ctx, product, description); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}
	return product, nil
}

// GetProductByID retrieves a product with its description
func (s *productServiceImpl) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	if err := validateID("product", id); err != nil {
		return nil, err
	}
	return s.productRepo.GetWithDescription(ctx, id)
}

// ListProducts retrieves one page of products
func (s *productServiceImpl) ListProducts(ctx context.Context, page, size int) ([]*models.Product, dto.PaginationInfo, error) {
	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting products: %w", err)
	}

	products, err := s.productRepo.List(ctx, pageOf(page, size))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving products: %w", err)
	}
	return products, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateProduct renames a product and returns it with its description
func (s *productServiceImpl) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := validateID("product", product.ID); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(product.Name)
	if err := validateModel("product", product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetWithDescription(ctx, product.ID)
}

// DeleteProduct deletes a product and its description
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	if err := validateID("product", id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListDescriptions retrieves one page of descriptions with their products
func (s *productServiceImpl) ListDescriptions(ctx context.Context, page, size int) ([]*models.Description, dto.PaginationInfo, error) {
	total, err := s.descriptionRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting descriptions: %w", err)
	}

	descriptions, err := s.descriptionRepo.ListWithProduct(ctx, pageOf(page, size))
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving descriptions: %w", err)
	}
	return descriptions, helpers.NewPaginationInfo(total, page, size), nil
}

// GetDescriptionByID retrieves a description with its product
func (s *productServiceImpl) GetDescriptionByID(ctx context.Context, id int64) (*models.Description, error) {
	if err := validateID("description", id); err != nil {
		return nil, err
	}
	return s.descriptionRepo.GetByID(ctx, id)
}

// UpdateDescription replaces the text of a description
func (s *productServiceImpl) UpdateDescription(ctx context.Context, id int64, text string) (*models.Description, error) {
	if err := validateID("description", id); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("invalid description", map[string]interface{}{
			"text": "text is required",
		})
	}

	if err := s.descriptionRepo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}
	return s.descriptionRepo.GetByID(ctx, id)
}

// DeleteDescription deletes a description together with its product
func (s *productServiceImpl) DeleteDescription(ctx context.Context, id int64) error {
	if err := validateID("description", id); err != nil {
		return err
	}
	return s.descriptionRepo.Delete(ctx, id)
}
