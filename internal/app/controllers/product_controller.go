package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/relcatalog/internal/app/models"
	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/app/services"
	"github.com/yigit/relcatalog/internal/middleware"
	"github.com/yigit/relcatalog/internal/pkg/helpers"
)

// ProductController handles products and their descriptions
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController
func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// CreateProduct creates a product together with its description
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product and description"
// @Success 201 {object} dto.APIResponse{data=models.Product}
// @Router /products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	product, err := c.productService.CreateProduct(ctx, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondCreated(ctx, product)
}

// GetProductByID retrieves a product with its description
// @Summary Get product details
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=models.Product}
// @Router /products/{id} [get]
func (c *ProductController) GetProductByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "product")
	if !ok {
		return
	}

	product, err := c.productService.GetProductByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, product)
}

// GetAllProducts lists products
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /products [get]
func (c *ProductController) GetAllProducts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	products, pagination, err := c.productService.ListProducts(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, products, pagination)
}

// UpdateProduct renames a product
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Product information"
// @Success 200 {object} dto.APIResponse{data=models.Product}
// @Router /products/{id} [put]
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "product")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	product, err := c.productService.UpdateProduct(ctx, &models.Product{ID: id, Name: req.Name})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, product)
}

// DeleteProduct deletes a product and its description
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /products/{id} [delete]
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "product")
	if !ok {
		return
	}

	if err := c.productService.DeleteProduct(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondDeleted(ctx, "Product deleted successfully")
}

// GetAllDescriptions lists descriptions, each with its product
// @Summary List descriptions
// @Tags descriptions
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /descriptions [get]
func (c *ProductController) GetAllDescriptions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	descriptions, pagination, err := c.productService.ListDescriptions(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondPage(ctx, descriptions, pagination)
}

// GetDescriptionByID retrieves a description with its product
// @Summary Get description details
// @Tags descriptions
// @Produce json
// @Param id path int true "Description ID"
// @Success 200 {object} dto.APIResponse{data=models.Description}
// @Router /descriptions/{id} [get]
func (c *ProductController) GetDescriptionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "description")
	if !ok {
		return
	}

	description, err := c.productService.GetDescriptionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, description)
}

// UpdateDescription replaces the text of a description
// @Summary Update a description
// @Tags descriptions
// @Accept json
// @Produce json
// @Param id path int true "Description ID"
// @Param request body dto.UpdateDescriptionRequest true "Description text"
// @Success 200 {object} dto.APIResponse{data=models.Description}
// @Router /descriptions/{id} [put]
func (c *ProductController) UpdateDescription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "description")
	if !ok {
		return
	}

	var req dto.UpdateDescriptionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	description, err := c.productService.UpdateDescription(ctx, id, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, description)
}

// DeleteDescription deletes a description and the product it describes
// @Summary Delete a description
// @Tags descriptions
// @Param id path int true "Description ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /descriptions/{id} [delete]
func (c *ProductController) DeleteDescription(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "description")
	if !ok {
		return
	}

	if err := c.productService.DeleteDescription(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondDeleted(ctx, "Description and product deleted successfully")
}
