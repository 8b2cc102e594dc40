package service

import (
	"context"
	"log"
	"strings"

	"github.com/dcamacho/barkeep-api/internal/domain/entity"
	"github.com/dcamacho/barkeep-api/internal/domain/repository"
	"github.com/dcamacho/barkeep-api/pkg/apperror"
	"github.com/dcamacho/barkeep-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Title       string
	Category    string
	Price       float64
	Stock       int
	MinStock    int
	Description *string
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.NewBadRequestError("Title is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}
	if input.Stock < 0 || input.MinStock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	product := &entity.Product{
		Title:       title,
		Category:    strings.TrimSpace(input.Category),
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Description: input.Description,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		log.Printf("Error creating product: %v", err)
		return nil, apperror.NewBackendError("create product", err)
	}
	return product, nil
}

// UpdateProductInput represents the update product input. Nil fields
// are left unchanged.
type UpdateProductInput struct {
	Title       *string
	Category    *string
	Price       *float64
	Stock       *int
	MinStock    *int
	Description *string
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperror.NewBadRequestError("Title cannot be empty")
		}
		product.Title = title
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewBadRequestError("Stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		if *input.MinStock < 0 {
			return nil, apperror.NewBadRequestError("Minimum stock cannot be negative")
		}
		product.MinStock = *input.MinStock
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return nil, apperror.NewBackendError("update product", err)
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error loading product %s: %v", id, err)
		return nil, apperror.NewBackendError("load product", err)
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return apperror.NewBackendError("delete product", err)
	}
	return nil
}

// ListProducts lists products with optional search, category filter and
// paging, ordered by title.
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = &repository.ProductFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return nil, apperror.NewBackendError("list products", err)
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// ListAvailable returns in-stock products ordered by title, the feed
// for the sales screen.
func (s *ProductService) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListAvailable(ctx)
	if err != nil {
		log.Printf("Error listing available products: %v", err)
		return nil, apperror.NewBackendError("list available products", err)
	}
	return products, nil
}

// ListLowStock returns products at or below their minimum stock
func (s *ProductService) ListLowStock(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		log.Printf("Error listing low stock products: %v", err)
		return nil, apperror.NewBackendError("list low stock products", err)
	}
	return products, nil
}
