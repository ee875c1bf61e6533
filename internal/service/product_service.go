package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// adminPageSize is fixed for every back-office list.
const adminPageSize = 10

// ProductStore is the gateway surface product management needs.
type ProductStore interface {
	ListAdmin(filter *repository.ProductFilter) (*repository.ProductPage, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SetLocked(id int, locked bool) error
	Delete(id int) error
}

// SnapshotInvalidator drops the public catalog snapshot after a write.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ProductService implements the back-office product operations.
type ProductService struct {
	products ProductStore
	snapshot SnapshotInvalidator
}

// NewProductService constructs a ProductService. snapshot may be nil.
func NewProductService(products ProductStore, snapshot SnapshotInvalidator) *ProductService {
	return &ProductService{products: products, snapshot: snapshot}
}

// ListProductsQuery carries admin product list options.
type ListProductsQuery struct {
	CategoryID int
	IsLocked   *bool
	Search     string
	Page       int
}

// ListProducts returns one admin page. The lock/category filters map to
// gateway predicates; search refines the fetched page in memory.
func (s *ProductService) ListProducts(q *ListProductsQuery) (*repository.ProductPage, error) {
	page, err := s.products.ListAdmin(&repository.ProductFilter{
		CategoryID: q.CategoryID,
		IsLocked:   q.IsLocked,
		Page:       q.Page,
		Limit:      adminPageSize,
	})
	if err != nil {
		return nil, err
	}
	page.Products = catalog.FilterProducts(page.Products, q.Search)
	return page, nil
}

// GetProduct returns one product, locked or not.
func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Price            float64  `json:"price"`
	CategoryID       int      `json:"categoryId" binding:"required"`
	Rating           float64  `json:"rating"`
	Images           []string `json:"images"`
	IsLocked         bool     `json:"isLocked"`
}

func validateProductInput(in *ProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("title is required")
	}
	if in.CategoryID == 0 {
		return errors.New("categoryId is required")
	}
	if in.Price < 0 || in.Price > models.MaxProductPrice {
		return utils.ErrPriceOutOfRange
	}
	if in.Rating < 0 || in.Rating > models.MaxProductRating {
		return utils.ErrRatingOutOfRange
	}
	if len(in.Images) > models.MaxProductImages {
		return utils.ErrTooManyImages
	}
	return nil
}

// CreateProduct validates and inserts a product.
func (s *ProductService) CreateProduct(ctx context.Context, in *ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	p := &models.Product{
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Rating:           in.Rating,
		Images:           in.Images,
		IsLocked:         in.IsLocked,
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// UpdateProduct validates and updates a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, in *ProductInput) (*models.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	p := &models.Product{
		ID:               id,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Price:            in.Price,
		CategoryID:       in.CategoryID,
		Rating:           in.Rating,
		Images:           in.Images,
		IsLocked:         in.IsLocked,
	}
	if err := s.products.Update(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// SetLocked toggles public visibility of a product.
func (s *ProductService) SetLocked(ctx context.Context, id int, locked bool) error {
	if err := s.products.SetLocked(id, locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteProduct deletes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	if err := s.snapshot.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog snapshot")
	}
}
