package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// CategoryStore is the gateway surface category management needs.
type CategoryStore interface {
	ListAdmin(filter *repository.CategoryFilter) (*repository.CategoryPage, error)
	GetByID(id int) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id int) error
}

// ProductCounter reports how many products reference a category.
type ProductCounter interface {
	CountByCategory(categoryID int) (int, error)
}

// CategoryService implements the back-office category operations.
type CategoryService struct {
	categories CategoryStore
	products   ProductCounter
	snapshot   SnapshotInvalidator
}

// NewCategoryService constructs a CategoryService. snapshot may be nil.
func NewCategoryService(categories CategoryStore, products ProductCounter, snapshot SnapshotInvalidator) *CategoryService {
	return &CategoryService{categories: categories, products: products, snapshot: snapshot}
}

// ListCategoriesQuery carries admin category list options.
type ListCategoriesQuery struct {
	IsActive *bool
	Search   string
	Page     int
}

// ListCategories returns one admin page; search refines it in memory.
func (s *CategoryService) ListCategories(q *ListCategoriesQuery) (*repository.CategoryPage, error) {
	page, err := s.categories.ListAdmin(&repository.CategoryFilter{
		IsActive: q.IsActive,
		Page:     q.Page,
		Limit:    adminPageSize,
	})
	if err != nil {
		return nil, err
	}
	page.Categories = catalog.FilterCategories(page.Categories, q.Search)
	return page, nil
}

// GetCategory returns one category.
func (s *CategoryService) GetCategory(id int) (*models.Category, error) {
	c, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// CreateCategory validates and inserts a category.
func (s *CategoryService) CreateCategory(ctx context.Context, in *CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	c := &models.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if err := s.categories.Create(c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

// UpdateCategory validates and updates a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int, in *CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	c := &models.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if err := s.categories.Update(c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrCategoryNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

// DeleteCategory deletes a category. A category still referenced by at
// least one product must not be deleted; the check here gives a clean
// error and the RESTRICT foreign key backs it up against races.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	n, err := s.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return utils.ErrCategoryInUse
	}

	if err := s.categories.Delete(id); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return utils.ErrCategoryInUse
		}
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrCategoryNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	_ = s.snapshot.Invalidate(ctx)
}
