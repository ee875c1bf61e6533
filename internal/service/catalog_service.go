package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/magnetmantra/magnet_api/internal/cache"
	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// galleryMaxWindow is the single fetch window for the public gallery:
// the whole unlocked catalog comes back in one page of up to 100 rows
// and all refinement happens in memory.
const (
	galleryMaxWindow = 100
	galleryMinLimit  = 12
)

// PublicProductReader is the gateway surface the storefront needs.
type PublicProductReader interface {
	ListPublic(categoryID, limit int) ([]models.Product, int, error)
	GetByID(id int) (*models.Product, error)
}

// ActiveCategoryReader lists categories visible to the storefront.
type ActiveCategoryReader interface {
	ListActive() ([]models.Category, error)
}

// SnapshotCache is the optional Redis-backed catalog snapshot.
type SnapshotCache interface {
	Get(ctx context.Context) (*cache.CatalogSnapshot, error)
	Set(ctx context.Context, products []models.Product, total int) error
	Invalidate(ctx context.Context) error
}

// CatalogService serves the public storefront: gallery listing,
// product detail with size options, and active categories.
type CatalogService struct {
	products   PublicProductReader
	categories ActiveCategoryReader
	snapshot   SnapshotCache
}

// NewCatalogService constructs a CatalogService. snapshot may be nil,
// in which case every read goes straight to the database.
func NewCatalogService(products PublicProductReader, categories ActiveCategoryReader, snapshot SnapshotCache) *CatalogService {
	return &CatalogService{products: products, categories: categories, snapshot: snapshot}
}

// GalleryQuery carries the storefront's recognized list options.
// Zero values mean "all" and are omitted from the gateway predicate.
type GalleryQuery struct {
	CategoryID int
	Search     string
	Sort       catalog.SortKey
	Page       int
	Limit      int
}

// GalleryPage is one refined gallery window.
type GalleryPage struct {
	Products   []models.Product `json:"products"`
	TotalItems int              `json:"totalItems"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// ListGallery fetches the unlocked catalog, then applies the in-memory
// refinement stage: substring search, stable sort, pagination window.
func (s *CatalogService) ListGallery(ctx context.Context, q *GalleryQuery) (*GalleryPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = galleryMaxWindow
	}
	if q.Limit < galleryMinLimit {
		q.Limit = galleryMinLimit
	}
	if q.Limit > galleryMaxWindow {
		q.Limit = galleryMaxWindow
	}

	rows, err := s.fetchUnlocked(ctx)
	if err != nil {
		return nil, err
	}

	// Category filter is an equality predicate; applied here because the
	// cached snapshot holds the whole unlocked set.
	if q.CategoryID != 0 {
		filtered := make([]models.Product, 0, len(rows))
		for _, p := range rows {
			if p.CategoryID == q.CategoryID {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
	}

	rows = catalog.FilterProducts(rows, q.Search)
	rows = catalog.SortProducts(rows, q.Sort)

	total := len(rows)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	return &GalleryPage{
		Products:   rows[start:end],
		TotalItems: total,
		Page:       q.Page,
		Limit:      q.Limit,
	}, nil
}

// fetchUnlocked reads the unlocked catalog, preferring the Redis
// snapshot. Cache failures fall through to Postgres and are logged,
// never surfaced; a Postgres failure is an explicit error with no
// placeholder data substituted.
func (s *CatalogService) fetchUnlocked(ctx context.Context) ([]models.Product, error) {
	if s.snapshot != nil {
		if snap, err := s.snapshot.Get(ctx); err == nil {
			return snap.Products, nil
		}
	}

	rows, total, err := s.products.ListPublic(0, galleryMaxWindow)
	if err != nil {
		return nil, err
	}

	if s.snapshot != nil {
		if err := s.snapshot.Set(ctx, rows, total); err != nil {
			log.Warn().Err(err).Msg("Failed to store catalog snapshot")
		}
	}
	return rows, nil
}

// ProductDetail is a product plus its derived size options.
type ProductDetail struct {
	models.Product
	SizeOptions []string `json:"sizeOptions"`
}

// GetProduct returns one product for the storefront. Locked products
// are invisible on this path regardless of who asks; a gateway failure
// surfaces as-is rather than masquerading as a missing product.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*ProductDetail, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	if p.IsLocked {
		return nil, utils.ErrProductNotFound
	}
	return &ProductDetail{
		Product:     *p,
		SizeOptions: catalog.SizeOptions(p.CategoryName),
	}, nil
}

// ListCategories returns the active categories for storefront display.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListActive()
}

// RefreshCatalogCache re-reads the unlocked catalog from Postgres and
// overwrites the Redis snapshot. Called by the refresh worker.
func (s *CatalogService) RefreshCatalogCache(ctx context.Context) error {
	if s.snapshot == nil {
		return nil
	}
	rows, total, err := s.products.ListPublic(0, galleryMaxWindow)
	if err != nil {
		return err
	}
	return s.snapshot.Set(ctx, rows, total)
}
