package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

func TestDeleteCategoryBlockedWhenReferenced(t *testing.T) {
	categories := &fakeCategoryStore{categories: []models.Category{{ID: 1, Name: "Retro Prints"}}}
	products := &fakeProductStore{products: []models.Product{{ID: 1, CategoryID: 1}}}
	svc := NewCategoryService(categories, products, nil)

	err := svc.DeleteCategory(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrCategoryInUse)
	assert.Empty(t, categories.deleted)
}

func TestDeleteCategoryAllowedWhenUnreferenced(t *testing.T) {
	categories := &fakeCategoryStore{categories: []models.Category{{ID: 1, Name: "Retro Prints"}}}
	products := &fakeProductStore{}
	snap := &fakeSnapshot{}
	svc := NewCategoryService(categories, products, snap)

	require.NoError(t, svc.DeleteCategory(context.Background(), 1))
	assert.Equal(t, []int{1}, categories.deleted)
	assert.Equal(t, 1, snap.invalidates)
}

// The count check can race with a concurrent product insert; the
// database RESTRICT constraint is the backstop and must map to the same
// error the check gives.
func TestDeleteCategoryForeignKeyBackstop(t *testing.T) {
	categories := &fakeCategoryStore{
		categories: []models.Category{{ID: 1}},
		deleteErr:  repository.ErrForeignKeyViolation,
	}
	svc := NewCategoryService(categories, &fakeProductStore{}, nil)

	err := svc.DeleteCategory(context.Background(), 1)
	assert.ErrorIs(t, err, utils.ErrCategoryInUse)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryStore{}, &fakeProductStore{}, nil)

	err := svc.DeleteCategory(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryStore{}, &fakeProductStore{}, nil)

	_, err := svc.CreateCategory(context.Background(), &CategoryInput{Name: "   "})
	assert.Error(t, err)
}

func TestCreateCategoryInvalidatesSnapshot(t *testing.T) {
	snap := &fakeSnapshot{}
	svc := NewCategoryService(&fakeCategoryStore{}, &fakeProductStore{}, snap)

	c, err := svc.CreateCategory(context.Background(), &CategoryInput{Name: "Photo Magnets", IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, 1, snap.invalidates)
}

func TestListCategoriesActiveFilterAndSearch(t *testing.T) {
	categories := &fakeCategoryStore{categories: []models.Category{
		{ID: 1, Name: "Retro Prints", IsActive: true},
		{ID: 2, Name: "Photo Magnets", IsActive: true},
		{ID: 3, Name: "Archived", IsActive: false},
	}}
	svc := NewCategoryService(categories, &fakeProductStore{}, nil)

	active := true
	page, err := svc.ListCategories(&ListCategoriesQuery{IsActive: &active, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Categories, 2)

	page, err = svc.ListCategories(&ListCategoriesQuery{Search: "photo", Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Categories, 1)
	assert.Equal(t, 2, page.Categories[0].ID)
}
