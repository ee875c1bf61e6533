package catalog

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnetmantra/magnet_api/internal/models"
)

func sortFixture() []models.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: 1, Title: "Banana Magnet", Price: 12.50, Rating: 4.5, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 2, Title: "apple magnet", Price: 8.00, Rating: 3.0, CreatedAt: base.Add(1 * time.Hour)},
		{ID: 3, Title: "Cherry Magnet", Price: 12.50, Rating: 5.0, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Title: "Date Magnet", Price: 20.00, Rating: 4.5, CreatedAt: base.Add(4 * time.Hour)},
	}
}

func ids(items []models.Product) []int {
	out := make([]int, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestSortProductsPriceLow(t *testing.T) {
	out := SortProducts(sortFixture(), SortPriceLow)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Price, out[i].Price)
	}
	// Equal prices keep input order.
	assert.Equal(t, []int{2, 1, 3, 4}, ids(out))
}

func TestSortProductsPriceHigh(t *testing.T) {
	out := SortProducts(sortFixture(), SortPriceHigh)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Price, out[i].Price)
	}
	assert.Equal(t, []int{4, 1, 3, 2}, ids(out))
}

func TestSortProductsRatingDescending(t *testing.T) {
	out := SortProducts(sortFixture(), SortRating)
	assert.Equal(t, []int{3, 1, 4, 2}, ids(out))
}

func TestSortProductsNameIgnoresCase(t *testing.T) {
	out := SortProducts(sortFixture(), SortName)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(out))
}

func TestSortProductsDefaultNewestFirst(t *testing.T) {
	newest := SortProducts(sortFixture(), SortNewest)
	assert.Equal(t, []int{4, 1, 3, 2}, ids(newest))

	// Unrecognized keys fall back to the same ordering.
	fallback := SortProducts(sortFixture(), SortKey("bogus"))
	assert.Equal(t, ids(newest), ids(fallback))
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	items := sortFixture()
	before := ids(items)
	_ = SortProducts(items, SortPriceLow)
	assert.Equal(t, before, ids(items))
}

func TestSortProductsIsPermutation(t *testing.T) {
	items := sortFixture()
	rng := rand.New(rand.NewSource(42))

	for _, key := range []SortKey{SortPriceLow, SortPriceHigh, SortRating, SortName, SortNewest} {
		rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		out := SortProducts(items, key)
		require.Len(t, out, len(items))
		assert.ElementsMatch(t, ids(items), ids(out), "key %s", key)
	}
}

func TestValidSortKey(t *testing.T) {
	for _, key := range []SortKey{SortPriceLow, SortPriceHigh, SortRating, SortName, SortNewest} {
		assert.True(t, ValidSortKey(key))
	}
	assert.False(t, ValidSortKey(SortKey("price")))
	assert.False(t, ValidSortKey(SortKey("")))
}
