package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

func TestPolicy_CheckWrite(t *testing.T) {
	assert.ErrorIs(t, NewPolicy(false).CheckWrite(), domain.ErrStoreUnavailable)
	assert.NoError(t, NewPolicy(true).CheckWrite())
}

func TestPolicy_BrandByName_CaseInsensitive(t *testing.T) {
	policy := NewPolicy(false)

	brand, err := policy.BrandByName("bosch")

	require.NoError(t, err)
	assert.Equal(t, "Bosch", brand.Name)
}

func TestPolicy_BrandByName_NotFound(t *testing.T) {
	policy := NewPolicy(false)

	brand, err := policy.BrandByName("Nepoznati")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, brand)
}

func TestPolicy_CategoryByName(t *testing.T) {
	policy := NewPolicy(false)

	category, err := policy.CategoryByName("Bijela tehnika")

	require.NoError(t, err)
	assert.Equal(t, "Bijela tehnika", category.Name)
	assert.NotEmpty(t, category.Subcategories)

	_, err = policy.CategoryByName("Nepostojeća")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPolicy_Subcategories_FlattenAllCategories(t *testing.T) {
	policy := NewPolicy(false)

	subs := policy.Subcategories()

	require.NotEmpty(t, subs)
	for _, sub := range subs {
		assert.NotEmpty(t, sub.Name)
		assert.NotEmpty(t, sub.CategoryName)
	}
}

func TestPolicy_FilterOptions_DerivedFromDataset(t *testing.T) {
	policy := NewPolicy(false)

	options := policy.FilterOptions()

	assert.Len(t, options.Brands, len(policy.Brands()))
	assert.Len(t, options.Categories, len(policy.Categories()))
	assert.Contains(t, options.Brands, "Bosch")
	assert.Contains(t, options.Categories, "Namještaj")
	assert.Less(t, options.PriceRange.Min, options.PriceRange.Max)
}

func TestPolicy_PlaceholderProduct_EchoesID(t *testing.T) {
	policy := NewPolicy(false)

	p := policy.PlaceholderProduct("abc-123")

	assert.Equal(t, "abc-123", p.ID)
	assert.Equal(t, "Bosch", p.Brand)
	assert.True(t, p.InStock)
}

func TestPolicy_PlaceholderListing_SingleProduct(t *testing.T) {
	policy := NewPolicy(false)

	products, total := policy.PlaceholderListing()

	assert.Len(t, products, 1)
	assert.Equal(t, 1, total)
}
