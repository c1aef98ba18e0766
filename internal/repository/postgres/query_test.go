package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestBuildProductQuery_NoFilters(t *testing.T) {
	f := domain.ProductFilter{Page: 1, Limit: 12}

	q := buildProductQuery(f)

	assert.Empty(t, q.where)
	assert.Empty(t, q.args)
	assert.Equal(t, "created_at DESC", q.order)
	assert.Contains(t, q.selectSQL(), "LIMIT 12 OFFSET 0")
	assert.Equal(t, "SELECT COUNT(*) FROM products", q.countSQL())
}

func TestBuildProductQuery_AllFiltersConjunctive(t *testing.T) {
	f := domain.ProductFilter{
		Brand:       "Bosch",
		Category:    "Bijela tehnika",
		Subcategory: "Perilice rublja",
		MinPrice:    floatPtr(100),
		MaxPrice:    floatPtr(2000),
		InStock:     boolPtr(true),
		Featured:    boolPtr(false),
		Page:        1,
		Limit:       12,
	}

	q := buildProductQuery(f)

	assert.Equal(t,
		" WHERE brand = $1 AND category = $2 AND subcategory = $3 AND price >= $4 AND price <= $5 AND in_stock = $6 AND featured = $7",
		q.where,
	)
	assert.Equal(t,
		[]interface{}{"Bosch", "Bijela tehnika", "Perilice rublja", 100.0, 2000.0, true, false},
		q.args,
	)
}

func TestBuildProductQuery_SearchSubclause(t *testing.T) {
	f := domain.ProductFilter{Brand: "Bosch", Search: "perilica", Page: 1, Limit: 12}

	q := buildProductQuery(f)

	assert.Equal(t, " WHERE brand = $1 AND (name ILIKE $2 OR description ILIKE $2)", q.where)
	assert.Equal(t, []interface{}{"Bosch", "%perilica%"}, q.args)
}

func TestBuildProductQuery_WideSearchIncludesBrand(t *testing.T) {
	f := domain.ProductFilter{Search: "bosch", WideSearch: true, Page: 1, Limit: 12}

	q := buildProductQuery(f)

	assert.Equal(t, " WHERE (name ILIKE $1 OR description ILIKE $1 OR brand ILIKE $1)", q.where)
	assert.Equal(t, []interface{}{"%bosch%"}, q.args)
}

func TestBuildProductQuery_BlankSearchIgnored(t *testing.T) {
	f := domain.ProductFilter{Search: "   ", Page: 1, Limit: 12}

	q := buildProductQuery(f)

	assert.Empty(t, q.where)
	assert.Empty(t, q.args)
}

func TestBuildProductQuery_SortWhitelist(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		ascending bool
		order     string
	}{
		{"default", "", false, "created_at DESC"},
		{"price ascending", "price", true, "price ASC"},
		{"camelCase alias", "createdAt", false, "created_at DESC"},
		{"name descending", "name", false, "name DESC"},
		{"unknown column falls back", "evil; DROP TABLE products", true, "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.ProductFilter{SortBy: tt.sortBy, SortAscending: tt.ascending, Page: 1, Limit: 12}

			q := buildProductQuery(f)

			assert.Equal(t, tt.order, q.order)
		})
	}
}

func TestBuildProductQuery_Offset(t *testing.T) {
	f := domain.ProductFilter{Page: 3, Limit: 10}

	q := buildProductQuery(f)

	assert.Contains(t, q.selectSQL(), "LIMIT 10 OFFSET 20")
}

func TestBuildProductQuery_CountSharesWhere(t *testing.T) {
	f := domain.ProductFilter{Brand: "Miele", Page: 2, Limit: 10}

	q := buildProductQuery(f)

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE brand = $1", q.countSQL())
	assert.NotContains(t, q.countSQL(), "LIMIT")
}
