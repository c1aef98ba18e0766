package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_CeilDivision(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result", 1, 12, 0, 0, false, false},
		{"exact single page", 1, 12, 12, 1, false, false},
		{"one over page boundary", 1, 12, 13, 2, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last partial page", 3, 10, 25, 3, false, true},
		{"single row", 1, 12, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.page, page.CurrentPage)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalProducts)
			assert.Equal(t, tt.hasNext, page.HasNext)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Equal(t, tt.limit, page.Limit)
		})
	}
}

func TestProductFilter_Normalize(t *testing.T) {
	f := ProductFilter{
		Brand:       "all",
		Category:    "all",
		Subcategory: "all",
		Page:        0,
		Limit:       0,
	}

	f.Normalize(12, 100)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 12, f.Limit)
	assert.Empty(t, f.Brand)
	assert.Empty(t, f.Category)
	assert.Empty(t, f.Subcategory)
}

func TestProductFilter_NormalizeClampsLimit(t *testing.T) {
	f := ProductFilter{Page: 3, Limit: 5000}

	f.Normalize(12, 100)

	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 100, f.Limit)
	assert.Equal(t, 200, f.Offset())
}

func TestProductFilter_NormalizeKeepsConcreteValues(t *testing.T) {
	f := ProductFilter{Brand: "Bosch", Category: "Bijela tehnika", Page: 2, Limit: 10}

	f.Normalize(12, 100)

	assert.Equal(t, "Bosch", f.Brand)
	assert.Equal(t, "Bijela tehnika", f.Category)
	assert.Equal(t, 10, f.Offset())
}
