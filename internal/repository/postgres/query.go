package postgres

import (
	"fmt"
	"strings"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// sortColumns whitelists the sortable product columns. Keys include the
// camelCase aliases the storefront sends. Anything else falls back to the
// default ordering instead of failing the request.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"updatedAt":  "updated_at",
	"price":      "price",
	"name":       "name",
	"brand":      "brand",
	"category":   "category",
	"featured":   "featured",
}

const productColumns = `id, name, sku, description, price, original_price, brand, category, subcategory,
		images, specifications, in_stock, featured, tags, warranty, created_at, updated_at`

// productQuery is the store-specific translation of a ProductFilter: a WHERE
// clause with positional args shared by the page and count statements, plus
// ordering and the half-open row range.
type productQuery struct {
	where  string
	args   []interface{}
	order  string
	limit  int
	offset int
}

// buildProductQuery translates a normalized filter into SQL. Pure; no side
// effects. Every present filter is ANDed; the free-text search is an OR
// subclause over name and description (and brand for the admin-wide search)
// nested inside the conjunction.
func buildProductQuery(f domain.ProductFilter) productQuery {
	var (
		conds []string
		args  []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Brand != "" {
		conds = append(conds, "brand = "+arg(f.Brand))
	}
	if f.Category != "" {
		conds = append(conds, "category = "+arg(f.Category))
	}
	if f.Subcategory != "" {
		conds = append(conds, "subcategory = "+arg(f.Subcategory))
	}
	if f.MinPrice != nil {
		conds = append(conds, "price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "price <= "+arg(*f.MaxPrice))
	}
	if f.InStock != nil {
		conds = append(conds, "in_stock = "+arg(*f.InStock))
	}
	if f.Featured != nil {
		conds = append(conds, "featured = "+arg(*f.Featured))
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		p := arg("%" + term + "%")
		if f.WideSearch {
			conds = append(conds, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s OR brand ILIKE %s)", p, p, p))
		} else {
			conds = append(conds, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s)", p, p))
		}
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if ok && f.SortAscending {
		direction = "ASC"
	}

	return productQuery{
		where:  where,
		args:   args,
		order:  column + " " + direction,
		limit:  f.Limit,
		offset: f.Offset(),
	}
}

// selectSQL returns the page statement
func (q productQuery) selectSQL() string {
	return fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY %s LIMIT %d OFFSET %d",
		productColumns, q.where, q.order, q.limit, q.offset,
	)
}

// countSQL returns the pre-pagination total statement sharing the WHERE clause
func (q productQuery) countSQL() string {
	return "SELECT COUNT(*) FROM products" + q.where
}
