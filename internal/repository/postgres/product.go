package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// productRow mirrors the products table. The jsonb columns arrive serialized
// and are decoded strictly at the normalization boundary.
type productRow struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	SKU            sql.NullString  `db:"sku"`
	Description    sql.NullString  `db:"description"`
	Price          float64         `db:"price"`
	OriginalPrice  sql.NullFloat64 `db:"original_price"`
	Brand          string          `db:"brand"`
	Category       string          `db:"category"`
	Subcategory    sql.NullString  `db:"subcategory"`
	Images         []byte          `db:"images"`
	Specifications []byte          `db:"specifications"`
	InStock        sql.NullBool    `db:"in_stock"`
	Featured       sql.NullBool    `db:"featured"`
	Tags           []byte          `db:"tags"`
	Warranty       sql.NullString  `db:"warranty"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      sql.NullTime    `db:"updated_at"`
}

// toDomain normalizes a store row into the stable product shape. Missing
// optional columns take their documented defaults; a jsonb column that fails
// to decode fails the whole request with ErrMalformedRecord.
func (r *productRow) toDomain() (*domain.Product, error) {
	p := &domain.Product{
		ID:             strconv.FormatInt(r.ID, 10),
		Name:           r.Name,
		Description:    r.Description.String,
		Price:          r.Price,
		Brand:          r.Brand,
		Category:       r.Category,
		Subcategory:    r.Subcategory.String,
		Images:         []string{},
		Specifications: map[string]any{},
		InStock:        true,
		Featured:       false,
		Tags:           []string{},
		Warranty:       "2 godine",
		CreatedAt:      r.CreatedAt,
	}

	if r.SKU.Valid {
		sku := r.SKU.String
		p.SKU = &sku
	}
	if r.OriginalPrice.Valid {
		op := r.OriginalPrice.Float64
		p.OriginalPrice = &op
	}
	if r.InStock.Valid {
		p.InStock = r.InStock.Bool
	}
	if r.Featured.Valid {
		p.Featured = r.Featured.Bool
	}
	if r.Warranty.Valid && r.Warranty.String != "" {
		p.Warranty = r.Warranty.String
	}
	if r.UpdatedAt.Valid {
		t := r.UpdatedAt.Time
		p.UpdatedAt = &t
	}

	if len(r.Images) > 0 {
		if err := json.Unmarshal(r.Images, &p.Images); err != nil {
			return nil, fmt.Errorf("%w: images of product %d: %v", domain.ErrMalformedRecord, r.ID, err)
		}
	}
	if len(r.Specifications) > 0 {
		if err := json.Unmarshal(r.Specifications, &p.Specifications); err != nil {
			return nil, fmt.Errorf("%w: specifications of product %d: %v", domain.ErrMalformedRecord, r.ID, err)
		}
	}
	if len(r.Tags) > 0 {
		if err := json.Unmarshal(r.Tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("%w: tags of product %d: %v", domain.ErrMalformedRecord, r.ID, err)
		}
	}

	return p, nil
}

// parseID converts the opaque string identifier to the store's bigint key.
// A non-numeric id cannot exist in the store, so it maps to ErrNotFound.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// List retrieves one page of products matching the filter plus the total count
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, int, error) {
	q := buildProductQuery(filter)

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, q.selectSQL(), q.args...); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.GetContext(ctx, &total, q.countSQL(), q.args...); err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}

	return products, total, nil
}

// GetByID retrieves a product by its identifier
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var row productRow
	if err := r.db.GetContext(ctx, &row, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain()
}

// Create inserts a new product; the store assigns identity and created_at
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	images, err := json.Marshal(product.Images)
	if err != nil {
		return nil, err
	}
	specifications, err := json.Marshal(product.Specifications)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(product.Tags)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO products (name, sku, description, price, original_price, brand, category, subcategory,
			images, specifications, in_stock, featured, tags, warranty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING %s
	`, productColumns)

	var row productRow
	err = r.db.GetContext(ctx, &row, query,
		product.Name,
		product.SKU,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.Brand,
		product.Category,
		product.Subcategory,
		images,
		specifications,
		product.InStock,
		product.Featured,
		tags,
		product.Warranty,
	)
	if err != nil {
		return nil, err
	}

	return row.toDomain()
}

// Update applies a partial update: only supplied fields change, updated_at refreshed
func (r *ProductRepository) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		sets []string
		args []interface{}
	)

	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.SKU != nil {
		set("sku", *update.SKU)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.OriginalPrice != nil {
		if *update.OriginalPrice > 0 {
			set("original_price", *update.OriginalPrice)
		} else {
			set("original_price", nil)
		}
	}
	if update.Brand != nil {
		set("brand", *update.Brand)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Subcategory != nil {
		set("subcategory", *update.Subcategory)
	}
	if update.Images != nil {
		data, err := json.Marshal(*update.Images)
		if err != nil {
			return nil, err
		}
		set("images", data)
	}
	if update.Specifications != nil {
		data, err := json.Marshal(*update.Specifications)
		if err != nil {
			return nil, err
		}
		set("specifications", data)
	}
	if update.InStock != nil {
		set("in_stock", *update.InStock)
	}
	if update.Featured != nil {
		set("featured", *update.Featured)
	}
	if update.Tags != nil {
		data, err := json.Marshal(*update.Tags)
		if err != nil {
			return nil, err
		}
		set("tags", data)
	}
	if update.Warranty != nil {
		set("warranty", *update.Warranty)
	}

	set("updated_at", time.Now())

	args = append(args, key)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)

	var row productRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return row.toDomain()
}

// Delete removes a product by identifier
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", key)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// PriceRange returns the lowest and highest product price
func (r *ProductRepository) PriceRange(ctx context.Context) (float64, float64, error) {
	var bounds struct {
		Min float64 `db:"min"`
		Max float64 `db:"max"`
	}

	query := "SELECT COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max FROM products"
	if err := r.db.GetContext(ctx, &bounds, query); err != nil {
		return 0, 0, err
	}

	return bounds.Min, bounds.Max, nil
}

// RecordView stores one product page view
func (r *ProductRepository) RecordView(ctx context.Context, view domain.ProductView) error {
	key, err := parseID(view.ProductID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO product_views (product_id, ip_address, user_agent, session_id, referrer)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.db.ExecContext(ctx, query, key, view.IPAddress, view.UserAgent, view.SessionID, view.Referrer)
	return err
}

// ViewStats returns the total view count and the ten most viewed products
func (r *ProductRepository) ViewStats(ctx context.Context) (*domain.ViewStats, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM product_views"); err != nil {
		return nil, err
	}

	query := `
		SELECT v.product_id, p.name, p.brand, COUNT(*) AS views
		FROM product_views v
		JOIN products p ON p.id = v.product_id
		GROUP BY v.product_id, p.name, p.brand
		ORDER BY views DESC
		LIMIT 10
	`

	var rows []struct {
		ProductID int64  `db:"product_id"`
		Name      string `db:"name"`
		Brand     string `db:"brand"`
		Views     int    `db:"views"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	stats := &domain.ViewStats{TotalViews: total, TopProducts: []*domain.ViewedProduct{}}
	for _, row := range rows {
		stats.TopProducts = append(stats.TopProducts, &domain.ViewedProduct{
			ProductID: strconv.FormatInt(row.ProductID, 10),
			Name:      row.Name,
			Brand:     row.Brand,
			Views:     row.Views,
		})
	}

	return stats, nil
}
