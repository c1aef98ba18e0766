package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

// ReferenceRepository implements domain.ReferenceRepository for PostgreSQL
type ReferenceRepository struct {
	db *sqlx.DB
}

// NewReferenceRepository creates a new PostgreSQL reference-data repository
func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

type brandRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	Logo         sql.NullString `db:"logo"`
	Website      sql.NullString `db:"website"`
	Specialties  []byte         `db:"specialties"`
	ProductCount sql.NullInt64  `db:"product_count"`
}

func (r *brandRow) toDomain() (*domain.Brand, error) {
	b := &domain.Brand{
		ID:           strconv.FormatInt(r.ID, 10),
		Name:         r.Name,
		Description:  r.Description.String,
		Logo:         r.Logo.String,
		Website:      r.Website.String,
		Specialties:  []string{},
		ProductCount: int(r.ProductCount.Int64),
	}
	if len(r.Specialties) > 0 {
		if err := json.Unmarshal(r.Specialties, &b.Specialties); err != nil {
			return nil, fmt.Errorf("%w: specialties of brand %d: %v", domain.ErrMalformedRecord, r.ID, err)
		}
	}
	return b, nil
}

type categoryRow struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	Slug          sql.NullString `db:"slug"`
	Image         sql.NullString `db:"image"`
	Subcategories []byte         `db:"subcategories"`
	ProductCount  sql.NullInt64  `db:"product_count"`
}

func (r *categoryRow) toDomain() (*domain.Category, error) {
	c := &domain.Category{
		ID:            strconv.FormatInt(r.ID, 10),
		Name:          r.Name,
		Description:   r.Description.String,
		Slug:          r.Slug.String,
		Image:         r.Image.String,
		Subcategories: []string{},
		ProductCount:  int(r.ProductCount.Int64),
	}
	if len(r.Subcategories) > 0 {
		if err := json.Unmarshal(r.Subcategories, &c.Subcategories); err != nil {
			return nil, fmt.Errorf("%w: subcategories of category %d: %v", domain.ErrMalformedRecord, r.ID, err)
		}
	}
	return c, nil
}

const brandColumns = "id, name, description, logo, website, specialties, product_count"
const categoryColumns = "id, name, description, slug, image, subcategories, product_count"

// Brands retrieves all brands ordered by name
func (r *ReferenceRepository) Brands(ctx context.Context) ([]*domain.Brand, error) {
	query := fmt.Sprintf("SELECT %s FROM brands ORDER BY name", brandColumns)

	var rows []brandRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	brands := make([]*domain.Brand, 0, len(rows))
	for i := range rows {
		b, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// BrandByName retrieves a brand by name, matched case-insensitively
func (r *ReferenceRepository) BrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	query := fmt.Sprintf("SELECT %s FROM brands WHERE name ILIKE $1", brandColumns)

	var row brandRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

// Categories retrieves all categories ordered by name
func (r *ReferenceRepository) Categories(ctx context.Context) ([]*domain.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories ORDER BY name", categoryColumns)

	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		c, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// CategoryByName retrieves a category by exact name
func (r *ReferenceRepository) CategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM categories WHERE name = $1", categoryColumns)

	var row categoryRow
	if err := r.db.GetContext(ctx, &row, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

// Subcategories retrieves subcategories joined with their category name,
// optionally restricted to one category id
func (r *ReferenceRepository) Subcategories(ctx context.Context, categoryID string) ([]*domain.Subcategory, error) {
	query := `
		SELECT s.id, s.name, s.description, s.slug, s.image, s.product_count, s.category_id, c.name AS category_name
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
	`
	var args []interface{}
	if categoryID != "" {
		key, err := parseID(categoryID)
		if err != nil {
			return nil, err
		}
		query += " WHERE s.category_id = $1"
		args = append(args, key)
	}
	query += " ORDER BY s.name"

	var rows []struct {
		ID           int64          `db:"id"`
		Name         string         `db:"name"`
		Description  sql.NullString `db:"description"`
		Slug         sql.NullString `db:"slug"`
		Image        sql.NullString `db:"image"`
		ProductCount sql.NullInt64  `db:"product_count"`
		CategoryID   int64          `db:"category_id"`
		CategoryName string         `db:"category_name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	subcategories := make([]*domain.Subcategory, 0, len(rows))
	for _, row := range rows {
		subcategories = append(subcategories, &domain.Subcategory{
			ID:           strconv.FormatInt(row.ID, 10),
			Name:         row.Name,
			Description:  row.Description.String,
			Slug:         row.Slug.String,
			Image:        row.Image.String,
			ProductCount: int(row.ProductCount.Int64),
			CategoryID:   strconv.FormatInt(row.CategoryID, 10),
			CategoryName: row.CategoryName,
		})
	}
	return subcategories, nil
}

// FilterNames returns the distinct brand/category/subcategory names for the
// storefront filter dropdowns
func (r *ReferenceRepository) FilterNames(ctx context.Context) ([]string, []string, []string, error) {
	var brands []string
	if err := r.db.SelectContext(ctx, &brands, "SELECT name FROM brands ORDER BY name"); err != nil {
		return nil, nil, nil, err
	}

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, "SELECT name FROM categories ORDER BY name"); err != nil {
		return nil, nil, nil, err
	}

	var subcategories []string
	if err := r.db.SelectContext(ctx, &subcategories, "SELECT name FROM subcategories ORDER BY name"); err != nil {
		return nil, nil, nil, err
	}

	return brands, categories, subcategories, nil
}
