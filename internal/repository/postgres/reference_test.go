package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilipiu/catalog-api/internal/domain"
)

var brandTestColumns = []string{"id", "name", "description", "logo", "website", "specialties", "product_count"}

func newMockReferenceRepo(t *testing.T) (*ReferenceRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewReferenceRepository(db), mock
}

func TestReferenceRepository_Brands(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	rows := sqlmock.NewRows(brandTestColumns).
		AddRow(1, "Bosch", "Njemačka kvaliteta", nil, nil, []byte(`["Bijela tehnika"]`), 12).
		AddRow(2, "Miele", nil, nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT (.+) FROM brands ORDER BY name`).WillReturnRows(rows)

	brands, err := repo.Brands(context.Background())

	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Bosch", brands[0].Name)
	assert.Equal(t, []string{"Bijela tehnika"}, brands[0].Specialties)
	assert.Equal(t, []string{}, brands[1].Specialties)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceRepository_BrandByName_NotFound(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM brands WHERE name ILIKE \$1`).
		WithArgs("Nepoznati").
		WillReturnRows(sqlmock.NewRows(brandTestColumns))

	brand, err := repo.BrandByName(context.Background(), "Nepoznati")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, brand)
}

func TestReferenceRepository_BrandByName_MalformedSpecialties(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	rows := sqlmock.NewRows(brandTestColumns).
		AddRow(1, "Bosch", nil, nil, nil, []byte(`["Bijela`), nil)

	mock.ExpectQuery(`SELECT (.+) FROM brands WHERE name ILIKE \$1`).
		WithArgs("Bosch").
		WillReturnRows(rows)

	brand, err := repo.BrandByName(context.Background(), "Bosch")

	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Nil(t, brand)
}

func TestReferenceRepository_CategoryByName(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	columns := []string{"id", "name", "description", "slug", "image", "subcategories", "product_count"}
	rows := sqlmock.NewRows(columns).
		AddRow(3, "Bijela tehnika", nil, "bijela-tehnika", nil, []byte(`["Perilice rublja","Hladnjaci"]`), 40)

	mock.ExpectQuery(`SELECT (.+) FROM categories WHERE name = \$1`).
		WithArgs("Bijela tehnika").
		WillReturnRows(rows)

	category, err := repo.CategoryByName(context.Background(), "Bijela tehnika")

	require.NoError(t, err)
	assert.Equal(t, "3", category.ID)
	assert.Equal(t, []string{"Perilice rublja", "Hladnjaci"}, category.Subcategories)
}

func TestReferenceRepository_Subcategories_FilteredByCategory(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	columns := []string{"id", "name", "description", "slug", "image", "product_count", "category_id", "category_name"}
	rows := sqlmock.NewRows(columns).
		AddRow(5, "Perilice rublja", nil, nil, nil, 8, 3, "Bijela tehnika")

	mock.ExpectQuery(`SELECT (.+) FROM subcategories s\s+JOIN categories c ON c.id = s.category_id WHERE s.category_id = \$1 ORDER BY s.name`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	subs, err := repo.Subcategories(context.Background(), "3")

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Perilice rublja", subs[0].Name)
	assert.Equal(t, "Bijela tehnika", subs[0].CategoryName)
}

func TestReferenceRepository_FilterNames(t *testing.T) {
	repo, mock := newMockReferenceRepo(t)

	mock.ExpectQuery(`SELECT name FROM brands ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Bosch").AddRow("Miele"))
	mock.ExpectQuery(`SELECT name FROM categories ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Bijela tehnika"))
	mock.ExpectQuery(`SELECT name FROM subcategories ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Perilice rublja"))

	brands, categories, subcategories, err := repo.FilterNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Bosch", "Miele"}, brands)
	assert.Equal(t, []string{"Bijela tehnika"}, categories)
	assert.Equal(t, []string{"Perilice rublja"}, subcategories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
