package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

var propertyColumns = []string{
	"id", "user_id", "title", "description", "status", "property_type",
	"city", "location", "latitude", "longitude",
	"bedrooms", "bathrooms", "balconies", "area", "carpet_area",
	"price", "price_negotiable", "maintenance_charges", "deposit_amount",
	"cover_image", "is_active", "admin_status", "views_count",
	"created_at", "updated_at", "name", "phone", "images", "amenities", "is_favorite",
}

func propertyRow() []driver.Value {
	return []driver.Value{
		1, 10, "2 BHK Flat in Baner", "Spacious flat", "sale", "apartment",
		"Pune", "Baner Road", 18.55, 73.78,
		"2", "2", "1", 950.0, 800.0,
		6_000_000.0, 1, nil, nil,
		"uploads/cover.jpg", 1, "approved", 12,
		time.Now(), nil, "Asha Patil", "9876543210",
		"uploads/a.jpg,uploads/b.jpg", "parking,lift", 1,
	}
}

func newMockRepo(t *testing.T) (*PropertyRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PropertyRepository{DB: db}, mock
}

func TestBuildSearchFilterAlwaysGated(t *testing.T) {
	qf := buildSearchFilter(models.SearchFilters{})

	where := qf.where()
	assert.Contains(t, where, "p.is_active = 1")
	assert.Contains(t, where, "p.admin_status = ?")
	assert.Equal(t, []any{models.AdminStatusApproved}, qf.args)
}

func TestBuildSearchFilterLowersPredicates(t *testing.T) {
	minPrice, maxPrice := 2_500_000.0, 5_000_000.0
	bedroomsMin := 3
	minArea := 600.0

	qf := buildSearchFilter(models.SearchFilters{
		Status:       "sale",
		PropertyType: "apartment",
		Location:     "Pune",
		Search:       "garden",
		MinPrice:     &minPrice,
		MaxPrice:     &maxPrice,
		BedroomsMin:  &bedroomsMin,
		MinArea:      &minArea,
	})

	where := qf.where()
	assert.Contains(t, where, "p.status = ?")
	assert.Contains(t, where, "p.property_type = ?")
	assert.Contains(t, where, "(p.city LIKE ? OR p.location LIKE ?)")
	assert.Contains(t, where, "(p.title LIKE ? OR p.location LIKE ? OR p.description LIKE ?)")
	assert.Contains(t, where, "p.price >= ?")
	assert.Contains(t, where, "p.price <= ?")
	assert.Contains(t, where, "CAST(p.bedrooms AS UNSIGNED) >= ?")
	assert.Contains(t, where, "p.area >= ?")
	assert.Equal(t, []any{
		models.AdminStatusApproved, "sale", "apartment",
		"%Pune%", "%Pune%",
		"%garden%", "%garden%", "%garden%",
		minPrice, maxPrice, bedroomsMin, minArea,
	}, qf.args)
}

func TestBuildSearchFilterBedroomsMinWinsOverExact(t *testing.T) {
	bedroomsMin := 3
	qf := buildSearchFilter(models.SearchFilters{BedroomsMin: &bedroomsMin, BedroomsExact: "3"})

	where := qf.where()
	assert.Contains(t, where, "CAST(p.bedrooms AS UNSIGNED) >= ?")
	assert.NotContains(t, where, "REPLACE(p.bedrooms")
}

func TestBuildSearchFilterBedroomsExact(t *testing.T) {
	qf := buildSearchFilter(models.SearchFilters{BedroomsExact: "3"})
	assert.Contains(t, qf.where(), "REPLACE(p.bedrooms, ' BHK', '') = ?")
}

func TestSearchPropertiesCountSharesFilterSet(t *testing.T) {
	repo, mock := newMockRepo(t)

	minPrice, maxPrice := 5_000_000.0, 7_500_000.0
	filters := models.SearchFilters{Status: "sale", MinPrice: &minPrice, MaxPrice: &maxPrice}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM properties p WHERE p.is_active = 1 AND p.admin_status = ? AND p.status = ? AND p.price >= ? AND p.price <= ?`)).
		WithArgs(models.AdminStatusApproved, "sale", minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(`p.is_active = 1 AND p.admin_status = ? AND p.status = ? AND p.price >= ? AND p.price <= ? GROUP BY p.id ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`)).
		WithArgs(5, models.AdminStatusApproved, "sale", minPrice, maxPrice, 20, 0).
		WillReturnRows(sqlmock.NewRows(propertyColumns).AddRow(propertyRow()...))

	properties, total, err := repo.SearchProperties(context.Background(), filters, 5, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, properties, 1)

	p := properties[0]
	assert.Equal(t, 1, p.ID)
	assert.True(t, p.PriceNegotiable)
	assert.True(t, p.IsFavorite)
	assert.True(t, p.IsActive)
	assert.Equal(t, []string{"uploads/a.jpg", "uploads/b.jpg"}, p.Images)
	assert.Equal(t, []string{"parking", "lift"}, p.Amenities)
	assert.Equal(t, "Asha Patil", p.Seller.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPropertiesOrdering(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY p.created_at DESC, p.id DESC`)).
		WillReturnRows(sqlmock.NewRows(propertyColumns))

	_, _, err := repo.SearchProperties(context.Background(), models.SearchFilters{}, 0, 20, 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = ? AND p.is_active = 1 AND p.admin_status = ?`)).
		WithArgs(0, 42, models.AdminStatusApproved).
		WillReturnRows(sqlmock.NewRows(propertyColumns))

	_, err := repo.GetPropertyByID(context.Background(), 42, 0, true)
	assert.ErrorIs(t, err, models.ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViews(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE properties SET views_count = views_count + 1 WHERE id = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVisibleOwnerGatesInactive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM properties WHERE id = ? AND is_active = 1 AND admin_status = ?`)).
		WithArgs(9, models.AdminStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.GetVisibleOwner(context.Background(), 9)
	assert.ErrorIs(t, err, models.ErrPropertyNotFound)
}

func TestCreatePropertyRollsBackOnImageFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO properties`)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO property_images`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateProperty(context.Background(), models.Property{
		UserID: 10,
		Title:  "Flat",
		Status: "sale",
		Images: []string{"uploads/a.jpg"},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePropertyCommitsRelations(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO properties`)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO property_images (property_id, image_url, image_order) VALUES (?, ?, ?)`)).
		WithArgs(11, "uploads/a.jpg", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO property_amenities (property_id, amenity_id) VALUES (?, ?)`)).
		WithArgs(11, "parking").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := repo.CreateProperty(context.Background(), models.Property{
		UserID:    10,
		Title:     "Flat",
		Status:    "sale",
		Images:    []string{"uploads/a.jpg"},
		Amenities: []string{"parking"},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, models.AdminStatusPending, created.AdminStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
