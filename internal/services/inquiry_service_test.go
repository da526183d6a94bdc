package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
)

func newInquiryService(t *testing.T) (*InquiryService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &InquiryService{
		InquiryRepo:  &repositories.InquiryRepository{DB: db},
		PropertyRepo: &repositories.PropertyRepository{DB: db},
		UserRepo:     &repositories.UserRepository{DB: db},
		Resolver:     NewImageURLResolver("https://site", ""),
	}, mock
}

func expectVisibleOwner(mock sqlmock.Sqlmock, propertyID, ownerID int) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM properties WHERE id = ? AND is_active = 1 AND admin_status = ?`)).
		WithArgs(propertyID, models.AdminStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerID))
}

func TestCreateInquiryHiddenPropertyIsNotFound(t *testing.T) {
	svc, mock := newInquiryService(t)

	// Gated lookup misses; nothing else may touch the database.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM properties WHERE id = ? AND is_active = 1 AND admin_status = ?`)).
		WithArgs(5, models.AdminStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := svc.CreateInquiry(context.Background(), models.CreateInquiryRequest{
		PropertyID: 5, Name: "Ravi", Email: "ravi@example.com", Mobile: "9876543210",
	}, 0)
	assert.ErrorIs(t, err, models.ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInquiryAnonymousMissingContact(t *testing.T) {
	svc, mock := newInquiryService(t)

	expectVisibleOwner(mock, 5, 20)

	_, err := svc.CreateInquiry(context.Background(), models.CreateInquiryRequest{
		PropertyID: 5, Name: "Ravi",
	}, 0)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "mobile")
	assert.NotContains(t, verr.Fields, "name")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInquiryBackfillsFromBuyerProfile(t *testing.T) {
	svc, mock := newInquiryService(t)

	expectVisibleOwner(mock, 5, 20)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, phone, role, city, created_at, updated_at FROM users WHERE id = ?`)).
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role", "city", "created_at", "updated_at"}).
			AddRow(8, "Ravi Kumar", "ravi@example.com", "9876543210", "buyer", "Pune", time.Now(), nil))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO inquiries`)).
		WithArgs(5, 8, 20, "Ravi Kumar", "ravi@example.com", "9876543210", "Is this available?", models.InquiryStatusNew).
		WillReturnResult(sqlmock.NewResult(31, 1))

	inq, err := svc.CreateInquiry(context.Background(), models.CreateInquiryRequest{
		PropertyID: 5, Message: "Is this available?",
	}, 8)
	require.NoError(t, err)
	assert.Equal(t, 31, inq.ID)
	assert.Equal(t, 20, inq.SellerID)
	require.NotNil(t, inq.BuyerID)
	assert.Equal(t, 8, *inq.BuyerID)
	assert.Equal(t, models.InquiryStatusNew, inq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInquiryExplicitContactSkipsProfileLookup(t *testing.T) {
	svc, mock := newInquiryService(t)

	expectVisibleOwner(mock, 5, 20)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO inquiries`)).
		WithArgs(5, 8, 20, "Ravi", "ravi@example.com", "9876543210", "", models.InquiryStatusNew).
		WillReturnResult(sqlmock.NewResult(32, 1))

	_, err := svc.CreateInquiry(context.Background(), models.CreateInquiryRequest{
		PropertyID: 5, Name: "Ravi", Email: "ravi@example.com", Mobile: "9876543210",
	}, 8)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newInquiryService(t)

	_, err := svc.UpdateStatus(context.Background(), 31, 20, "archived")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestUpdateStatusForeignSellerForbidden(t *testing.T) {
	svc, mock := newInquiryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM inquiries`)).
		WithArgs(31).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "property_id", "buyer_id", "seller_id", "name", "email", "mobile", "message", "status", "created_at",
		}).AddRow(31, 5, nil, 20, "Ravi", "ravi@example.com", "9876543210", "", "new", time.Now()))

	_, err := svc.UpdateStatus(context.Background(), 31, 99, models.InquiryStatusContacted)
	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusOwningSeller(t *testing.T) {
	svc, mock := newInquiryService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM inquiries`)).
		WithArgs(31).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "property_id", "buyer_id", "seller_id", "name", "email", "mobile", "message", "status", "created_at",
		}).AddRow(31, 5, nil, 20, "Ravi", "ravi@example.com", "9876543210", "", "new", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inquiries SET status = ? WHERE id = ?`)).
		WithArgs(models.InquiryStatusContacted, 31).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inq, err := svc.UpdateStatus(context.Background(), 31, 20, models.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusContacted, inq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
