package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockFavoriteRepo(t *testing.T) (*FavoriteRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &FavoriteRepository{DB: db}, mock
}

func TestToggleRemovesExistingFavorite(t *testing.T) {
	repo, mock := newMockFavoriteRepo(t)

	// The delete hits an existing row, so no insert follows.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM favorites WHERE user_id = ? AND property_id = ?`)).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	favorited, err := repo.Toggle(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleAddsMissingFavorite(t *testing.T) {
	repo, mock := newMockFavoriteRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM favorites WHERE user_id = ? AND property_id = ?`)).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT IGNORE INTO favorites (user_id, property_id, created_at) VALUES (?, ?, NOW())`)).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(1, 1))

	favorited, err := repo.Toggle(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.NoError(t, mock.ExpectationsWereMet())
}
