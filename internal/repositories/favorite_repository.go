package repositories

import (
	"context"
	"database/sql"
)

type FavoriteRepository struct {
	DB *sql.DB
}

// Toggle flips the favorite state for one (user, property) pair and returns
// the resulting state. Delete-if-exists first, otherwise INSERT IGNORE
// against the unique (user_id, property_id) key, so concurrent double-toggles
// can never produce duplicate rows.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, propertyID int) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND property_id = ?`, userID, propertyID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT IGNORE INTO favorites (user_id, property_id, created_at) VALUES (?, ?, NOW())`,
		userID, propertyID)
	if err != nil {
		return false, err
	}
	return true, nil
}
