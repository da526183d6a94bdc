package repositories

import (
	"context"
	"database/sql"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

// GetActiveByUser returns the single active subscription of a user.
func (r *SubscriptionRepository) GetActiveByUser(ctx context.Context, userID int) (models.Subscription, error) {
	query := `
		SELECT id, user_id, plan_type, is_active, created_at, updated_at
		FROM subscriptions
		WHERE user_id = ? AND is_active = 1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var (
		sub       models.Subscription
		planType  string
		isActive  int
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&sub.ID, &sub.UserID, &planType, &isActive, &sub.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return models.Subscription{}, models.ErrSubscriptionNotFound
	}
	if err != nil {
		return models.Subscription{}, err
	}
	sub.PlanType = models.PlanType(planType)
	sub.IsActive = isActive != 0
	if updatedAt.Valid {
		t := updatedAt.Time
		sub.UpdatedAt = &t
	}
	return sub, nil
}

// ReplaceActive deactivates the current subscription and inserts the new
// plan in one transaction, preserving the one-active-row invariant.
func (r *SubscriptionRepository) ReplaceActive(ctx context.Context, userID int, plan models.PlanType) (models.Subscription, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Subscription{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE subscriptions SET is_active = 0, updated_at = NOW() WHERE user_id = ? AND is_active = 1`,
		userID,
	); err != nil {
		tx.Rollback()
		return models.Subscription{}, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, plan_type, is_active, created_at) VALUES (?, ?, 1, NOW())`,
		userID, plan,
	)
	if err != nil {
		tx.Rollback()
		return models.Subscription{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.Subscription{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Subscription{}, err
	}

	return models.Subscription{ID: int(id), UserID: userID, PlanType: plan, IsActive: true}, nil
}
