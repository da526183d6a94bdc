package services

import (
	"context"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
)

type SubscriptionService struct {
	SubscriptionRepo *repositories.SubscriptionRepository
	PropertyRepo     *repositories.PropertyRepository
}

// GetSummary reports the active plan, its ceiling and how many posting
// slots remain.
func (s *SubscriptionService) GetSummary(ctx context.Context, userID int) (models.SubscriptionSummary, error) {
	sub, err := s.SubscriptionRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return models.SubscriptionSummary{}, err
	}

	activeCount, err := s.PropertyRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return models.SubscriptionSummary{}, err
	}

	limit := sub.PlanType.ListingLimit()
	remaining := models.UnlimitedListings
	if limit != models.UnlimitedListings {
		remaining = limit - activeCount
		if remaining < 0 {
			remaining = 0
		}
	}

	return models.SubscriptionSummary{
		Subscription:  sub,
		ListingLimit:  limit,
		ActiveCount:   activeCount,
		SlotsRemained: remaining,
	}, nil
}

// Upgrade switches the user's active plan.
func (s *SubscriptionService) Upgrade(ctx context.Context, userID int, plan models.PlanType) (models.Subscription, error) {
	if !plan.Valid() {
		return models.Subscription{}, models.NewValidationError(map[string]string{
			"plan_type": "must be free, basic, pro or premium",
		})
	}
	return s.SubscriptionRepo.ReplaceActive(ctx, userID, plan)
}
