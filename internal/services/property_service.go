package services

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
)

// trendingKey is the redis sorted set ranking properties by detail views.
const trendingKey = "property:views"

type PropertyService struct {
	PropertyRepo     *repositories.PropertyRepository
	SubscriptionRepo *repositories.SubscriptionRepository
	Resolver         ImageURLResolver
	Redis            *redis.Client
}

// SearchProperties runs the buyer search: normalize the raw parameters,
// execute the filtered page + count, format every row.
func (s *PropertyService) SearchProperties(ctx context.Context, params models.SearchParams, viewerID, page, limit int) (models.PropertyListResponse, error) {
	page, limit = models.ClampPage(page, limit)
	filters := NormalizeSearchFilters(params)

	properties, total, err := s.PropertyRepo.SearchProperties(ctx, filters, viewerID, limit, models.Offset(page, limit))
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	s.formatProperties(properties)

	return models.PropertyListResponse{
		Properties: properties,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetPropertyDetails returns one visible property and records the view:
// the database counter is incremented on every call, and the redis trending
// rank is bumped best-effort.
func (s *PropertyService) GetPropertyDetails(ctx context.Context, id, viewerID int) (models.Property, error) {
	property, err := s.PropertyRepo.GetPropertyByID(ctx, id, viewerID, true)
	if err != nil {
		return models.Property{}, err
	}

	if err := s.PropertyRepo.IncrementViews(ctx, id); err != nil {
		return models.Property{}, err
	}
	property.ViewsCount++

	if s.Redis != nil {
		if err := s.Redis.ZIncrBy(ctx, trendingKey, 1, strconv.Itoa(id)).Err(); err != nil {
			log.Printf("trending rank update failed for property %d: %v", id, err)
		}
	}

	s.formatProperty(&property)
	return property, nil
}

// GetTrending reads the top ranked property ids from redis and hydrates
// them through the regular gated read, preserving the redis order.
func (s *PropertyService) GetTrending(ctx context.Context, viewerID, limit int) ([]models.Property, error) {
	if s.Redis == nil {
		return nil, nil
	}
	_, limit = models.ClampPage(1, limit)

	rawIDs, err := s.Redis.ZRevRange(ctx, trendingKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if id, err := strconv.Atoi(raw); err == nil {
			ids = append(ids, id)
		}
	}

	properties, err := s.PropertyRepo.GetPropertiesByIDs(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}
	s.formatProperties(properties)

	byID := make(map[int]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	ordered := make([]models.Property, 0, len(properties))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// CreateProperty enforces the subscription posting ceiling before the
// transactional insert.
func (s *PropertyService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	sub, err := s.SubscriptionRepo.GetActiveByUser(ctx, property.UserID)
	if err != nil && err != models.ErrSubscriptionNotFound {
		return models.Property{}, err
	}
	plan := models.PlanFree
	if err == nil {
		plan = sub.PlanType
	}

	if limit := plan.ListingLimit(); limit != models.UnlimitedListings {
		count, err := s.PropertyRepo.CountActiveByUser(ctx, property.UserID)
		if err != nil {
			return models.Property{}, err
		}
		if count >= limit {
			return models.Property{}, models.ErrListingLimitReached
		}
	}

	created, err := s.PropertyRepo.CreateProperty(ctx, property)
	if err != nil {
		return models.Property{}, err
	}
	s.formatProperty(&created)
	return created, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	if err := s.PropertyRepo.UpdateProperty(ctx, property); err != nil {
		return models.Property{}, err
	}
	updated, err := s.PropertyRepo.GetPropertyByID(ctx, property.ID, property.UserID, false)
	if err != nil {
		return models.Property{}, err
	}
	s.formatProperty(&updated)
	return updated, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id, userID int) error {
	return s.PropertyRepo.DeleteProperty(ctx, id, userID)
}

// ListByUser is the seller's own dashboard list, no moderation gating.
func (s *PropertyService) ListByUser(ctx context.Context, userID, page, limit int) (models.PropertyListResponse, error) {
	page, limit = models.ClampPage(page, limit)
	properties, total, err := s.PropertyRepo.ListByUser(ctx, userID, limit, models.Offset(page, limit))
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	s.formatProperties(properties)
	return models.PropertyListResponse{
		Properties: properties,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// ListByAdminStatus backs the moderation queue.
func (s *PropertyService) ListByAdminStatus(ctx context.Context, status string, page, limit int) (models.PropertyListResponse, error) {
	page, limit = models.ClampPage(page, limit)
	properties, total, err := s.PropertyRepo.ListByAdminStatus(ctx, status, limit, models.Offset(page, limit))
	if err != nil {
		return models.PropertyListResponse{}, err
	}
	s.formatProperties(properties)
	return models.PropertyListResponse{
		Properties: properties,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

func (s *PropertyService) SetAdminStatus(ctx context.Context, id int, status string) error {
	switch status {
	case models.AdminStatusPending, models.AdminStatusApproved, models.AdminStatusRejected:
	default:
		return models.NewValidationError(map[string]string{"status": "must be pending, approved or rejected"})
	}
	return s.PropertyRepo.SetAdminStatus(ctx, id, status)
}

func (s *PropertyService) formatProperty(p *models.Property) {
	p.Images = s.Resolver.ResolveList(p.Images)
	p.CoverImage = s.Resolver.CoverImage(p.CoverImage, p.Images)
}

func (s *PropertyService) formatProperties(properties []models.Property) {
	for i := range properties {
		s.formatProperty(&properties[i])
	}
}
