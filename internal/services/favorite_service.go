package services

import (
	"context"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
	PropertyRepo *repositories.PropertyRepository
	Resolver     ImageURLResolver
}

// ToggleFavorite flips the favorite state. The property must be visible to
// buyers; favoriting something hidden reads as not found.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID, propertyID int) (models.ToggleFavoriteResponse, error) {
	if _, err := s.PropertyRepo.GetVisibleOwner(ctx, propertyID); err != nil {
		return models.ToggleFavoriteResponse{}, err
	}

	isFavorite, err := s.FavoriteRepo.Toggle(ctx, userID, propertyID)
	if err != nil {
		return models.ToggleFavoriteResponse{}, err
	}
	return models.ToggleFavoriteResponse{PropertyID: propertyID, IsFavorite: isFavorite}, nil
}

// ListFavorites returns the user's favorited properties in the shared
// listing shape.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID, page, limit int) (models.PropertyListResponse, error) {
	page, limit = models.ClampPage(page, limit)
	properties, total, err := s.PropertyRepo.ListFavorites(ctx, userID, limit, models.Offset(page, limit))
	if err != nil {
		return models.PropertyListResponse{}, err
	}

	for i := range properties {
		properties[i].Images = s.Resolver.ResolveList(properties[i].Images)
		properties[i].CoverImage = s.Resolver.CoverImage(properties[i].CoverImage, properties[i].Images)
		// The list is favorites by definition; the join flag only covers
		// the page viewer.
		properties[i].IsFavorite = true
	}

	return models.PropertyListResponse{
		Properties: properties,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}
