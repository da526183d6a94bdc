package models

import "time"

type Favorite struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	PropertyID int       `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ToggleFavoriteRequest struct {
	PropertyID int `json:"property_id"`
}

type ToggleFavoriteResponse struct {
	PropertyID int  `json:"property_id"`
	IsFavorite bool `json:"is_favorite"`
}
