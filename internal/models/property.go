package models

import (
	"time"
)

const (
	PropertyStatusSale = "sale"
	PropertyStatusRent = "rent"

	AdminStatusPending  = "pending"
	AdminStatusApproved = "approved"
	AdminStatusRejected = "rejected"
)

type Property struct {
	ID                 int      `json:"id"`
	UserID             int      `json:"user_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	PropertyType       string   `json:"property_type"`
	City               string   `json:"city"`
	Location           string   `json:"location"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	Bedrooms           string   `json:"bedrooms"`
	Bathrooms          string   `json:"bathrooms"`
	Balconies          string   `json:"balconies"`
	Area               float64  `json:"area"`
	CarpetArea         *float64 `json:"carpet_area,omitempty"`
	Price              float64  `json:"price"`
	PriceNegotiable    bool     `json:"price_negotiable"`
	MaintenanceCharges *float64 `json:"maintenance_charges,omitempty"`
	DepositAmount      *float64 `json:"deposit_amount,omitempty"`
	CoverImage         string   `json:"cover_image"`
	Images             []string `json:"images"`
	Amenities          []string `json:"amenities"`
	IsActive           bool     `json:"is_active"`
	AdminStatus        string   `json:"admin_status"`
	ViewsCount         int      `json:"views_count"`
	IsFavorite         bool     `json:"is_favorite"`
	Seller             struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"seller"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type PropertyImage struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	ImageURL   string `json:"image_url"`
	ImageOrder int    `json:"image_order"`
}

// SearchParams is the immutable raw-string view of the query parameters a
// listing request arrived with. Parsing into typed predicates happens in the
// filter normalizer; nothing here has been validated.
type SearchParams struct {
	Status       string
	PropertyType string
	Location     string
	City         string
	MinPrice     string
	MaxPrice     string
	Budget       string
	Bedrooms     string
	Area         string
	Search       string
}

// SearchFilters is the normalized predicate set produced by the filter
// normalizer. Nil pointer means "no filter for this dimension".
type SearchFilters struct {
	Status       string
	PropertyType string
	Location     string
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
	// BedroomsExact is matched against the stored bedrooms string after
	// stripping a BHK suffix; BedroomsMin comes from a trailing "+".
	BedroomsExact string
	BedroomsMin   *int
	MinArea       *float64
	MaxArea       *float64
}

type PropertyListResponse struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
}
