package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

// GetProperties is the buyer search endpoint. Every query parameter is
// optional; unparseable filters silently drop out.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := models.SearchParams{
		Status:       q.Get("status"),
		PropertyType: q.Get("property_type"),
		Location:     q.Get("location"),
		City:         q.Get("city"),
		MinPrice:     q.Get("min_price"),
		MaxPrice:     q.Get("max_price"),
		Budget:       q.Get("budget"),
		Bedrooms:     q.Get("bedrooms"),
		Area:         q.Get("area"),
		Search:       q.Get("search"),
	}

	result, err := h.Service.SearchProperties(r.Context(), params, userIDFromContext(r),
		queryInt(r, "page", 1), queryInt(r, "limit", models.DefaultPageLimit))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Properties fetched", result)
}

func (h *PropertyHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Service.GetTrending(r.Context(), userIDFromContext(r), queryInt(r, "limit", 10))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Trending properties fetched", map[string]any{"properties": properties})
}

// GetPropertyByID returns the property details and increments views_count.
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.Service.GetPropertyDetails(r.Context(), id, userIDFromContext(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Property fetched", property)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	property.UserID = userIDFromContext(r)

	if err := validateProperty(property); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.Service.CreateProperty(r.Context(), property)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, "Property created", created)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	property.ID = id
	property.UserID = userIDFromContext(r)

	if err := validateProperty(property); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.Service.UpdateProperty(r.Context(), property)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Property updated", updated)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.Service.DeleteProperty(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Property deleted", nil)
}

// GetMyProperties lists the seller's own properties in every moderation
// state.
func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListByUser(r.Context(), userIDFromContext(r),
		queryInt(r, "page", 1), queryInt(r, "limit", models.DefaultPageLimit))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Properties fetched", result)
}

func validateProperty(p models.Property) error {
	fields := map[string]string{}
	if p.Title == "" {
		fields["title"] = "title is required"
	}
	if p.Status != models.PropertyStatusSale && p.Status != models.PropertyStatusRent {
		fields["status"] = "must be sale or rent"
	}
	if p.PropertyType == "" {
		fields["property_type"] = "property_type is required"
	}
	if p.Price <= 0 {
		fields["price"] = "price must be positive"
	}
	if p.Area <= 0 {
		fields["area"] = "area must be positive"
	}
	if len(fields) > 0 {
		return models.NewValidationError(fields)
	}
	return nil
}
