package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

// ToggleFavorite flips the favorite state for the authenticated user;
// there is no separate add/remove API.
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PropertyID <= 0 {
		respondError(w, models.NewValidationError(map[string]string{"property_id": "property_id is required"}))
		return
	}

	result, err := h.Service.ToggleFavorite(r.Context(), userIDFromContext(r), req.PropertyID)
	if err != nil {
		respondError(w, err)
		return
	}

	message := "Removed from favorites"
	if result.IsFavorite {
		message = "Added to favorites"
	}
	respondData(w, http.StatusOK, message, result)
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListFavorites(r.Context(), userIDFromContext(r),
		queryInt(r, "page", 1), queryInt(r, "limit", models.DefaultPageLimit))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Favorites fetched", result)
}
