package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
)

type AdminHandler struct {
	PropertyService *services.PropertyService
}

// GetProperties lists listings by moderation state, pending by default.
func (h *AdminHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.AdminStatusPending
	}

	result, err := h.PropertyService.ListByAdminStatus(r.Context(), status,
		queryInt(r, "page", 1), queryInt(r, "limit", models.DefaultPageLimit))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Properties fetched", result)
}

// SetPropertyStatus approves or rejects a listing.
func (h *AdminHandler) SetPropertyStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.PropertyService.SetAdminStatus(r.Context(), id, req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Property status updated", map[string]any{"id": id, "admin_status": req.Status})
}
