package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
)

type InquiryHandler struct {
	Service *services.InquiryService
}

// CreateInquiry accepts both anonymous and authenticated submissions; an
// authenticated buyer's profile back-fills missing contact fields.
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PropertyID <= 0 {
		respondError(w, models.NewValidationError(map[string]string{"property_id": "property_id is required"}))
		return
	}

	inquiry, err := h.Service.CreateInquiry(r.Context(), req, userIDFromContext(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusCreated, "Inquiry sent", inquiry)
}

// GetMyInquiries is the seller's inbox, optionally filtered by status.
func (h *InquiryHandler) GetMyInquiries(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.ListBySeller(r.Context(), userIDFromContext(r),
		r.URL.Query().Get("status"),
		queryInt(r, "page", 1), queryInt(r, "limit", models.DefaultPageLimit))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Inquiries fetched", result)
}

func (h *InquiryHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid inquiry id")
		return
	}

	var req models.UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry, err := h.Service.UpdateStatus(r.Context(), id, userIDFromContext(r), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Inquiry status updated", inquiry)
}
