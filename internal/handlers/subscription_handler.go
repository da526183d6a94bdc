package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
	"github.com/Vedantlights/indiapropertys-sub001/internal/services"
)

type SubscriptionHandler struct {
	Service *services.SubscriptionService
}

func (h *SubscriptionHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.GetSummary(r.Context(), userIDFromContext(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Subscription fetched", summary)
}

func (h *SubscriptionHandler) UpgradeSubscription(w http.ResponseWriter, r *http.Request) {
	var req models.UpgradeSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub, err := h.Service.Upgrade(r.Context(), userIDFromContext(r), req.PlanType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, http.StatusOK, "Subscription upgraded", sub)
}
