package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Vedantlights/indiapropertys-sub001/internal/models"
)

// envelope is the shared response contract: {success, message, data}, with
// a per-field errors map on validation failures.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondError maps the error taxonomy onto HTTP statuses. Unexpected
// errors are logged and redacted to a flat 500 message.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrPropertyNotFound):
		respondMessage(w, http.StatusNotFound, "Property not found")
	case errors.Is(err, models.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrInquiryNotFound):
		respondMessage(w, http.StatusNotFound, "Inquiry not found")
	case errors.Is(err, models.ErrSubscriptionNotFound):
		respondMessage(w, http.StatusNotFound, "No active subscription")
	case errors.Is(err, models.ErrNoRecord):
		respondMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrForbidden):
		respondMessage(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, models.ErrListingLimitReached):
		respondMessage(w, http.StatusForbidden, "Property posting limit reached for current plan")
	case errors.Is(err, models.ErrDuplicateEmail):
		respondMessage(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, models.ErrDuplicatePhone):
		respondMessage(w, http.StatusConflict, "Phone number is already registered")
	case isForeignKeyConstraintError(err):
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  map[string]string{"reference": "related record does not exist"},
		})
	default:
		log.Printf("internal error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// userIDFromContext returns the authenticated user id, 0 when anonymous.
func userIDFromContext(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}
