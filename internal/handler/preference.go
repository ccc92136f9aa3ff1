package handler

import (
	"errors"
	"net/http"

	"github.com/spendtrack/spendtrack-go/internal/middleware"
	"github.com/spendtrack/spendtrack-go/internal/model"
	"github.com/spendtrack/spendtrack-go/internal/service"
)

// PreferenceHandler handles HTTP requests for user preferences.
type PreferenceHandler struct {
	service *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(svc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: svc}
}

// HandleGet handles GET /api/user/preferences requests.
func (h *PreferenceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	prefs, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load preferences"))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// HandleUpdate handles PUT /api/user/preferences requests.
func (h *PreferenceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.PreferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prefs, err := h.service.Update(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to save preferences"))
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}
