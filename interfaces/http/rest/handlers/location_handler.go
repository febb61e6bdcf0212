package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecovista-backend/application/ports"
	"ecovista-backend/domain"
	"ecovista-backend/pkg/common"
)

// LocationHandler handles location-related HTTP requests
type LocationHandler struct {
	locations ports.LocationRepository
	logger    *zap.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations ports.LocationRepository, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{locations: locations, logger: logger}
}

// List handles GET /locations
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locations.List(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, "list locations", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, locations)
}

// Get handles GET /locations/{locationID}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	location, err := h.locations.GetByID(r.Context(), chi.URLParam(r, "locationID"))
	if err != nil {
		respondDomainError(w, h.logger, "get location", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, location)
}

// Create handles POST /locations. API-created locations must carry the
// geolocation pair; only ingestion may create name-only records.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload domain.NewLocation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := domain.Validate(payload); err != nil {
		respondDomainError(w, h.logger, "create location", err)
		return
	}
	if payload.ID == "" {
		payload.ID = uuid.New().String()
	}

	location := domain.Location{
		ID:          payload.ID,
		Name:        payload.Name,
		Geolocation: payload.Geolocation,
	}
	if err := h.locations.Create(r.Context(), &location); err != nil {
		respondDomainError(w, h.logger, "create location", err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, location)
}

// Update handles PUT /locations/{locationID}
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd domain.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.locations.Update(r.Context(), chi.URLParam(r, "locationID"), upd); err != nil {
		respondDomainError(w, h.logger, "update location", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Location successfully updated.")
}

// Delete handles DELETE /locations/{locationID}
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.locations.Delete(r.Context(), chi.URLParam(r, "locationID")); err != nil {
		respondDomainError(w, h.logger, "delete location", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Location successfully deleted.")
}
