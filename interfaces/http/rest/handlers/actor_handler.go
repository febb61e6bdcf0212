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

// ActorHandler handles actor-related HTTP requests
type ActorHandler struct {
	actors ports.ActorRepository
	logger *zap.Logger
}

// NewActorHandler creates a new actor handler
func NewActorHandler(actors ports.ActorRepository, logger *zap.Logger) *ActorHandler {
	return &ActorHandler{actors: actors, logger: logger}
}

// List handles GET /actors
func (h *ActorHandler) List(w http.ResponseWriter, r *http.Request) {
	actors, err := h.actors.List(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, "list actors", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, actors)
}

// Get handles GET /actors/{actorID}
func (h *ActorHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actors.GetByID(r.Context(), chi.URLParam(r, "actorID"))
	if err != nil {
		respondDomainError(w, h.logger, "get actor", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, actor)
}

// Create handles POST /actors
func (h *ActorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var actor domain.Actor
	if err := json.NewDecoder(r.Body).Decode(&actor); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if actor.ID == "" {
		actor.ID = uuid.New().String()
	}

	if err := h.actors.Create(r.Context(), &actor); err != nil {
		respondDomainError(w, h.logger, "create actor", err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, actor)
}

// Update handles PUT /actors/{actorID}
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd domain.ActorUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.actors.Update(r.Context(), chi.URLParam(r, "actorID"), upd); err != nil {
		respondDomainError(w, h.logger, "update actor", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Actor successfully updated.")
}

// Delete handles DELETE /actors/{actorID}
func (h *ActorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.actors.Delete(r.Context(), chi.URLParam(r, "actorID")); err != nil {
		respondDomainError(w, h.logger, "delete actor", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Actor successfully deleted.")
}
