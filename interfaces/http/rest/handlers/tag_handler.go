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

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	tags   ports.TagRepository
	logger *zap.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tags ports.TagRepository, logger *zap.Logger) *TagHandler {
	return &TagHandler{tags: tags, logger: logger}
}

// List handles GET /tags
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, "list tags", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, tags)
}

// Get handles GET /tags/{tagID}
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	tag, err := h.tags.GetByID(r.Context(), chi.URLParam(r, "tagID"))
	if err != nil {
		respondDomainError(w, h.logger, "get tag", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, tag)
}

// Create handles POST /tags. Tag writes are idempotent upserts.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tag domain.Tag
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}

	if err := h.tags.Put(r.Context(), &tag); err != nil {
		respondDomainError(w, h.logger, "create tag", err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, tag)
}

// Update handles PUT /tags/{tagID}
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd domain.TagUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.tags.Update(r.Context(), chi.URLParam(r, "tagID"), upd); err != nil {
		respondDomainError(w, h.logger, "update tag", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Tag successfully updated.")
}

// Delete handles DELETE /tags/{tagID}
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tags.Delete(r.Context(), chi.URLParam(r, "tagID")); err != nil {
		respondDomainError(w, h.logger, "delete tag", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Tag successfully deleted.")
}
