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

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articles ports.ArticleRepository
	logger   *zap.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles ports.ArticleRepository, logger *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, logger: logger}
}

// List handles GET /articles
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articles.List(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, "list articles", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, articles)
}

// Get handles GET /articles/{articleID}/{publicationDate}
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	article, err := h.articles.GetByKey(r.Context(), articleKeyFromRequest(r))
	if err != nil {
		respondDomainError(w, h.logger, "get article", err)
		return
	}
	common.RespondJSON(w, http.StatusOK, article)
}

// Create handles POST /articles
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if article.ID == "" {
		article.ID = uuid.New().String()
	}

	if err := h.articles.Create(r.Context(), &article); err != nil {
		respondDomainError(w, h.logger, "create article", err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, article)
}

// Update handles PUT /articles/{articleID}/{publicationDate}
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd domain.ArticleUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.articles.Update(r.Context(), articleKeyFromRequest(r), upd); err != nil {
		respondDomainError(w, h.logger, "update article", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Article successfully updated.")
}

// Delete handles DELETE /articles/{articleID}/{publicationDate}
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.articles.Delete(r.Context(), articleKeyFromRequest(r)); err != nil {
		respondDomainError(w, h.logger, "delete article", err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "Article successfully deleted.")
}

func articleKeyFromRequest(r *http.Request) domain.ArticleKey {
	return domain.ArticleKey{
		ID:              chi.URLParam(r, "articleID"),
		PublicationDate: chi.URLParam(r, "publicationDate"),
	}
}
