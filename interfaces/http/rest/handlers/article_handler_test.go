package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecovista-backend/domain"
	apperrors "ecovista-backend/pkg/errors"
)

// stubArticleRepo implements ports.ArticleRepository with overridable funcs
type stubArticleRepo struct {
	list     func(ctx context.Context) ([]domain.Article, error)
	getByKey func(ctx context.Context, key domain.ArticleKey) (*domain.Article, error)
	create   func(ctx context.Context, article *domain.Article) error
	update   func(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error
	del      func(ctx context.Context, key domain.ArticleKey) error
}

func (s *stubArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	return s.list(ctx)
}

func (s *stubArticleRepo) GetByKey(ctx context.Context, key domain.ArticleKey) (*domain.Article, error) {
	return s.getByKey(ctx, key)
}

func (s *stubArticleRepo) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	return nil, apperrors.NewNotFoundError("article")
}

func (s *stubArticleRepo) Create(ctx context.Context, article *domain.Article) error {
	return s.create(ctx, article)
}

func (s *stubArticleRepo) Put(ctx context.Context, article *domain.Article) error {
	return nil
}

func (s *stubArticleRepo) Update(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error {
	return s.update(ctx, key, upd)
}

func (s *stubArticleRepo) Delete(ctx context.Context, key domain.ArticleKey) error {
	return s.del(ctx, key)
}

func articleRoutes(repo *stubArticleRepo) http.Handler {
	h := NewArticleHandler(repo, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/articles", h.List)
	r.Post("/articles", h.Create)
	r.Get("/articles/{articleID}/{publicationDate}", h.Get)
	r.Put("/articles/{articleID}/{publicationDate}", h.Update)
	r.Delete("/articles/{articleID}/{publicationDate}", h.Delete)
	return r
}

func TestArticleGet(t *testing.T) {
	repo := &stubArticleRepo{
		getByKey: func(ctx context.Context, key domain.ArticleKey) (*domain.Article, error) {
			assert.Equal(t, domain.ArticleKey{ID: "a1", PublicationDate: "2024-03-15"}, key)
			return &domain.Article{ID: "a1", PublicationDate: "2024-03-15", Headline: "Una nota"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/articles/a1/2024-03-15", nil)
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"headline":"Una nota"`)
}

func TestArticleGetNotFound(t *testing.T) {
	repo := &stubArticleRepo{
		getByKey: func(ctx context.Context, key domain.ArticleKey) (*domain.Article, error) {
			return nil, apperrors.NewNotFoundError("article a1")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/articles/a1/2024-03-15", nil)
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"article a1 not found"}`, rec.Body.String())
}

func TestArticleCreate(t *testing.T) {
	var created *domain.Article
	repo := &stubArticleRepo{
		create: func(ctx context.Context, article *domain.Article) error {
			created = article
			return nil
		},
	}

	body := `{
		"publicationDate": "2024-03-15",
		"sourceName": "El Informador",
		"headline": "Una nota",
		"url": "https://example.com/a",
		"tagIds": ["2"],
		"locationId": "1"
	}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID, "a missing id is generated")
	assert.Contains(t, rec.Body.String(), created.ID)
}

func TestArticleCreateURLConflict(t *testing.T) {
	repo := &stubArticleRepo{
		create: func(ctx context.Context, article *domain.Article) error {
			return apperrors.NewConflictError("article with url https://example.com/a already exists")
		},
	}

	body := `{"publicationDate":"2024-03-15","sourceName":"x","headline":"x","url":"https://example.com/a","tagIds":[],"locationId":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"article with url https://example.com/a already exists"}`, rec.Body.String())
}

func TestArticleCreateInvalidBody(t *testing.T) {
	repo := &stubArticleRepo{}

	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleUpdate(t *testing.T) {
	repo := &stubArticleRepo{
		update: func(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error {
			assert.Equal(t, "a1", key.ID)
			require.NotNil(t, upd.Headline)
			assert.Equal(t, "Nueva cabecera", *upd.Headline)
			return nil
		},
	}

	body := `{"headline":"Nueva cabecera"}`
	req := httptest.NewRequest(http.MethodPut, "/articles/a1/2024-03-15", strings.NewReader(body))
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Article successfully updated."}`, rec.Body.String())
}

func TestArticleUpdateEmptyPayload(t *testing.T) {
	repo := &stubArticleRepo{
		update: func(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error {
			return apperrors.NewValidationError("no valid fields provided for update")
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/articles/a1/2024-03-15", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleDelete(t *testing.T) {
	repo := &stubArticleRepo{
		del: func(ctx context.Context, key domain.ArticleKey) error {
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/articles/a1/2024-03-15", nil)
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Article successfully deleted."}`, rec.Body.String())
}

func TestArticleListDatabaseError(t *testing.T) {
	repo := &stubArticleRepo{
		list: func(ctx context.Context) ([]domain.Article, error) {
			return nil, apperrors.NewDatabaseError("scan articles", assert.AnError)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	articleRoutes(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
