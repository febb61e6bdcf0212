package ports

import (
	"context"

	"ecovista-backend/domain"
)

// ArticleRepository provides typed access to the Articles collection.
//
// Create enforces the URL uniqueness invariant with a lookup before the
// write; the check is not atomic against concurrent creators, so uniqueness
// is best effort. Put writes unconditionally and is reserved for ingestion.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByKey(ctx context.Context, key domain.ArticleKey) (*domain.Article, error)
	FindByURL(ctx context.Context, url string) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Put(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, key domain.ArticleKey, upd domain.ArticleUpdate) error
	Delete(ctx context.Context, key domain.ArticleKey) error
}

// ActorRepository provides typed access to the Actors collection.
// AddArticleRefs merges article ids into the actor's back-reference set with
// union semantics.
type ActorRepository interface {
	List(ctx context.Context) ([]domain.Actor, error)
	GetByID(ctx context.Context, id string) (*domain.Actor, error)
	Create(ctx context.Context, actor *domain.Actor) error
	Update(ctx context.Context, id string, upd domain.ActorUpdate) error
	Delete(ctx context.Context, id string) error
	AddArticleRefs(ctx context.Context, id string, articleIDs ...string) error
}

// TagRepository provides typed access to the Tags collection. Put is an
// idempotent upsert.
type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	Put(ctx context.Context, tag *domain.Tag) error
	Update(ctx context.Context, id string, upd domain.TagUpdate) error
	Delete(ctx context.Context, id string) error
}

// LocationRepository provides typed access to the Locations collection.
// AddArticleRefs merges article ids into the location's back-reference set
// with union semantics.
type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, id string, upd domain.LocationUpdate) error
	Delete(ctx context.Context, id string) error
	AddArticleRefs(ctx context.Context, id string, articleIDs ...string) error
}
