package domain

// Actor is a person or organization mentioned by articles. ArticleIDs is a
// string set: ingestion adds references with union semantics and never stores
// a duplicate id.
type Actor struct {
	ID         string   `json:"id" dynamodbav:"id"`
	Name       string   `json:"name" dynamodbav:"name" validate:"required"`
	TagID      string   `json:"tagId,omitempty" dynamodbav:"tagId,omitempty"`
	ArticleIDs []string `json:"articleIds" dynamodbav:"articleIds,stringset,omitempty" validate:"omitempty,dive,required"`
}

// ActorUpdate carries the fields of a partial actor update. An explicit
// ArticleIDs update replaces the whole set.
type ActorUpdate struct {
	Name       *string   `json:"name" validate:"omitempty,min=1"`
	TagID      *string   `json:"tagId" validate:"omitempty,min=1"`
	ArticleIDs *[]string `json:"articleIds" validate:"omitempty,dive,required"`
}

// IsEmpty reports whether the update carries no fields at all
func (u ActorUpdate) IsEmpty() bool {
	return u.Name == nil && u.TagID == nil && u.ArticleIDs == nil
}
