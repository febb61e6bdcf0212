package domain

// Article is one catalogued news item. Identity is the composite
// (ID, PublicationDate) pair: several records may share an ID as long as
// their publication dates differ.
type Article struct {
	ID              string   `json:"id" dynamodbav:"id"`
	PublicationDate string   `json:"publicationDate" dynamodbav:"publicationDate" validate:"required"`
	SourceName      string   `json:"sourceName" dynamodbav:"sourceName" validate:"required"`
	Paywall         bool     `json:"paywall" dynamodbav:"paywall"`
	Headline        string   `json:"headline" dynamodbav:"headline" validate:"required"`
	URL             string   `json:"url" dynamodbav:"url" validate:"required"`
	Author          string   `json:"author" dynamodbav:"author"`
	CoverageLevel   string   `json:"coverageLevel" dynamodbav:"coverageLevel"`
	ActorIDs        []string `json:"actorIds" dynamodbav:"actorIds" validate:"omitempty,dive,required"`
	TagIDs          []string `json:"tagIds" dynamodbav:"tagIds" validate:"required,dive"`
	LocationID      string   `json:"locationId" dynamodbav:"locationId" validate:"required"`
}

// ArticleKey is the full composite key of an article record. Both attributes
// must be supplied for point reads, updates and deletes.
type ArticleKey struct {
	ID              string `validate:"required"`
	PublicationDate string `validate:"required"`
}

// ArticleUpdate carries the fields of a partial update. Nil fields are left
// untouched; list fields are replaced wholesale, never merged.
// PublicationDate is part of the key and cannot be updated.
type ArticleUpdate struct {
	SourceName    *string   `json:"sourceName" validate:"omitempty,min=1"`
	Paywall       *bool     `json:"paywall"`
	Headline      *string   `json:"headline" validate:"omitempty,min=1"`
	URL           *string   `json:"url" validate:"omitempty,min=1"`
	Author        *string   `json:"author"`
	CoverageLevel *string   `json:"coverageLevel"`
	ActorIDs      *[]string `json:"actorIds" validate:"omitempty,dive,required"`
	TagIDs        *[]string `json:"tagIds" validate:"omitempty,dive"`
	LocationID    *string   `json:"locationId" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the update carries no fields at all
func (u ArticleUpdate) IsEmpty() bool {
	return u.SourceName == nil &&
		u.Paywall == nil &&
		u.Headline == nil &&
		u.URL == nil &&
		u.Author == nil &&
		u.CoverageLevel == nil &&
		u.ActorIDs == nil &&
		u.TagIDs == nil &&
		u.LocationID == nil
}
