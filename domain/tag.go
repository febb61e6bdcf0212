package domain

// Tag is a topic category. Writes are idempotent upserts: re-inserting a tag
// with the same id overwrites without side effects.
type Tag struct {
	ID   string `json:"id" dynamodbav:"id"`
	Name string `json:"name" dynamodbav:"name" validate:"required"`
}

// TagUpdate carries the fields of a partial tag update
type TagUpdate struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the update carries no fields at all
func (u TagUpdate) IsEmpty() bool {
	return u.Name == nil
}
