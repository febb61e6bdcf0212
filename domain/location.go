package domain

// Location is a place referenced by articles. Geolocation is a
// (latitude, longitude) pair; records created by ingestion carry the name
// only and get their back-reference set extended as articles arrive.
type Location struct {
	ID          string    `json:"id" dynamodbav:"id"`
	Name        string    `json:"name" dynamodbav:"name" validate:"required"`
	Geolocation []float64 `json:"geolocation,omitempty" dynamodbav:"geolocation,omitempty" validate:"omitempty,len=2"`
	ArticleIDs  []string  `json:"articleIds,omitempty" dynamodbav:"articleIds,stringset,omitempty" validate:"omitempty,dive,required"`
}

// NewLocation is the payload for creating a location through the API, where
// the geolocation pair is mandatory.
type NewLocation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Geolocation []float64 `json:"geolocation" validate:"required,len=2"`
}

// LocationUpdate carries the fields of a partial location update
type LocationUpdate struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Geolocation *[]float64 `json:"geolocation" validate:"omitempty,len=2"`
}

// IsEmpty reports whether the update carries no fields at all
func (u LocationUpdate) IsEmpty() bool {
	return u.Name == nil && u.Geolocation == nil
}
