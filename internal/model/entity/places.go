package entity

// Coordinates is a finite latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchRequest is the normalized input of a places search
type SearchRequest struct {
	Query        string       `json:"query"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Language     string       `json:"language" validate:"required"`
	Limit        int          `json:"n" validate:"min=1,max=10"`
	RadiusMeters int          `json:"radius" validate:"min=100,max=50000"`
	RankBy       string       `json:"rankby,omitempty" validate:"omitempty,eq=distance"`
	PlaceType    string       `json:"type,omitempty"`
}

// TextSearchQuery is what gets sent to the upstream text search endpoint.
// Location is nil for an unscoped search; Radius is ignored when
// RankByDistance is set.
type TextSearchQuery struct {
	Query          string
	Location       *Coordinates
	Radius         int
	RankByDistance bool
	Language       string
	Type           string
}

// UpstreamPlace holds the fields we read from one upstream result record.
// Absent fields keep their zero value.
type UpstreamPlace struct {
	Name             string
	Rating           float64
	UserRatingsTotal int64
	FormattedAddress string
	Vicinity         string
	PlaceID          string
}

// TextSearchResponse is the decoded upstream payload
type TextSearchResponse struct {
	Status       string
	ErrorMessage string
	Results      []UpstreamPlace
}

// PlaceResult is the client-facing shape of a single place
type PlaceResult struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Votes   int64   `json:"votes"`
	Address string  `json:"address"`
	PlaceID string  `json:"place_id"`
}

// SearchResponse is the success payload of the places endpoint
type SearchResponse struct {
	Status  string        `json:"status"`
	Total   int           `json:"total"`
	Results []PlaceResult `json:"results"`
}
