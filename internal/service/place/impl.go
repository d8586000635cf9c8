package place

import (
	"context"
	"fmt"
	"sort"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/hanifbg/PlacesProxy/internal/service"
	"github.com/labstack/gommon/log"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	rankByDistance = "distance"
	polishLanguage = "pl"

	// FallbackRadius is used together with FallbackLocation
	FallbackRadius = 50000
)

// FallbackLocation is the centre of Warsaw, used for Polish queries that
// come without coordinates.
var FallbackLocation = entity.Coordinates{Lat: 52.2297, Lng: 21.0122}

func (p *PlaceService) SearchPlaces(ctx context.Context, request *entity.SearchRequest) (*entity.SearchResponse, error) {
	if p.apiKey == "" {
		return nil, service.ErrMissingAPIKey
	}

	query := BuildTextSearchQuery(request)

	data, err := p.placesApi.TextSearch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("places text search: %w", err)
	}

	if data.Status != statusOK && data.Status != statusZeroResults {
		log.Warnf("places API answered %q: %s", data.Status, data.ErrorMessage)
		return nil, service.NewUpstreamError(data.Status, data.ErrorMessage)
	}

	results := RankPlaces(data.Results, request.Limit)

	return &entity.SearchResponse{
		Status:  data.Status,
		Total:   len(results),
		Results: results,
	}, nil
}

// BuildTextSearchQuery decides where the search is scoped. Explicit
// coordinates win; otherwise Polish queries are pinned to the fallback
// location and everything else goes out unscoped.
func BuildTextSearchQuery(request *entity.SearchRequest) *entity.TextSearchQuery {
	query := &entity.TextSearchQuery{
		Query:    request.Query,
		Language: request.Language,
		Type:     request.PlaceType,
	}

	switch {
	case request.Coordinates != nil:
		location := *request.Coordinates
		query.Location = &location
		if request.RankBy == rankByDistance {
			query.RankByDistance = true
		} else {
			query.Radius = request.RadiusMeters
		}
	case MentionsPolishCity(request.Query) || request.Language == polishLanguage:
		location := FallbackLocation
		query.Location = &location
		query.Radius = FallbackRadius
	}

	return query
}

// RankPlaces orders places by rating, then by number of votes, both
// descending, keeping upstream order for full ties, and returns at most
// limit of them in client shape.
func RankPlaces(places []entity.UpstreamPlace, limit int) []entity.PlaceResult {
	sorted := make([]entity.UpstreamPlace, len(places))
	copy(sorted, places)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].UserRatingsTotal > sorted[j].UserRatingsTotal
	})

	if limit < len(sorted) {
		sorted = sorted[:max(limit, 0)]
	}

	results := make([]entity.PlaceResult, 0, len(sorted))
	for _, place := range sorted {
		address := place.FormattedAddress
		if address == "" {
			address = place.Vicinity
		}
		results = append(results, entity.PlaceResult{
			Name:    place.Name,
			Rating:  place.Rating,
			Votes:   place.UserRatingsTotal,
			Address: address,
			PlaceID: place.PlaceID,
		})
	}
	return results
}
