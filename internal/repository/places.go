package repository

import (
	"context"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
)

// PlacesAPIRepository is the upstream places search provider
type PlacesAPIRepository interface {
	TextSearch(ctx context.Context, query *entity.TextSearchQuery) (*entity.TextSearchResponse, error)
}
