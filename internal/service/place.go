package service

import (
	"context"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
)

type PlaceService interface {
	SearchPlaces(ctx context.Context, request *entity.SearchRequest) (*entity.SearchResponse, error)
}
