package place

import (
	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/repository"
	"github.com/hanifbg/PlacesProxy/internal/repository/util"
)

type PlaceService struct {
	placesApi repository.PlacesAPIRepository
	apiKey    string
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *PlaceService {
	return &PlaceService{
		placesApi: repo.PlacesApi,
		apiKey:    config.GoogleAPIKey,
	}
}
