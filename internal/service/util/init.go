package util

import (
	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/repository/util"
	"github.com/hanifbg/PlacesProxy/internal/service"
	"github.com/hanifbg/PlacesProxy/internal/service/place"
)

type ServiceWrapper struct {
	PlaceService service.PlaceService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		PlaceService: place.New(config, repo),
	}
}
