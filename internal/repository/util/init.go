package util

import (
	"net/http"

	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/repository"
	googleapi "github.com/hanifbg/PlacesProxy/internal/repository/google-api"
)

type RepoWrapper struct {
	PlacesApi repository.PlacesAPIRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	httpClient := &http.Client{
		Timeout: config.UpstreamTimeout,
	}

	apiWrapper := googleapi.New(config, httpClient)

	repoWrapper = &RepoWrapper{
		PlacesApi: apiWrapper.PlacesApi,
	}

	return
}
