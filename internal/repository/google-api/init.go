package googleapi

import (
	"net/http"

	"github.com/hanifbg/PlacesProxy/config"
)

type ApiWrapper struct {
	PlacesApi *PlacesApiClient
}

type PlacesApiClient struct {
	Client *http.Client
	Config *config.AppConfig
}

func New(config *config.AppConfig, client *http.Client) *ApiWrapper {
	return &ApiWrapper{
		PlacesApi: &PlacesApiClient{
			Client: client,
			Config: config,
		},
	}
}
