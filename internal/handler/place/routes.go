package place

import (
	"net/http"

	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/service"
	"github.com/hanifbg/PlacesProxy/internal/service/util"
	"github.com/labstack/echo"
)

type ApiWrapper struct {
	PlaceService service.PlaceService
	APIKey       string
}

func InitRoute(e *echo.Echo, config *config.AppConfig, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		PlaceService: servWrapper.PlaceService,
		APIKey:       config.GoogleAPIKey,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	methods := []string{http.MethodGet, http.MethodPost}
	e.Match(methods, "/places", a.SearchPlaces)

	// serverless-style path used by the existing frontend
	e.Group("/api").Match(methods, "/places", a.SearchPlaces)
}
