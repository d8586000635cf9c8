package util

import (
	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/handler/health"
	"github.com/hanifbg/PlacesProxy/internal/handler/place"
	serv "github.com/hanifbg/PlacesProxy/internal/service/util"
	"github.com/labstack/echo"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	health.InitRoute(e)
	place.InitRoute(e, config, servWrapper)
}
