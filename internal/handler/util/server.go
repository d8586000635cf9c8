package util

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/hanifbg/PlacesProxy/config"
	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
)

const bodyLimit = "1M"

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// NewServer builds the echo instance with the middleware stack shared by
// every route. Routes are added by InitHandler.
func NewServer(cfg *config.AppConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	level, ok := logLevels[strings.ToLower(cfg.LogLevel)]
	if !ok {
		level = log.INFO
	}
	e.Logger.SetLevel(level)
	log.SetLevel(level)

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	return e
}

// errorHandler renders framework errors (unknown routes, panics caught by
// Recover) in the same {"error": ...} shape the handlers use.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "Internal error"

	if he, ok := err.(*echo.HTTPError); ok && he.Code != http.StatusInternalServerError {
		code = he.Code
		msg = http.StatusText(code)
	} else {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, entity.ErrorResponse{Error: msg})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
