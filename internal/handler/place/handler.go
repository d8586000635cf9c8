package place

import (
	"errors"
	"net/http"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/hanifbg/PlacesProxy/internal/service"
	"github.com/labstack/echo"
)

const (
	missingKeyMessage = "Missing GOOGLE_MAPS_API_KEY"
	internalMessage   = "Internal error"
)

func (a *ApiWrapper) SearchPlaces(c echo.Context) error {
	if a.APIKey == "" {
		return c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: missingKeyMessage})
	}

	p, err := readParams(c)
	if err != nil {
		// body limit hit while reading a body of unknown length
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return a.internalError(c, err)
	}

	request := newSearchRequest(p)
	if err := c.Validate(request); err != nil {
		return a.internalError(c, err)
	}

	result, err := a.PlaceService.SearchPlaces(c.Request().Context(), request)
	if err != nil {
		var upstreamErr *service.UpstreamError
		switch {
		case errors.Is(err, service.ErrMissingAPIKey):
			return c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: missingKeyMessage})
		case errors.As(err, &upstreamErr):
			return c.JSON(http.StatusBadGateway, entity.ErrorResponse{
				Status: upstreamErr.Status,
				Error:  upstreamErr.Message,
			})
		default:
			return a.internalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, result)
}

func (a *ApiWrapper) internalError(c echo.Context, err error) error {
	c.Logger().Errorf("places handler error: %v", err)
	return c.JSON(http.StatusInternalServerError, entity.ErrorResponse{Error: internalMessage})
}
