package health

import (
	"net/http"

	"github.com/hanifbg/PlacesProxy/internal/model/entity"
	"github.com/labstack/echo"
)

const okMessage = "Backend działa poprawnie ✅"

// Check answers every method; preflight requests never reach it because the
// CORS middleware short-circuits them.
func Check(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.HealthResponse{OK: true, Msg: okMessage})
}
