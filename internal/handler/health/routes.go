package health

import "github.com/labstack/echo"

func InitRoute(e *echo.Echo) {
	e.Any("/health", Check)
	e.Any("/api/health", Check)
}
