package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/viewings-api/internal/api/middleware"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

// requester extracts the identity injected by the Auth middleware and fails
// fast when it is missing, before any service call.
func requester(c echo.Context) (ports.Requester, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if id == "" || role == "" {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Requester{ID: id, Role: role}, nil
}
