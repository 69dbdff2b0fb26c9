package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC lets the request through only when the caller's role is allowed.
// It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				if role == "" {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("role %s may not perform this action", role))
			}
			return next(c)
		}
	}
}
