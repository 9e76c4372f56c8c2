package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/api/middleware"
)

// claimEmail extracts the verified claim email injected by the Auth
// middleware. An empty value means the middleware did not run on this route,
// which is a wiring bug — fail closed with a 401 rather than letting an
// identity-scoped handler proceed unauthenticated.
func claimEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ClaimEmailKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
