package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/api/metrics"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

// TokenCookie is the name of the credential cookie set by POST /jwt.
const TokenCookie = "token"

// ClaimEmailKey is the echo context key the verified claim email is stored
// under for downstream handlers.
const ClaimEmailKey = "claim_email"

// Auth verifies the session cookie and injects the claim email into context.
// A missing cookie and a failed verification are both 401s; distinguishing
// them matters only for metrics and logs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			claim, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(ClaimEmailKey, claim.Email)
			return next(c)
		}
	}
}
