package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/api/middleware"
	"github.com/openplate/foodshare-api/internal/core/ports"
)

// AuthHandler issues and clears the session cookie. There is no server-side
// session state: logout only instructs the browser to drop the credential,
// and previously issued tokens stay valid until expiry.
type AuthHandler struct {
	tokens ports.TokenService
	// secureCookies selects production cookie attributes: Secure +
	// SameSite=None so the cookie survives the cross-site hop from the
	// hosted frontend. Development uses SameSite=Strict over plain HTTP.
	secureCookies bool
}

func NewAuthHandler(tokens ports.TokenService, secureCookies bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, secureCookies: secureCookies}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// IssueToken handles POST /jwt — signs a token for the posted identity and
// delivers it as an httpOnly cookie.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity claim"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, claim, err := h.tokens.Issue(req.Email)
	if err != nil {
		return err
	}

	cookie := h.newCookie()
	cookie.Value = token
	cookie.Expires = claim.ExpiresAt
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Logout handles POST /logout — expires the session cookie.
//
// @Summary      Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie := h.newCookie()
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) newCookie() *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if h.secureCookies {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: sameSite,
	}
}
