package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for food requests.
type RequestHandler struct {
	requests ports.RequestService
}

func NewRequestHandler(requests ports.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// File handles POST /foods-request — claims the listing and records the
// request.
//
// @Summary      Request a food listing
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      fileFoodRequest  true  "Request details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /foods-request [post]
func (h *RequestHandler) File(c echo.Context) error {
	var req fileFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.requests.FileRequest(c.Request().Context(), toFileRequestInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Food requested successfully"})
}

// ListByRequester handles GET /request-email/:email — the caller's own
// requests.
//
// @Summary      List requests filed by a user
// @Tags         requests
// @Produce      json
// @Param        email  path      string  true  "Requester email"
// @Success      200    {array}   foodRequestResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /request-email/{email} [get]
func (h *RequestHandler) ListByRequester(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	requests, err := h.requests.ListByRequester(c.Request().Context(), email, c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestListResponse(requests))
}
