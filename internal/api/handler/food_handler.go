package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openplate/foodshare-api/internal/core/ports"
	"github.com/openplate/foodshare-api/internal/core/service"
)

// FoodHandler handles HTTP requests for food listings.
type FoodHandler struct {
	listings ports.ListingService
}

func NewFoodHandler(listings ports.ListingService) *FoodHandler {
	return &FoodHandler{listings: listings}
}

// List handles GET /foods — available listings, most recent first.
//
// @Summary      List available foods
// @Tags         foods
// @Produce      json
// @Success      200  {array}   foodResponse
// @Failure      500  {object}  errorResponse
// @Router       /foods [get]
func (h *FoodHandler) List(c echo.Context) error {
	listings, err := h.listings.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFoodListResponse(listings))
}

// Get handles GET /foods/:id.
//
// @Summary      Get a food by id
// @Tags         foods
// @Produce      json
// @Param        id   path      string  true  "Food id (ObjectID hex)"
// @Success      200  {object}  foodResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /foods/{id} [get]
func (h *FoodHandler) Get(c echo.Context) error {
	listing, err := h.listings.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFoodResponse(listing))
}

// Create handles POST /foods.
//
// @Summary      Create a food listing
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        body  body      createFoodRequest  true  "Food listing"
// @Success      201   {object}  foodResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /foods [post]
func (h *FoodHandler) Create(c echo.Context) error {
	var req createFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.listings.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toFoodResponse(listing))
}

// Update handles PUT /foods/:id — full replace of the mutable fields.
// An unknown id creates the listing (upsert); this is deliberate contract,
// not a fallback.
//
// @Summary      Update (or upsert) a food listing
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Food id (ObjectID hex)"
// @Param        body  body      updateFoodRequest  true  "Replacement fields"
// @Success      200   {object}  foodResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /foods/{id} [put]
func (h *FoodHandler) Update(c echo.Context) error {
	var req updateFoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	listing, err := h.listings.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFoodResponse(listing))
}

// Delete handles DELETE /foods/:id. Idempotent: deleting an unknown id
// succeeds with deletedCount 0.
//
// @Summary      Delete a food listing
// @Tags         foods
// @Produce      json
// @Param        id   path      string  true  "Food id (ObjectID hex)"
// @Success      200  {object}  deleteFoodResponse
// @Failure      400  {object}  errorResponse
// @Router       /foods/{id} [delete]
func (h *FoodHandler) Delete(c echo.Context) error {
	deleted, err := h.listings.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteFoodResponse{DeletedCount: deleted})
}

// ListByOwner handles GET /foods-email/:email — the caller's own listings.
//
// @Summary      List foods donated by a user
// @Tags         foods
// @Produce      json
// @Param        email  path      string  true  "Donator email"
// @Success      200    {array}   foodResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /foods-email/{email} [get]
func (h *FoodHandler) ListByOwner(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	listings, err := h.listings.ListByOwner(c.Request().Context(), email, c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFoodListResponse(listings))
}

// Featured handles GET /featured-foods — top listings by quantity.
//
// @Summary      List featured foods
// @Tags         foods
// @Produce      json
// @Success      200  {array}   foodResponse
// @Failure      500  {object}  errorResponse
// @Router       /featured-foods [get]
func (h *FoodHandler) Featured(c echo.Context) error {
	listings, err := h.listings.Featured(c.Request().Context(), service.DefaultFeaturedLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFoodListResponse(listings))
}
