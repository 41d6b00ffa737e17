package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spartancutz/barber-discovery/internal/core/ports"
)

// BarberHandler handles HTTP requests for the barber catalog.
type BarberHandler struct {
	service ports.BarberService
}

func NewBarberHandler(service ports.BarberService) *BarberHandler {
	return &BarberHandler{service: service}
}

// Test handles GET /test, a plain-text smoke check kept for the frontend.
func (h *BarberHandler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running!")
}

// Get handles GET /get_barber.
//
// @Summary      Search barbers by attribute filters
// @Tags         barbers
// @Produce      json
// @Param        id           query  string  false  "Barber id (hex)"
// @Param        name         query  string  false  "Exact name"
// @Param        location     query  string  false  "Exact neighborhood"
// @Param        hairstyles   query  string  false  "Substring matched against hairstyle tags (case-insensitive)"
// @Param        rating       query  number  false  "Minimum rating"
// @Param        gender       query  string  false  "Exact gender"
// @Param        will_travel  query  bool    false  "Willingness to travel"
// @Param        cost         query  number  false  "Maximum cost"
// @Success      200  {array}   barberResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /get_barber [get]
func (h *BarberHandler) Get(c echo.Context) error {
	barbers, err := h.service.SearchBarbers(c.Request().Context(), ports.BarberQuery{
		ID:         c.QueryParam("id"),
		Name:       c.QueryParam("name"),
		Location:   c.QueryParam("location"),
		Hairstyles: c.QueryParam("hairstyles"),
		Rating:     c.QueryParam("rating"),
		Gender:     c.QueryParam("gender"),
		WillTravel: c.QueryParam("will_travel"),
		Cost:       c.QueryParam("cost"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBarberResponses(barbers))
}
