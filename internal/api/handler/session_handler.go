package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spartancutz/barber-discovery/internal/core/ports"
)

// SessionHandler handles HTTP requests for booking sessions.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /create_session.
//
// @Summary      Book a session with a barber
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      createSessionRequest  true  "Booking details"
// @Success      200   {object}  createSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /create_session [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.service.CreateSession(c.Request().Context(), ports.CreateSessionInput{
		BarberID:        req.BarberID,
		UserID:          req.UserID,
		AppointmentTime: req.Time,
		Duration:        req.Duration,
		AmountPaid:      *req.AmountPaid,
		MeetingLocation: req.MeetingLocation,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createSessionResponse{
		SessionID:      session.ID.Hex(),
		Message:        "Session created successfully",
		SessionDetails: toSessionResponse(session),
	})
}

// GetUserSessions handles GET /get_user_sessions.
//
// @Summary      List sessions booked by a user
// @Tags         sessions
// @Produce      json
// @Param        user_id  query     string  true  "User id"
// @Success      200      {object}  userSessionsResponse
// @Failure      400      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /get_user_sessions [get]
func (h *SessionHandler) GetUserSessions(c echo.Context) error {
	userID := c.QueryParam("user_id")

	sessions, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userSessionsResponse{
		UserID:       userID,
		SessionCount: len(sessions),
		Sessions:     toSessionResponses(sessions),
	})
}

// GetBarberSessions handles GET /get_barber_sessions.
//
// @Summary      List sessions booked with a barber
// @Tags         sessions
// @Produce      json
// @Param        barber_id  query     string  true  "Barber id (hex)"
// @Success      200        {object}  barberSessionsResponse
// @Failure      400        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /get_barber_sessions [get]
func (h *SessionHandler) GetBarberSessions(c echo.Context) error {
	barberID := c.QueryParam("barber_id")

	sessions, err := h.service.ListByBarber(c.Request().Context(), barberID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, barberSessionsResponse{
		BarberID:     barberID,
		SessionCount: len(sessions),
		Sessions:     toSessionResponses(sessions),
	})
}
