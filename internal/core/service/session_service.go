package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
	"github.com/spartancutz/barber-discovery/internal/metrics"
)

type SessionService struct {
	sessions ports.SessionRepository
	barbers  ports.BarberRepository
	logger   zerolog.Logger
	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewSessionService(sessions ports.SessionRepository, barbers ports.BarberRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		barbers:  barbers,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession books an appointment. Steps are strictly ordered so no
// partial state is ever left behind: validation, then barber lookup, then a
// single insert. The barber's name and profile image are copied onto the
// session at creation time.
func (s *SessionService) CreateSession(ctx context.Context, input ports.CreateSessionInput) (*domain.Session, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	barberID, err := primitive.ObjectIDFromHex(input.BarberID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed barber id %q", domain.ErrInvalidInput, input.BarberID)
	}

	barber, err := s.barbers.FindByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		BarberID:        barber.ID.Hex(),
		UserID:          input.UserID,
		BarberName:      barber.Name,
		BarberPhoto:     barber.ProfileImage,
		CreatedTime:     s.now().Unix(),
		AppointmentTime: input.AppointmentTime,
		Duration:        input.Duration,
		AmountPaid:      input.AmountPaid,
		MeetingLocation: input.MeetingLocation,
	}

	id, err := s.sessions.Insert(ctx, session)
	if err != nil {
		s.logger.Error().Err(err).Str("barber_id", session.BarberID).Msg("failed to insert session")
		return nil, err
	}
	session.ID = id

	metrics.SessionsCreatedTotal.Inc()
	s.logger.Info().
		Str("session_id", id.Hex()).
		Str("barber_id", session.BarberID).
		Str("user_id", session.UserID).
		Msg("session created")

	return session, nil
}

// ListByUser returns every session booked by the given user, in store order.
func (s *SessionService) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return s.sessions.FindByUser(ctx, userID)
}

// ListByBarber returns every session booked with the given barber, in store order.
func (s *SessionService) ListByBarber(ctx context.Context, barberID string) ([]*domain.Session, error) {
	if barberID == "" {
		return nil, fmt.Errorf("%w: barber id is required", domain.ErrInvalidInput)
	}
	return s.sessions.FindByBarber(ctx, barberID)
}

func validateCreateInput(input ports.CreateSessionInput) error {
	switch {
	case input.BarberID == "":
		return fmt.Errorf("%w: barber_id is required", domain.ErrInvalidInput)
	case input.UserID == "":
		return fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	case input.MeetingLocation == "":
		return fmt.Errorf("%w: meeting_location is required", domain.ErrInvalidInput)
	case input.AppointmentTime <= 0:
		return fmt.Errorf("%w: time must be a positive epoch timestamp", domain.ErrInvalidInput)
	case input.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	case input.AmountPaid < 0:
		return fmt.Errorf("%w: amount_paid must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
