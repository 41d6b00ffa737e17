package ports

import (
	"context"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// CreateSessionInput carries all data needed to create a booking.
// AppointmentTime and CreatedTime are epoch seconds; Duration is minutes.
type CreateSessionInput struct {
	BarberID        string
	UserID          string
	AppointmentTime int64
	Duration        int
	AmountPaid      float64
	MeetingLocation string
}

// SessionService defines use-case operations for bookings.
type SessionService interface {
	// CreateSession validates input, resolves the barber (failing with
	// domain.ErrBarberNotFound before anything is written), then inserts the
	// derived session and returns it with the store-assigned identifier set.
	CreateSession(ctx context.Context, input CreateSessionInput) (*domain.Session, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	ListByBarber(ctx context.Context, barberID string) ([]*domain.Session, error)
}
