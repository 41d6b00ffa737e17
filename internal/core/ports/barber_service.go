package ports

import (
	"context"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// BarberQuery carries the raw, optional query-string filters exactly as the
// client sent them. Empty string means "not supplied". Parsing into typed
// values is the service's job; a value that cannot be parsed fails the whole
// request with domain.ErrInvalidInput.
type BarberQuery struct {
	ID         string
	Name       string
	Location   string
	Hairstyles string
	Rating     string
	Gender     string
	WillTravel string
	Cost       string
}

// BarberService defines use-case operations for the barber catalog.
type BarberService interface {
	SearchBarbers(ctx context.Context, q BarberQuery) ([]*domain.Barber, error)
}
