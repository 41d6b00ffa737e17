package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// BarberFilter is the parsed, typed form of the catalog filters. Nil/empty
// fields contribute no predicate; the repository ANDs the rest together, so
// an all-empty filter matches every barber.
type BarberFilter struct {
	ID           *primitive.ObjectID
	Name         string
	Neighborhood string
	// Hairstyle is matched as a case-insensitive literal substring against
	// each element of the stored hairstyles array.
	Hairstyle  string
	MinRating  *float64
	Gender     string
	WillTravel *bool
	MaxCost    *float64
}

// BarberRepository defines read-only persistence operations for barbers.
type BarberRepository interface {
	// Find returns all barbers matching filter, in store order, unbounded.
	Find(ctx context.Context, filter BarberFilter) ([]*domain.Barber, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Barber, error)
	// FindByExampleImages returns barbers whose example_images array contains
	// at least one of the given image references.
	FindByExampleImages(ctx context.Context, imageRefs []string) ([]*domain.Barber, error)
}
