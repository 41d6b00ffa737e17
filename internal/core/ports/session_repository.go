package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// SessionRepository defines persistence operations for booking sessions.
// Sessions are append-only: there is no update or delete path.
type SessionRepository interface {
	// Insert stores a new session and returns the store-assigned identifier.
	Insert(ctx context.Context, s *domain.Session) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Session, error)
	FindByBarber(ctx context.Context, barberID string) ([]*domain.Session, error)
}
