package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

const collectionSessions = "sessions"

const indexTimeout = 30 * time.Second

type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(collectionSessions)}
}

// Insert stores a new session document and returns the assigned ObjectID.
func (r *SessionRepository) Insert(ctx context.Context, s *domain.Session) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindByUser returns all sessions booked by the given user, in store order.
func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// FindByBarber returns all sessions booked with the given barber, in store order.
func (r *SessionRepository) FindByBarber(ctx context.Context, barberID string) ([]*domain.Session, error) {
	return r.find(ctx, bson.M{"barber_id": barberID})
}

func (r *SessionRepository) find(ctx context.Context, filter bson.M) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.Session, 0)
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureIndexes creates the indexes backing the session list endpoints.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "barber_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
