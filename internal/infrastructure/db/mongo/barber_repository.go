package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
)

const collectionBarbers = "barbers"

type BarberRepository struct {
	col *mongo.Collection
}

func NewBarberRepository(db *mongo.Database) *BarberRepository {
	return &BarberRepository{col: db.Collection(collectionBarbers)}
}

// Find executes the conjunctive filter and returns the full match set in
// store order. No limit is applied; the catalog is small and the endpoint
// contract has no pagination.
func (r *BarberRepository) Find(ctx context.Context, filter ports.BarberFilter) ([]*domain.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, buildBarberFilter(filter))
	if err != nil {
		return nil, err
	}

	barbers := make([]*domain.Barber, 0)
	if err := cur.All(ctx, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// FindByID retrieves a single barber by its ObjectID.
func (r *BarberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b domain.Barber
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBarberNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByExampleImages returns every barber advertising at least one of the
// given image references.
func (r *BarberRepository) FindByExampleImages(ctx context.Context, imageRefs []string) ([]*domain.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"example_images": bson.M{"$in": imageRefs}})
	if err != nil {
		return nil, err
	}

	barbers := make([]*domain.Barber, 0)
	if err := cur.All(ctx, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// buildBarberFilter translates the typed filter into a Mongo query document.
// Each present field contributes exactly one predicate; the empty filter
// yields the match-all query.
func buildBarberFilter(f ports.BarberFilter) bson.M {
	query := bson.M{}

	if f.ID != nil {
		query["_id"] = *f.ID
	}
	if f.Name != "" {
		query["name"] = f.Name
	}
	if f.Neighborhood != "" {
		query["neighborhood"] = f.Neighborhood
	}
	if f.Hairstyle != "" {
		// Literal substring match against every array element, ignoring case.
		// QuoteMeta keeps regex metacharacters in the input from widening the
		// match.
		query["hairstyles"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Hairstyle),
			Options: "i",
		}
	}
	if f.MinRating != nil {
		query["rating"] = bson.M{"$gte": *f.MinRating}
	}
	if f.Gender != "" {
		query["gender"] = f.Gender
	}
	if f.WillTravel != nil {
		query["will_travel"] = *f.WillTravel
	}
	if f.MaxCost != nil {
		query["cost"] = bson.M{"$lte": *f.MaxCost}
	}

	return query
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *BarberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "neighborhood", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: 1}}},
		{Keys: bson.D{{Key: "example_images", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
