package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// BarberImporter performs the bulk insert used by the import command. It is
// deliberately separate from BarberRepository, which stays read-only for the
// API surface.
type BarberImporter struct {
	col *mongo.Collection
}

func NewBarberImporter(db *mongo.Database) *BarberImporter {
	return &BarberImporter{col: db.Collection(collectionBarbers)}
}

// InsertMany inserts all barbers and returns how many documents were written.
func (i *BarberImporter) InsertMany(ctx context.Context, barbers []*domain.Barber) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	docs := make([]any, len(barbers))
	for n, b := range barbers {
		docs[n] = b
	}

	res, err := i.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
