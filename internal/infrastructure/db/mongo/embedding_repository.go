package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionEmbeddings = "haircut_embeddings"

// EmbeddingRepository runs k-nearest-neighbor searches over the stored
// haircut embeddings using the Atlas Search knnBeta operator. The index and
// the vectors themselves are maintained out-of-band.
type EmbeddingRepository struct {
	col *mongo.Collection
}

func NewEmbeddingRepository(db *mongo.Database) *EmbeddingRepository {
	return &EmbeddingRepository{col: db.Collection(collectionEmbeddings)}
}

// Search returns the image references of the k embeddings nearest to vector,
// nearest first.
func (r *EmbeddingRepository) Search(ctx context.Context, vector []float32, k int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$search", Value: bson.D{
			{Key: "knnBeta", Value: bson.D{
				{Key: "vector", Value: vector},
				{Key: "path", Value: "embedding"},
				{Key: "k", Value: k},
			}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "image", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var docs []struct {
		Image string `bson:"image"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, d.Image)
	}
	return refs, nil
}
