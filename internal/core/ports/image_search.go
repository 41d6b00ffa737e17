package ports

import "context"

// Embedder converts an image into its vector embedding. The model and its
// hosting are an external collaborator; implementations only marshal.
type Embedder interface {
	Embed(ctx context.Context, image []byte) ([]float32, error)
}

// EmbeddingSearcher runs a k-nearest-neighbor search over the stored haircut
// embeddings and returns the image references of the k closest matches,
// nearest first.
type EmbeddingSearcher interface {
	Search(ctx context.Context, vector []float32, k int) ([]string, error)
}

// ImageSearchService finds barbers whose example work resembles an uploaded
// image.
type ImageSearchService interface {
	// SearchByImage returns the distinct identifiers (hex strings) of barbers
	// whose example_images contain any of the nearest-neighbor results,
	// ordered by neighbor rank.
	SearchByImage(ctx context.Context, image []byte) ([]string, error)
}
