package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
	"github.com/spartancutz/barber-discovery/internal/metrics"
)

const defaultNeighbors = 5

type ImageSearchService struct {
	embedder  ports.Embedder
	searcher  ports.EmbeddingSearcher
	barbers   ports.BarberRepository
	neighbors int
	logger    zerolog.Logger
}

func NewImageSearchService(embedder ports.Embedder, searcher ports.EmbeddingSearcher, barbers ports.BarberRepository, neighbors int, logger zerolog.Logger) *ImageSearchService {
	if neighbors <= 0 {
		neighbors = defaultNeighbors
	}
	return &ImageSearchService{
		embedder:  embedder,
		searcher:  searcher,
		barbers:   barbers,
		neighbors: neighbors,
		logger:    logger,
	}
}

// SearchByImage embeds the uploaded image, finds the k nearest stored
// haircut embeddings, and maps their image references back to the barbers
// advertising them. The result keeps neighbor order and drops duplicates.
func (s *ImageSearchService) SearchByImage(ctx context.Context, image []byte) ([]string, error) {
	vector, err := s.embedder.Embed(ctx, image)
	if err != nil {
		metrics.ImageSearchesTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("image embedding failed")
		return nil, err
	}

	imageRefs, err := s.searcher.Search(ctx, vector, s.neighbors)
	if err != nil {
		metrics.ImageSearchesTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("vector search failed")
		return nil, err
	}
	if len(imageRefs) == 0 {
		metrics.ImageSearchesTotal.WithLabelValues("ok").Inc()
		return []string{}, nil
	}

	barbers, err := s.barbers.FindByExampleImages(ctx, imageRefs)
	if err != nil {
		metrics.ImageSearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	ids := orderByNeighborRank(imageRefs, barbers)

	metrics.ImageSearchesTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Int("neighbors", len(imageRefs)).Int("barbers", len(ids)).Msg("image search")
	return ids, nil
}

// orderByNeighborRank walks the neighbor results nearest-first and collects
// the owning barbers, so the best visual match comes back first.
func orderByNeighborRank(imageRefs []string, barbers []*domain.Barber) []string {
	owners := make(map[string][]string, len(imageRefs))
	for _, b := range barbers {
		for _, ref := range b.ExampleImages {
			owners[ref] = append(owners[ref], b.ID.Hex())
		}
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0, len(barbers))
	for _, ref := range imageRefs {
		for _, id := range owners[ref] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
