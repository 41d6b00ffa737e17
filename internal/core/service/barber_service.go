package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
	"github.com/spartancutz/barber-discovery/internal/metrics"
)

type BarberService struct {
	repo   ports.BarberRepository
	logger zerolog.Logger
}

func NewBarberService(repo ports.BarberRepository, logger zerolog.Logger) *BarberService {
	return &BarberService{repo: repo, logger: logger}
}

// SearchBarbers parses the raw filters into a typed filter and executes it.
// Parsing happens entirely before the store is touched: a malformed id,
// rating, cost or travel flag fails the request without a query.
func (s *BarberService) SearchBarbers(ctx context.Context, q ports.BarberQuery) ([]*domain.Barber, error) {
	filter, err := parseBarberQuery(q)
	if err != nil {
		return nil, err
	}

	barbers, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("barber search failed")
		return nil, err
	}

	metrics.BarberSearchesTotal.Inc()
	s.logger.Debug().Int("matches", len(barbers)).Msg("barber search")
	return barbers, nil
}

func parseBarberQuery(q ports.BarberQuery) (ports.BarberFilter, error) {
	filter := ports.BarberFilter{
		Name:         q.Name,
		Neighborhood: q.Location,
		Hairstyle:    q.Hairstyles,
		Gender:       q.Gender,
	}

	if q.ID != "" {
		id, err := primitive.ObjectIDFromHex(q.ID)
		if err != nil {
			return ports.BarberFilter{}, fmt.Errorf("%w: malformed barber id %q", domain.ErrInvalidInput, q.ID)
		}
		filter.ID = &id
	}
	if q.Rating != "" {
		min, err := strconv.ParseFloat(q.Rating, 64)
		if err != nil {
			return ports.BarberFilter{}, fmt.Errorf("%w: rating must be a number", domain.ErrInvalidInput)
		}
		filter.MinRating = &min
	}
	if q.Cost != "" {
		max, err := strconv.ParseFloat(q.Cost, 64)
		if err != nil {
			return ports.BarberFilter{}, fmt.Errorf("%w: cost must be a number", domain.ErrInvalidInput)
		}
		filter.MaxCost = &max
	}
	if q.WillTravel != "" {
		travels, err := strconv.ParseBool(q.WillTravel)
		if err != nil {
			return ports.BarberFilter{}, fmt.Errorf("%w: will_travel must be a boolean", domain.ErrInvalidInput)
		}
		filter.WillTravel = &travels
	}

	return filter, nil
}
