package handler

import (
	"github.com/spartancutz/barber-discovery/internal/core/domain"
)

// --- Domain → HTTP response ---

func toBarberResponses(barbers []*domain.Barber) []barberResponse {
	out := make([]barberResponse, len(barbers))
	for i, b := range barbers {
		out[i] = barberResponse{
			ID:            b.ID.Hex(),
			Name:          b.Name,
			Neighborhood:  b.Neighborhood,
			Dorm:          b.Dorm,
			Biography:     b.Biography,
			Hairstyles:    b.Hairstyles,
			Rating:        b.Rating,
			Gender:        b.Gender,
			WillTravel:    b.WillTravel,
			Cost:          b.Cost,
			ProfileImage:  b.ProfileImage,
			ExampleImages: b.ExampleImages,
		}
	}
	return out
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:              s.ID.Hex(),
		BarberID:        s.BarberID,
		UserID:          s.UserID,
		BarberName:      s.BarberName,
		BarberPhoto:     s.BarberPhoto,
		CreatedTime:     s.CreatedTime,
		AppointmentTime: s.AppointmentTime,
		Duration:        s.Duration,
		AmountPaid:      s.AmountPaid,
		MeetingLocation: s.MeetingLocation,
	}
}

func toSessionResponses(sessions []*domain.Session) []sessionResponse {
	out := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = toSessionResponse(s)
	}
	return out
}
