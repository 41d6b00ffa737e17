package handler

// --- Request types ---

type createSessionRequest struct {
	BarberID string `json:"barber_id" validate:"required"`
	UserID   string `json:"user_id"   validate:"required"`
	Time     int64  `json:"time"      validate:"required,gt=0"`
	Duration int    `json:"duration"  validate:"required,gt=0"`
	// AmountPaid is a pointer so an absent key is distinguishable from an
	// explicit 0: free sessions are valid bookings, omitted amounts are not.
	AmountPaid      *float64 `json:"amount_paid"      validate:"required,gte=0"`
	MeetingLocation string   `json:"meeting_location" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type sessionResponse struct {
	ID              string  `json:"_id"`
	BarberID        string  `json:"barber_id"`
	UserID          string  `json:"user_id"`
	BarberName      string  `json:"barber_name"`
	BarberPhoto     string  `json:"barber_photo"`
	CreatedTime     int64   `json:"created_time"`
	AppointmentTime int64   `json:"appointment_time"`
	Duration        int     `json:"duration"`
	AmountPaid      float64 `json:"amount_paid"`
	MeetingLocation string  `json:"meeting_location"`
}

type createSessionResponse struct {
	SessionID      string          `json:"session_id"`
	Message        string          `json:"message"`
	SessionDetails sessionResponse `json:"session_details"`
}

type userSessionsResponse struct {
	UserID       string            `json:"user_id"`
	SessionCount int               `json:"session_count"`
	Sessions     []sessionResponse `json:"sessions"`
}

type barberSessionsResponse struct {
	BarberID     string            `json:"barber_id"`
	SessionCount int               `json:"session_count"`
	Sessions     []sessionResponse `json:"sessions"`
}

type imageSearchResponse struct {
	SimilarBarbers []string `json:"similar_barbers"`
}
