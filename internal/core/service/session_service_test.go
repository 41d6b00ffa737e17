package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spartancutz/barber-discovery/internal/core/domain"
	"github.com/spartancutz/barber-discovery/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	sessions  []*domain.Session
	insertErr error
	findErr   error
	queried   bool
}

func (r *stubSessionRepo) Insert(_ context.Context, s *domain.Session) (primitive.ObjectID, error) {
	if r.insertErr != nil {
		return primitive.NilObjectID, r.insertErr
	}
	id := primitive.NewObjectID()
	clone := *s
	clone.ID = id
	r.sessions = append(r.sessions, &clone)
	return id, nil
}

func (r *stubSessionRepo) FindByUser(_ context.Context, userID string) ([]*domain.Session, error) {
	r.queried = true
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*domain.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSessionRepo) FindByBarber(_ context.Context, barberID string) ([]*domain.Session, error) {
	r.queried = true
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*domain.Session
	for _, s := range r.sessions {
		if s.BarberID == barberID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedBarber(repo *stubBarberRepo) *domain.Barber {
	b := &domain.Barber{
		ID:           primitive.NewObjectID(),
		Name:         "Marcus",
		Neighborhood: "East Lansing",
		ProfileImage: "marcus.jpg",
		Rating:       4.8,
	}
	repo.barbers = append(repo.barbers, b)
	return b
}

func validInput(barberID string) ports.CreateSessionInput {
	return ports.CreateSessionInput{
		BarberID:        barberID,
		UserID:          "u1",
		AppointmentTime: 1700000000,
		Duration:        30,
		AmountPaid:      25.0,
		MeetingLocation: "Shop A",
	}
}

// ---------------------------------------------------------------------------
// CreateSession tests
// ---------------------------------------------------------------------------

func TestSessionService_Create_Success(t *testing.T) {
	barbers := &stubBarberRepo{}
	barber := seedBarber(barbers)
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, barbers, discardLogger)

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	session, err := svc.CreateSession(context.Background(), validInput(barber.ID.Hex()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.ID.IsZero() {
		t.Error("session must carry the store-assigned id")
	}
	if session.BarberID != barber.ID.Hex() {
		t.Errorf("barber_id: want %q, got %q", barber.ID.Hex(), session.BarberID)
	}
	if session.BarberName != "Marcus" || session.BarberPhoto != "marcus.jpg" {
		t.Errorf("denormalized fields wrong: %+v", session)
	}
	if session.CreatedTime != fixed.Unix() {
		t.Errorf("created_time must be server time %d, got %d", fixed.Unix(), session.CreatedTime)
	}
	if session.AppointmentTime != 1700000000 || session.Duration != 30 ||
		session.AmountPaid != 25.0 || session.MeetingLocation != "Shop A" {
		t.Errorf("booking fields not copied: %+v", session)
	}
	if len(sessions.sessions) != 1 {
		t.Errorf("expected exactly one stored session, got %d", len(sessions.sessions))
	}
}

func TestSessionService_Create_UnknownBarber(t *testing.T) {
	barbers := &stubBarberRepo{}
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, barbers, discardLogger)

	_, err := svc.CreateSession(context.Background(), validInput(primitive.NewObjectID().Hex()))
	if !errors.Is(err, domain.ErrBarberNotFound) {
		t.Errorf("expected ErrBarberNotFound, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("no session may be inserted when the barber does not exist")
	}
}

func TestSessionService_Create_MalformedBarberID(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, &stubBarberRepo{}, discardLogger)

	_, err := svc.CreateSession(context.Background(), validInput("zzz"))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("no session may be inserted on invalid input")
	}
}

func TestSessionService_Create_MissingFields(t *testing.T) {
	barbers := &stubBarberRepo{}
	barber := seedBarber(barbers)

	cases := []struct {
		name   string
		mutate func(*ports.CreateSessionInput)
	}{
		{"missing barber_id", func(i *ports.CreateSessionInput) { i.BarberID = "" }},
		{"missing user_id", func(i *ports.CreateSessionInput) { i.UserID = "" }},
		{"missing meeting_location", func(i *ports.CreateSessionInput) { i.MeetingLocation = "" }},
		{"zero time", func(i *ports.CreateSessionInput) { i.AppointmentTime = 0 }},
		{"zero duration", func(i *ports.CreateSessionInput) { i.Duration = 0 }},
		{"negative amount", func(i *ports.CreateSessionInput) { i.AmountPaid = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := &stubSessionRepo{}
			svc := NewSessionService(sessions, barbers, discardLogger)

			input := validInput(barber.ID.Hex())
			tc.mutate(&input)

			_, err := svc.CreateSession(context.Background(), input)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if len(sessions.sessions) != 0 {
				t.Error("no session may be inserted on invalid input")
			}
		})
	}
}

func TestSessionService_Create_InsertError(t *testing.T) {
	barbers := &stubBarberRepo{}
	barber := seedBarber(barbers)
	sessions := &stubSessionRepo{insertErr: errors.New("db unavailable")}
	svc := NewSessionService(sessions, barbers, discardLogger)

	_, err := svc.CreateSession(context.Background(), validInput(barber.ID.Hex()))
	if err == nil {
		t.Fatal("expected error when insert fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestSessionService_List_EmptyIdentifier(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, &stubBarberRepo{}, discardLogger)

	if _, err := svc.ListByUser(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("ListByUser: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ListByBarber(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("ListByBarber: expected ErrInvalidInput, got %v", err)
	}
	if sessions.queried {
		t.Error("no store query may run for an empty identifier")
	}
}

func TestSessionService_CreateThenListRoundTrip(t *testing.T) {
	barbers := &stubBarberRepo{}
	barber := seedBarber(barbers)
	sessions := &stubSessionRepo{}
	svc := NewSessionService(sessions, barbers, discardLogger)

	created, err := svc.CreateSession(context.Background(), validInput(barber.ID.Hex()))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byUser, err := svc.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("expected exactly one session for u1, got %d", len(byUser))
	}
	if byUser[0].ID != created.ID || byUser[0].BarberName != created.BarberName ||
		byUser[0].CreatedTime != created.CreatedTime {
		t.Errorf("retrieved session differs from created one: %+v vs %+v", byUser[0], created)
	}

	byBarber, err := svc.ListByBarber(context.Background(), barber.ID.Hex())
	if err != nil {
		t.Fatalf("list by barber: %v", err)
	}
	if len(byBarber) != 1 || byBarber[0].ID != created.ID {
		t.Errorf("barber listing missed the created session: %+v", byBarber)
	}
}
