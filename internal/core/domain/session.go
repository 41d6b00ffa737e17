package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a booking record linking a user to a barber at a specific time.
//
// BarberName and BarberPhoto are denormalized copies taken from the barber
// document at creation time; they are never resynced, so a session keeps the
// barber as it looked when the booking was made.
type Session struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BarberID        string             `bson:"barber_id"`
	UserID          string             `bson:"user_id"`
	BarberName      string             `bson:"barber_name"`
	BarberPhoto     string             `bson:"barber_photo"`
	CreatedTime     int64              `bson:"created_time"`
	AppointmentTime int64              `bson:"appointment_time"`
	Duration        int                `bson:"duration"`
	AmountPaid      float64            `bson:"amount_paid"`
	MeetingLocation string             `bson:"meeting_location"`
}
