package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrBarberNotFound = errors.New("barber not found")
var ErrInvalidInput = errors.New("invalid input")
var ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

// Barber is a service-provider document. Barbers are created out-of-band by
// the bulk importer and are read-only at runtime; no endpoint mutates them.
type Barber struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Neighborhood  string             `bson:"neighborhood"`
	Dorm          string             `bson:"dorm,omitempty"`
	Biography     string             `bson:"biography,omitempty"`
	Hairstyles    []string           `bson:"hairstyles"`
	Rating        float64            `bson:"rating"`
	Gender        string             `bson:"gender"`
	WillTravel    bool               `bson:"will_travel"`
	Cost          float64            `bson:"cost"`
	ProfileImage  string             `bson:"profile_image"`
	ExampleImages []string           `bson:"example_images"`
}
