package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// barberResponse mirrors the stored barber document with the ObjectID
// rendered as its hex string. The `_id` key is part of the wire contract the
// frontend consumes.
type barberResponse struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Neighborhood  string   `json:"neighborhood"`
	Dorm          string   `json:"dorm,omitempty"`
	Biography     string   `json:"biography,omitempty"`
	Hairstyles    []string `json:"hairstyles"`
	Rating        float64  `json:"rating"`
	Gender        string   `json:"gender"`
	WillTravel    bool     `json:"will_travel"`
	Cost          float64  `json:"cost"`
	ProfileImage  string   `json:"profile_image"`
	ExampleImages []string `json:"example_images"`
}
