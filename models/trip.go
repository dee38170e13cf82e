package models

// Trip is a single recorded journey of a car. A trip always references the
// car it was created under; the reference is set once and never reassigned.
type Trip struct {
	TripID int64 `json:"id"`

	// CarID references the owning car.
	CarID int64 `json:"car_id"`

	// Start and End are odometer readings in kilometers.
	Start int `json:"start"`
	End   int `json:"end"`

	Description string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Trip model.
func (t Trip) TableName() string {
	return "trips"
}

// TripInput is the caller-supplied payload for recording a trip.
// The owning car is taken from the request path, not from the body.
type TripInput struct {
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description"`
}
