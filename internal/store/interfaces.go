package store

import (
	"context"

	"github.com/MKhiriev/go-car-share/models"
)

// CarRepository persists and retrieves fleet cars. Every method runs inside
// the transaction carried by the supplied [Session].
type CarRepository interface {
	CreateCar(ctx context.Context, sess *Session, car models.Car) (models.Car, error)
	FindCarByID(ctx context.Context, sess *Session, carID int64) (models.Car, error)
	ListCars(ctx context.Context, sess *Session, filter models.CarFilter) ([]models.Car, error)
	UpdateCar(ctx context.Context, sess *Session, car models.Car) (models.Car, error)
	DeleteCar(ctx context.Context, sess *Session, carID int64) error
}

// TripRepository persists trips under their owning car.
type TripRepository interface {
	CreateTrip(ctx context.Context, sess *Session, trip models.Trip) (models.Trip, error)
	ListCarTrips(ctx context.Context, sess *Session, carID int64) ([]models.Trip, error)
	DeleteCarTrips(ctx context.Context, sess *Session, carID int64) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, sess *Session, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, sess *Session, username string) (models.User, error)
	FindUserByID(ctx context.Context, sess *Session, userID int64) (models.User, error)
}

// ErrorClassificator translates driver-level errors into store semantics.
// Each database backend provides its own implementation.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool
}
