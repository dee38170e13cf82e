package service

import (
	"context"

	"github.com/MKhiriev/go-car-share/models"
)

// CarService exposes CRUD and filtered listing over fleet cars. Every
// operation runs inside its own persistence session.
type CarService interface {
	List(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	Get(ctx context.Context, carID int64) (models.Car, error)
	Create(ctx context.Context, input models.CarInput) (models.Car, error)
	Update(ctx context.Context, carID int64, input models.CarInput) (models.Car, error)
	Delete(ctx context.Context, carID int64) error
}

// TripService appends trips to existing cars.
type TripService interface {
	Add(ctx context.Context, carID int64, input models.TripInput) (models.Trip, error)
}

// AuthService covers the credential lifecycle:
// Unregistered → Registered → Authenticated(token).
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	Resolve(ctx context.Context, token string) (models.User, error)
}
