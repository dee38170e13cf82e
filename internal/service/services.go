package service

import (
	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
)

// Services aggregates every domain service the transport layer depends on.
type Services struct {
	CarService  CarService
	TripService TripService
	AuthService AuthService
}

// NewServices wires all services over the given storages and the
// process-wide token registry.
func NewServices(storages *store.Storages, tokens *TokenRegistry, logger *logger.Logger) *Services {
	return &Services{
		CarService:  NewCarService(storages.Sessions, storages.CarRepository, storages.TripRepository, logger),
		TripService: NewTripService(storages.Sessions, storages.CarRepository, storages.TripRepository, logger),
		AuthService: NewAuthService(storages.Sessions, storages.UserRepository, tokens, logger),
	}
}
