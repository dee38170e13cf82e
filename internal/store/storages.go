package store

import "github.com/MKhiriev/go-car-share/internal/logger"

// Storages aggregates the session manager and every repository the service
// layer depends on.
type Storages struct {
	Sessions       *Sessions
	CarRepository  CarRepository
	TripRepository TripRepository
	UserRepository UserRepository
}

// NewStorages wires all repositories over a single database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Sessions:       NewSessions(db, logger),
		CarRepository:  NewCarRepository(db, logger),
		TripRepository: NewTripRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
	}
}
