package service

import (
	"context"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

// tripService is the concrete implementation of TripService.
type tripService struct {
	sessions       *store.Sessions
	carRepository  store.CarRepository
	tripRepository store.TripRepository
	logger         *logger.Logger
}

// NewTripService constructs a TripService over the given repositories.
func NewTripService(sessions *store.Sessions, carRepository store.CarRepository, tripRepository store.TripRepository, logger *logger.Logger) TripService {
	return &tripService{
		sessions:       sessions,
		carRepository:  carRepository,
		tripRepository: tripRepository,
		logger:         logger,
	}
}

// Add appends a trip to the car with the given id.
//
// The car's existence check and the trip insert run inside the same
// persistence session, so a concurrent delete of the car cannot produce an
// orphaned trip: one of the two racing operations surfaces an error.
//
// Errors:
//   - ErrBadTrip if the payload is semantically invalid (end before start);
//     nothing is written in that case.
//   - store.ErrCarNotFound if no car with that id exists.
func (t *tripService) Add(ctx context.Context, carID int64, input models.TripInput) (models.Trip, error) {
	log := logger.FromContext(ctx)

	if input.End < input.Start {
		log.Debug().Int64("car_id", carID).Int("start", input.Start).Int("end", input.End).Msg("rejecting trip ending before it starts")
		return models.Trip{}, ErrBadTrip
	}

	var created models.Trip
	err := t.sessions.Run(ctx, func(sess *store.Session) error {
		if _, err := t.carRepository.FindCarByID(ctx, sess, carID); err != nil {
			return err
		}

		var err error
		created, err = t.tripRepository.CreateTrip(ctx, sess, models.Trip{
			CarID:       carID,
			Start:       input.Start,
			End:         input.End,
			Description: input.Description,
		})
		return err
	})
	if err != nil {
		log.Err(err).Int64("car_id", carID).Msg("adding trip failed")
		return models.Trip{}, err
	}

	log.Debug().Int64("car_id", carID).Int64("trip_id", created.TripID).Msg("trip added")
	return created, nil
}
