package service

import (
	"context"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

// carService is the concrete implementation of CarService. Every operation
// is wrapped in exactly one persistence session: committed on success,
// rolled back on any failure.
type carService struct {
	sessions       *store.Sessions
	carRepository  store.CarRepository
	tripRepository store.TripRepository
	logger         *logger.Logger
}

// NewCarService constructs a CarService over the given repositories.
func NewCarService(sessions *store.Sessions, carRepository store.CarRepository, tripRepository store.TripRepository, logger *logger.Logger) CarService {
	return &carService{
		sessions:       sessions,
		carRepository:  carRepository,
		tripRepository: tripRepository,
		logger:         logger,
	}
}

// List returns all cars matching the filter in storage order.
func (c *carService) List(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	var cars []models.Car
	err := c.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		cars, err = c.carRepository.ListCars(ctx, sess, filter)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing cars failed")
		return nil, err
	}

	return cars, nil
}

// Get returns the car with the given id, its trip history included.
// Fails with store.ErrCarNotFound if no such car exists.
func (c *carService) Get(ctx context.Context, carID int64) (models.Car, error) {
	var car models.Car
	err := c.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		car, err = c.carRepository.FindCarByID(ctx, sess, carID)
		if err != nil {
			return err
		}

		car.Trips, err = c.tripRepository.ListCarTrips(ctx, sess, carID)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("car_id", carID).Msg("fetching car failed")
		return models.Car{}, err
	}

	return car, nil
}

// Create persists a new car, filling unset input fields with defaults, and
// returns it with the store-assigned id. Well-formed input always succeeds;
// concurrent creates never collide on id.
func (c *carService) Create(ctx context.Context, input models.CarInput) (models.Car, error) {
	var created models.Car
	err := c.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		created, err = c.carRepository.CreateCar(ctx, sess, input.Car())
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("creating car failed")
		return models.Car{}, err
	}

	logger.FromContext(ctx).Debug().Int64("car_id", created.CarID).Msg("car created")
	return created, nil
}

// Update replaces all mutable fields of the car wholesale — this is not a
// partial patch; unset input fields fall back to defaults. The trip history
// is untouched. Fails with store.ErrCarNotFound if no such car exists.
func (c *carService) Update(ctx context.Context, carID int64, input models.CarInput) (models.Car, error) {
	car := input.Car()
	car.CarID = carID

	var updated models.Car
	err := c.sessions.Run(ctx, func(sess *store.Session) error {
		var err error
		updated, err = c.carRepository.UpdateCar(ctx, sess, car)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("car_id", carID).Msg("updating car failed")
		return models.Car{}, err
	}

	return updated, nil
}

// Delete removes the car and cascade-deletes its trips within the same
// session, so no orphaned trip can ever be observed. Fails with
// store.ErrCarNotFound if no such car exists.
func (c *carService) Delete(ctx context.Context, carID int64) error {
	err := c.sessions.Run(ctx, func(sess *store.Session) error {
		if err := c.tripRepository.DeleteCarTrips(ctx, sess, carID); err != nil {
			return err
		}
		return c.carRepository.DeleteCar(ctx, sess, carID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("car_id", carID).Msg("deleting car failed")
		return err
	}

	logger.FromContext(ctx).Debug().Int64("car_id", carID).Msg("car deleted")
	return nil
}
