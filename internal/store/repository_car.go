package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/models"
)

// carRepository is the SQL-backed implementation of [CarRepository].
// It handles car creation, lookup, filtered listing, wholesale updates and
// deletion against the "cars" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type carRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
	}
}

const carColumns = "car_id, size, fuel, doors, transmission"

// CreateCar persists a new car and returns it with the store-assigned id.
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new car.
func (r *carRepository) CreateCar(ctx context.Context, sess *Session, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(car.TableName()).
		Columns("size", "fuel", "doors", "transmission").
		Values(car.Size, car.Fuel, car.Doors, car.Transmission).
		Suffix("RETURNING " + carColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error building insert query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := sess.tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&car.CarID, &car.Size, &car.Fuel, &car.Doors, &car.Transmission); err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return car, nil
}

// FindCarByID retrieves the car with the given id.
//
// Error handling:
//   - sql.ErrNoRows → [ErrCarNotFound].
//   - Any other driver-level error → wrapped as [ErrScanningRow].
func (r *carRepository) FindCarByID(ctx context.Context, sess *Session, carID int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(carColumns).
		From(models.Car{}.TableName()).
		Where(sq.Eq{"car_id": carID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.FindCarByID").Msg("error building select query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var car models.Car
	row := sess.tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&car.CarID, &car.Size, &car.Fuel, &car.Doors, &car.Transmission); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, ErrCarNotFound
		}
		log.Err(err).Str("func", "*carRepository.FindCarByID").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return car, nil
}

// ListCars returns all cars matching the filter in storage order. Absent
// filter fields impose no constraint; set fields combine with AND. An empty
// result is a valid outcome, not an error.
func (r *carRepository) ListCars(ctx context.Context, sess *Session, filter models.CarFilter) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	builder := r.db.Builder().
		Select(carColumns).
		From(models.Car{}.TableName()).
		OrderBy("car_id")

	if filter.Size != nil {
		builder = builder.Where(sq.Eq{"size": *filter.Size})
	}
	if filter.MinDoors != nil {
		builder = builder.Where(sq.GtOrEq{"doors": *filter.MinDoors})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := sess.tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.CarID, &car.Size, &car.Fuel, &car.Doors, &car.Transmission); err != nil {
			log.Err(err).Str("func", "*carRepository.ListCars").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cars, nil
}

// UpdateCar replaces all mutable fields of the car identified by car.CarID
// wholesale and returns the stored row. The trip history is untouched.
//
// Error handling:
//   - sql.ErrNoRows → [ErrCarNotFound].
func (r *carRepository) UpdateCar(ctx context.Context, sess *Session, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(car.TableName()).
		Set("size", car.Size).
		Set("fuel", car.Fuel).
		Set("doors", car.Doors).
		Set("transmission", car.Transmission).
		Where(sq.Eq{"car_id": car.CarID}).
		Suffix("RETURNING " + carColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error building update query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := sess.tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&car.CarID, &car.Size, &car.Fuel, &car.Doors, &car.Transmission); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, ErrCarNotFound
		}
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return car, nil
}

// DeleteCar removes the car with the given id.
//
// Error handling:
//   - zero affected rows → [ErrCarNotFound].
func (r *carRepository) DeleteCar(ctx context.Context, sess *Session, carID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Car{}.TableName()).
		Where(sq.Eq{"car_id": carID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := sess.tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error executing delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCarNotFound
	}

	return nil
}
