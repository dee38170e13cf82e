package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/models"
)

// tripRepository is the SQL-backed implementation of [TripRepository].
// Trips are always manipulated under their owning car; the foreign key to
// "cars" is set at insert time and never reassigned.
type tripRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTripRepository constructs a [TripRepository] backed by the provided
// database connection and logger.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		db:     db,
		logger: logger,
	}
}

const tripColumns = "trip_id, car_id, start_km, end_km, description"

// CreateTrip appends a trip to its car and returns it with the
// store-assigned id. The caller is responsible for verifying the car's
// existence inside the same session (see the trip service) so the insert and
// the check share one transaction.
func (r *tripRepository) CreateTrip(ctx context.Context, sess *Session, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(trip.TableName()).
		Columns("car_id", "start_km", "end_km", "description").
		Values(trip.CarID, trip.Start, trip.End, trip.Description).
		Suffix("RETURNING " + tripColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("error building insert query")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := sess.tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&trip.TripID, &trip.CarID, &trip.Start, &trip.End, &trip.Description); err != nil {
		log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("error: scanning error")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return trip, nil
}

// ListCarTrips returns every trip of the given car in creation order.
func (r *tripRepository) ListCarTrips(ctx context.Context, sess *Session, carID int64) ([]models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(tripColumns).
		From(models.Trip{}.TableName()).
		Where(sq.Eq{"car_id": carID}).
		OrderBy("trip_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListCarTrips").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := sess.tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListCarTrips").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		var trip models.Trip
		if err := rows.Scan(&trip.TripID, &trip.CarID, &trip.Start, &trip.End, &trip.Description); err != nil {
			log.Err(err).Str("func", "*tripRepository.ListCarTrips").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListCarTrips").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trips, nil
}

// DeleteCarTrips removes every trip of the given car. Deleting zero trips is
// not an error; a car without history is a normal state.
func (r *tripRepository) DeleteCarTrips(ctx context.Context, sess *Session, carID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Trip{}.TableName()).
		Where(sq.Eq{"car_id": carID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteCarTrips").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := sess.tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tripRepository.DeleteCarTrips").Msg("error executing delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
