package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

func TestTripService_Add(t *testing.T) {
	t.Run("attaches the trip to an existing car", func(t *testing.T) {
		sessions, mock, _ := newTestSessions(t)
		expectTx(mock)

		cars := &mockCarRepository{
			findCarByIDFn: func(_ context.Context, _ *store.Session, carID int64) (models.Car, error) {
				assert.Equal(t, int64(3), carID)
				return models.Car{CarID: 3}, nil
			},
		}
		trips := &mockTripRepository{
			createTripFn: func(_ context.Context, _ *store.Session, trip models.Trip) (models.Trip, error) {
				trip.TripID = 11
				return trip, nil
			},
		}
		svc := NewTripService(sessions, cars, trips, logger.Nop())

		got, err := svc.Add(context.Background(), 3, models.TripInput{Start: 0, End: 45, Description: "airport run"})
		require.NoError(t, err)
		assert.Equal(t, models.Trip{TripID: 11, CarID: 3, Start: 0, End: 45, Description: "airport run"}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("end before start is rejected before any write", func(t *testing.T) {
		sessions, mock, _ := newTestSessions(t)

		svc := NewTripService(sessions, &mockCarRepository{}, &mockTripRepository{}, logger.Nop())

		_, err := svc.Add(context.Background(), 3, models.TripInput{Start: 100, End: 50})
		assert.ErrorIs(t, err, ErrBadTrip)
		// No ExpectBegin registered: a session would fail the mock.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero-length trip is allowed", func(t *testing.T) {
		sessions, mock, _ := newTestSessions(t)
		expectTx(mock)

		cars := &mockCarRepository{
			findCarByIDFn: func(context.Context, *store.Session, int64) (models.Car, error) {
				return models.Car{CarID: 3}, nil
			},
		}
		trips := &mockTripRepository{
			createTripFn: func(_ context.Context, _ *store.Session, trip models.Trip) (models.Trip, error) {
				trip.TripID = 12
				return trip, nil
			},
		}
		svc := NewTripService(sessions, cars, trips, logger.Nop())

		got, err := svc.Add(context.Background(), 3, models.TripInput{Start: 70, End: 70})
		require.NoError(t, err)
		assert.Equal(t, int64(12), got.TripID)
	})

	t.Run("missing car passes ErrCarNotFound through", func(t *testing.T) {
		sessions, mock, _ := newTestSessions(t)
		expectRolledBackTx(mock)

		cars := &mockCarRepository{
			findCarByIDFn: func(context.Context, *store.Session, int64) (models.Car, error) {
				return models.Car{}, store.ErrCarNotFound
			},
		}
		svc := NewTripService(sessions, cars, &mockTripRepository{}, logger.Nop())

		_, err := svc.Add(context.Background(), 42, models.TripInput{Start: 0, End: 10})
		assert.ErrorIs(t, err, store.ErrCarNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
