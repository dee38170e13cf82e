package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-share/internal/config"
	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

// newTestSessions builds a session manager over a sqlmock connection.
// Service tests combine it with func-field repository mocks, so the mock
// connection only ever sees begin/commit/rollback.
func newTestSessions(t *testing.T) (*store.Sessions, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := store.NewSessions(store.NewDB(db, config.DriverSQLite, logger.Nop()), logger.Nop())
	return sessions, mock, db
}

// expectTx registers a begin/commit pair for one successful session.
func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

// expectRolledBackTx registers a begin/rollback pair for one failing session.
func expectRolledBackTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

// ─────────────────────────────────────────────
// Mock repositories
// ─────────────────────────────────────────────

// mockCarRepository implements store.CarRepository for unit tests.
// Each method field can be overridden per test case.
type mockCarRepository struct {
	createCarFn   func(ctx context.Context, sess *store.Session, car models.Car) (models.Car, error)
	findCarByIDFn func(ctx context.Context, sess *store.Session, carID int64) (models.Car, error)
	listCarsFn    func(ctx context.Context, sess *store.Session, filter models.CarFilter) ([]models.Car, error)
	updateCarFn   func(ctx context.Context, sess *store.Session, car models.Car) (models.Car, error)
	deleteCarFn   func(ctx context.Context, sess *store.Session, carID int64) error
}

func (m *mockCarRepository) CreateCar(ctx context.Context, sess *store.Session, car models.Car) (models.Car, error) {
	return m.createCarFn(ctx, sess, car)
}

func (m *mockCarRepository) FindCarByID(ctx context.Context, sess *store.Session, carID int64) (models.Car, error) {
	return m.findCarByIDFn(ctx, sess, carID)
}

func (m *mockCarRepository) ListCars(ctx context.Context, sess *store.Session, filter models.CarFilter) ([]models.Car, error) {
	return m.listCarsFn(ctx, sess, filter)
}

func (m *mockCarRepository) UpdateCar(ctx context.Context, sess *store.Session, car models.Car) (models.Car, error) {
	return m.updateCarFn(ctx, sess, car)
}

func (m *mockCarRepository) DeleteCar(ctx context.Context, sess *store.Session, carID int64) error {
	return m.deleteCarFn(ctx, sess, carID)
}

// mockTripRepository implements store.TripRepository for unit tests.
type mockTripRepository struct {
	createTripFn     func(ctx context.Context, sess *store.Session, trip models.Trip) (models.Trip, error)
	listCarTripsFn   func(ctx context.Context, sess *store.Session, carID int64) ([]models.Trip, error)
	deleteCarTripsFn func(ctx context.Context, sess *store.Session, carID int64) error
}

func (m *mockTripRepository) CreateTrip(ctx context.Context, sess *store.Session, trip models.Trip) (models.Trip, error) {
	return m.createTripFn(ctx, sess, trip)
}

func (m *mockTripRepository) ListCarTrips(ctx context.Context, sess *store.Session, carID int64) ([]models.Trip, error) {
	return m.listCarTripsFn(ctx, sess, carID)
}

func (m *mockTripRepository) DeleteCarTrips(ctx context.Context, sess *store.Session, carID int64) error {
	return m.deleteCarTripsFn(ctx, sess, carID)
}

// mockUserRepository implements store.UserRepository for unit tests.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, sess *store.Session, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, sess *store.Session, username string) (models.User, error)
	findUserByIDFn       func(ctx context.Context, sess *store.Session, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, sess *store.Session, user models.User) (models.User, error) {
	return m.createUserFn(ctx, sess, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, sess *store.Session, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, sess, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, sess *store.Session, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, sess, userID)
}
