// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-share/internal/config"
	"github.com/MKhiriev/go-car-share/internal/logger"
	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockCarService implements service.CarService for unit tests.
// Each method field can be overridden per test case.
type mockCarService struct {
	listFn   func(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	getFn    func(ctx context.Context, carID int64) (models.Car, error)
	createFn func(ctx context.Context, input models.CarInput) (models.Car, error)
	updateFn func(ctx context.Context, carID int64, input models.CarInput) (models.Car, error)
	deleteFn func(ctx context.Context, carID int64) error
}

func (m *mockCarService) List(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	return m.listFn(ctx, filter)
}

func (m *mockCarService) Get(ctx context.Context, carID int64) (models.Car, error) {
	return m.getFn(ctx, carID)
}

func (m *mockCarService) Create(ctx context.Context, input models.CarInput) (models.Car, error) {
	return m.createFn(ctx, input)
}

func (m *mockCarService) Update(ctx context.Context, carID int64, input models.CarInput) (models.Car, error) {
	return m.updateFn(ctx, carID, input)
}

func (m *mockCarService) Delete(ctx context.Context, carID int64) error {
	return m.deleteFn(ctx, carID)
}

// mockTripService implements service.TripService for unit tests.
type mockTripService struct {
	addFn func(ctx context.Context, carID int64, input models.TripInput) (models.Trip, error)
}

func (m *mockTripService) Add(ctx context.Context, carID int64, input models.TripInput) (models.Trip, error) {
	return m.addFn(ctx, carID, input)
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	registerFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn    func(ctx context.Context, creds models.Credentials) (models.Token, error)
	resolveFn  func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Resolve(ctx context.Context, token string) (models.User, error) {
	return m.resolveFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// fine for routes a test never touches.
func newTestHandler(t *testing.T, svcs *service.Services, allowAnonymousWrites bool) *Handler {
	t.Helper()
	return NewHandler(svcs, config.App{AllowAnonymousWrites: allowAnonymousWrites}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeJSON unmarshals a response body into T.
func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}
