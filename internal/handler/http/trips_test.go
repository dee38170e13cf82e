// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/models"
)

func TestAddTrip_Success(t *testing.T) {
	trips := &mockTripService{
		addFn: func(_ context.Context, carID int64, input models.TripInput) (models.Trip, error) {
			assert.Equal(t, int64(1), carID)
			assert.Equal(t, models.TripInput{Start: 0, End: 45, Description: "airport run"}, input)
			return models.Trip{TripID: 1, CarID: 1, Start: 0, End: 45, Description: "airport run"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{TripService: trips}, true)
	router := h.Init()

	body := `{"start":0,"end":45,"description":"airport run"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cars/1/trips", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeJSON[models.Trip](t, rec.Body.Bytes())
	assert.Equal(t, int64(1), got.TripID)
	assert.Equal(t, int64(1), got.CarID)
}

func TestAddTrip_BadTrip(t *testing.T) {
	trips := &mockTripService{
		addFn: func(context.Context, int64, models.TripInput) (models.Trip, error) {
			return models.Trip{}, service.ErrBadTrip
		},
	}
	h := newTestHandler(t, &service.Services{TripService: trips}, true)
	router := h.Init()

	body := `{"start":100,"end":50}`
	req := httptest.NewRequest(http.MethodPost, "/api/cars/1/trips", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	apiErr := decodeJSON[models.APIError](t, rec.Body.Bytes())
	assert.Equal(t, service.ErrBadTrip.Error(), apiErr.Detail)
}

func TestAddTrip_CarNotFound(t *testing.T) {
	trips := &mockTripService{
		addFn: func(context.Context, int64, models.TripInput) (models.Trip, error) {
			return models.Trip{}, store.ErrCarNotFound
		},
	}
	h := newTestHandler(t, &service.Services{TripService: trips}, true)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/cars/42/trips", strings.NewReader(`{"start":0,"end":10}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	apiErr := decodeJSON[models.APIError](t, rec.Body.Bytes())
	assert.Equal(t, "no car with id=42", apiErr.Detail)
}

func TestAddTrip_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{TripService: &mockTripService{}}, true)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/cars/1/trips", strings.NewReader("{invalid"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
