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

	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/models"
)

// TestRoutes_AnonymousWritesToggle verifies that the write-protection switch
// controls whether car-mutating routes sit behind the auth middleware.
func TestRoutes_AnonymousWritesToggle(t *testing.T) {
	cars := &mockCarService{
		createFn: func(context.Context, models.CarInput) (models.Car, error) {
			return models.Car{CarID: 1}, nil
		},
	}

	tests := []struct {
		name                 string
		allowAnonymousWrites bool
		wantStatus           int
	}{
		{name: "writes protected by default", allowAnonymousWrites: false, wantStatus: http.StatusUnauthorized},
		{name: "anonymous writes allowed when toggled", allowAnonymousWrites: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{CarService: cars, AuthService: &mockAuthService{}}
			router := newTestHandler(t, svcs, tt.allowAnonymousWrites).Init()

			req := httptest.NewRequest(http.MethodPost, "/api/cars", strings.NewReader(`{"size":"s"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestRoutes_ReadsAreAlwaysPublic verifies that listing and fetching cars
// never require a token, regardless of the write-protection switch.
func TestRoutes_ReadsAreAlwaysPublic(t *testing.T) {
	cars := &mockCarService{
		listFn: func(context.Context, models.CarFilter) ([]models.Car, error) {
			return []models.Car{}, nil
		},
	}
	svcs := &service.Services{CarService: cars, AuthService: &mockAuthService{}}
	router := newTestHandler(t, svcs, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRoutes_TraceIDHeader verifies that every response carries a trace id,
// echoing the caller's value when one is supplied.
func TestRoutes_TraceIDHeader(t *testing.T) {
	cars := &mockCarService{
		listFn: func(context.Context, models.CarFilter) ([]models.Car, error) {
			return []models.Car{}, nil
		},
	}
	router := newTestHandler(t, &service.Services{CarService: cars}, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	req.Header.Set(traceIDHeader, "trace-me")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-me", rec.Header().Get(traceIDHeader))
}
