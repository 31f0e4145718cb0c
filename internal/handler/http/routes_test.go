// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "valid-token" {
				return models.Token{UserID: 7}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	listings := &mockListingService{
		searchFn: func(_ context.Context, query models.SearchQuery) ([]models.Listing, error) {
			return []models.Listing{}, nil
		},
		listByOwnerFn: func(_ context.Context, actorID, ownerID int64) ([]models.Listing, error) {
			return []models.Listing{}, nil
		},
	}

	h := NewHandler(&service.Services{AuthService: auth, ListingService: listings}, logger.Nop())
	return h.Init()
}

func TestRoutes_PublicSearchNeedsNoSession(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/listing/search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ProtectedRouteWithoutCookie(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/listings/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeAPIError(t, rec).Success)
}

func TestRoutes_ProtectedRouteWithCookie(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/listings/7", nil)
	req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DeleteAccountOnUpdatePath(t *testing.T) {
	deleted := false
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
	}
	users := &mockUserService{
		deleteAccountFn: func(_ context.Context, userID int64) error {
			deleted = true
			assert.Equal(t, int64(7), userID)
			return nil
		},
	}

	h := NewHandler(&service.Services{AuthService: auth, UserService: users}, logger.Nop())
	router := h.Init()

	for _, path := range []string{"/api/user/update/7", "/api/user/delete/7"} {
		deleted = false

		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "valid-token"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, deleted, path)
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/listing/search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderIsPropagated(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/listing/search", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}
