// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ListingService
// ─────────────────────────────────────────────

type mockListingService struct {
	createFn      func(ctx context.Context, ownerID int64, request models.ListingRequest) (models.Listing, error)
	getFn         func(ctx context.Context, listingID int64) (models.Listing, error)
	updateFn      func(ctx context.Context, actorID, listingID int64, request models.ListingRequest) (models.Listing, error)
	deleteFn      func(ctx context.Context, actorID, listingID int64) error
	listByOwnerFn func(ctx context.Context, actorID, ownerID int64) ([]models.Listing, error)
	searchFn      func(ctx context.Context, query models.SearchQuery) ([]models.Listing, error)
}

func (m *mockListingService) CreateListing(ctx context.Context, ownerID int64, request models.ListingRequest) (models.Listing, error) {
	return m.createFn(ctx, ownerID, request)
}

func (m *mockListingService) GetListing(ctx context.Context, listingID int64) (models.Listing, error) {
	return m.getFn(ctx, listingID)
}

func (m *mockListingService) UpdateListing(ctx context.Context, actorID, listingID int64, request models.ListingRequest) (models.Listing, error) {
	return m.updateFn(ctx, actorID, listingID, request)
}

func (m *mockListingService) DeleteListing(ctx context.Context, actorID, listingID int64) error {
	return m.deleteFn(ctx, actorID, listingID)
}

func (m *mockListingService) ListByOwner(ctx context.Context, actorID, ownerID int64) ([]models.Listing, error) {
	return m.listByOwnerFn(ctx, actorID, ownerID)
}

func (m *mockListingService) Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error) {
	return m.searchFn(ctx, query)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithListings(t *testing.T, listings service.ListingService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ListingService: listings,
	}
	return NewHandler(svcs, logger.Nop())
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can be exercised without the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asUser stores an authenticated user ID in the request context the same
// way the auth middleware does.
func asUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

var validListingBody = models.ListingRequest{
	Name:         "cozy flat",
	Description:  "two rooms downtown",
	Address:      "1 Main St",
	Type:         models.ListingTypeRent,
	Bedrooms:     2,
	Bathrooms:    1,
	RegularPrice: 1500,
	ImageURLs:    []string{"https://img.example.com/a.jpg"},
}

// ─────────────────────────────────────────────
// createListing
// ─────────────────────────────────────────────

func TestCreateListingHandler_Success(t *testing.T) {
	listings := &mockListingService{
		createFn: func(_ context.Context, ownerID int64, req models.ListingRequest) (models.Listing, error) {
			assert.Equal(t, int64(7), ownerID)
			return models.Listing{ID: 1, Name: req.Name, OwnerID: ownerID}, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodPost, "/api/listing/create", strings.NewReader(jsonBody(t, validListingBody)))
	req = asUser(req, 7)
	rec := httptest.NewRecorder()

	h.createListing(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var listing models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, int64(1), listing.ID)
	assert.Equal(t, int64(7), listing.OwnerID)
}

func TestCreateListingHandler_InvalidData(t *testing.T) {
	listings := &mockListingService{
		createFn: func(_ context.Context, ownerID int64, req models.ListingRequest) (models.Listing, error) {
			return models.Listing{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodPost, "/api/listing/create", strings.NewReader(`{}`))
	req = asUser(req, 7)
	rec := httptest.NewRecorder()

	h.createListing(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeAPIError(t, rec).Success)
}

func TestCreateListingHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithListings(t, &mockListingService{})
	req := httptest.NewRequest(http.MethodPost, "/api/listing/create", strings.NewReader("{broken"))
	req = asUser(req, 7)
	rec := httptest.NewRecorder()

	h.createListing(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// getListing
// ─────────────────────────────────────────────

func TestGetListingHandler_Success(t *testing.T) {
	listings := &mockListingService{
		getFn: func(_ context.Context, listingID int64) (models.Listing, error) {
			return models.Listing{ID: listingID, Name: "cozy flat"}, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/listing/5", nil), "id", "5")
	rec := httptest.NewRecorder()

	h.getListing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, int64(5), listing.ID)
}

func TestGetListingHandler_NotFound(t *testing.T) {
	listings := &mockListingService{
		getFn: func(_ context.Context, listingID int64) (models.Listing, error) {
			return models.Listing{}, store.ErrListingNotFound
		},
	}

	h := newHandlerWithListings(t, listings)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/listing/404", nil), "id", "404")
	rec := httptest.NewRecorder()

	h.getListing(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListingHandler_BadID(t *testing.T) {
	h := newHandlerWithListings(t, &mockListingService{})
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/listing/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.getListing(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updateListing
// ─────────────────────────────────────────────

func TestUpdateListingHandler_Success(t *testing.T) {
	listings := &mockListingService{
		updateFn: func(_ context.Context, actorID, listingID int64, req models.ListingRequest) (models.Listing, error) {
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, int64(5), listingID)
			return models.Listing{ID: listingID, Name: req.Name, OwnerID: actorID}, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodPost, "/api/listing/update/5", strings.NewReader(jsonBody(t, validListingBody)))
	req = asUser(withURLParam(req, "id", "5"), 7)
	rec := httptest.NewRecorder()

	h.updateListing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateListingHandler_NotOwner(t *testing.T) {
	listings := &mockListingService{
		updateFn: func(_ context.Context, actorID, listingID int64, req models.ListingRequest) (models.Listing, error) {
			return models.Listing{}, service.ErrNotResourceOwner
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodPost, "/api/listing/update/5", strings.NewReader(jsonBody(t, validListingBody)))
	req = asUser(withURLParam(req, "id", "5"), 99)
	rec := httptest.NewRecorder()

	h.updateListing(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, http.StatusForbidden, decodeAPIError(t, rec).StatusCode)
}

// ─────────────────────────────────────────────
// deleteListing
// ─────────────────────────────────────────────

func TestDeleteListingHandler_Success(t *testing.T) {
	listings := &mockListingService{
		deleteFn: func(_ context.Context, actorID, listingID int64) error {
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, int64(5), listingID)
			return nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodDelete, "/api/listing/delete/5", nil)
	req = asUser(withURLParam(req, "id", "5"), 7)
	rec := httptest.NewRecorder()

	h.deleteListing(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var msg models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.Message)
}

func TestDeleteListingHandler_NotOwner(t *testing.T) {
	listings := &mockListingService{
		deleteFn: func(_ context.Context, actorID, listingID int64) error {
			return service.ErrNotResourceOwner
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodDelete, "/api/listing/delete/5", nil)
	req = asUser(withURLParam(req, "id", "5"), 99)
	rec := httptest.NewRecorder()

	h.deleteListing(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// searchListings
// ─────────────────────────────────────────────

func TestSearchListingsHandler_Defaults(t *testing.T) {
	var captured models.SearchQuery
	listings := &mockListingService{
		searchFn: func(_ context.Context, query models.SearchQuery) ([]models.Listing, error) {
			captured = query
			return []models.Listing{{ID: 1}}, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodGet, "/api/listing/search", nil)
	rec := httptest.NewRecorder()

	h.searchListings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(models.DefaultSearchLimit), captured.Limit)
	assert.Zero(t, captured.Offset)
	assert.Nil(t, captured.Offer)
	assert.Nil(t, captured.Furnished)
	assert.Nil(t, captured.Parking)
	assert.Empty(t, captured.Type)
}

func TestSearchListingsHandler_AllFilters(t *testing.T) {
	var captured models.SearchQuery
	listings := &mockListingService{
		searchFn: func(_ context.Context, query models.SearchQuery) ([]models.Listing, error) {
			captured = query
			return nil, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	target := "/api/listing/search?searchTerm=cozy&type=rent&offer=true&furnished=false&parking=true&limit=20&startIndex=9"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	h.searchListings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cozy", captured.SearchTerm)
	assert.Equal(t, models.ListingTypeRent, captured.Type)
	require.NotNil(t, captured.Offer)
	assert.True(t, *captured.Offer)
	require.NotNil(t, captured.Furnished)
	assert.False(t, *captured.Furnished)
	require.NotNil(t, captured.Parking)
	assert.True(t, *captured.Parking)
	assert.Equal(t, uint64(20), captured.Limit)
	assert.Equal(t, uint64(9), captured.Offset)
}

func TestSearchListingsHandler_AllKeywordMatchesEverything(t *testing.T) {
	var captured models.SearchQuery
	listings := &mockListingService{
		searchFn: func(_ context.Context, query models.SearchQuery) ([]models.Listing, error) {
			captured = query
			return nil, nil
		},
	}

	h := newHandlerWithListings(t, listings)
	req := httptest.NewRequest(http.MethodGet, "/api/listing/search?type=all&offer=all", nil)
	rec := httptest.NewRecorder()

	h.searchListings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured.Type)
	assert.Nil(t, captured.Offer)
}

func TestSearchListingsHandler_BadParams(t *testing.T) {
	h := newHandlerWithListings(t, &mockListingService{})
	req := httptest.NewRequest(http.MethodGet, "/api/listing/search?offer=maybe", nil)
	rec := httptest.NewRecorder()

	h.searchListings(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
