// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.Nop()
	cfg := config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIError{StatusCode: status, Message: message})
}

func setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_SchemeDefaulted(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http", a.(*httpServerAdapter).baseURL.Scheme)
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: req.Username, Email: req.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignUp(context.Background(), models.SignUpRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Empty(t, a.SessionToken(), "sign up must not establish a session")
}

func TestSignUp_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusConflict, "user already exists")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.SignUpRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "user already exists")
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSignIn_SuccessCapturesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		setSessionCookie(w, "session-token-value")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 7, Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignIn(context.Background(), models.SignInRequest{Identifier: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "session-token-value", a.SessionToken())
}

func TestSignIn_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusUnauthorized, "wrong password")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Identifier: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.SessionToken())
}

func TestSignIn_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "user not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Identifier: "ghost", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Session replay ───────────────────────────────────────────────────────────

func TestSessionCookie_ReplayedOnFollowUpRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		setSessionCookie(w, "session-token-value")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 7})
	})
	mux.HandleFunc("/api/user/7", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(models.SessionCookieName)
		require.NoError(t, err)
		assert.Equal(t, "session-token-value", c.Value)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 7, Username: "alice"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)

	got, err := a.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

// ── OAuthSignIn ──────────────────────────────────────────────────────────────

func TestOAuthSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/google", r.URL.Path)
		setSessionCookie(w, "oauth-session")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 9, Username: "johndoe1a2b"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.OAuthSignIn(context.Background(), models.OAuthRequest{Name: "John Doe", Email: "john@example.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "oauth-session", a.SessionToken())
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSignOut_DropsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		setSessionCookie(w, "session-token-value")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 7})
	})
	mux.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: models.SessionCookieName, Value: "", Path: "/", MaxAge: -1})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Message{Message: "signed out"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, a.SessionToken())

	require.NoError(t, a.SignOut(context.Background()))
	assert.Empty(t, a.SessionToken())
}

// ── Listings ─────────────────────────────────────────────────────────────────

func TestCreateListing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/listing/create", r.URL.Path)

		var req models.ListingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Listing{ID: 3, Name: req.Name, OwnerID: 7})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateListing(context.Background(), models.ListingRequest{Name: "Cozy flat"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Cozy flat", got.Name)
}

func TestGetListing_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "listing not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetListing(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateListing_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/listing/update/3", r.URL.Path)
		writeAPIError(w, http.StatusForbidden, "access denied: not the resource owner")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateListing(context.Background(), 3, models.ListingRequest{Name: "Someone else's"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteListing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/listing/delete/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Message{Message: "listing deleted"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteListing(context.Background(), 3))
}

func TestDeleteAccount_UsesUpdatePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/user/update/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Message{Message: "user deleted"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteAccount(context.Background(), 7))
}

func TestUserListings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/listings/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Listing{{ID: 1, OwnerID: 7}, {ID: 2, OwnerID: 7}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UserListings(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].OwnerID)
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestSearch_ForwardsFilters(t *testing.T) {
	offer := true

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/listing/search", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "cozy", q.Get("searchTerm"))
		assert.Equal(t, "rent", q.Get("type"))
		assert.Equal(t, "true", q.Get("offer"))
		assert.False(t, q.Has("furnished"))
		assert.False(t, q.Has("parking"))
		assert.Equal(t, "18", q.Get("startIndex"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Listing{{ID: 5, Name: "Cozy studio"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Search(context.Background(), models.SearchQuery{
		SearchTerm: "cozy",
		Type:       "rent",
		Offer:      &offer,
		Offset:     18,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
}

func TestSearch_EmptyQueryOmitsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Listing{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Search(context.Background(), models.SearchQuery{})

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("something broke"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUser(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "something broke")
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUser(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
