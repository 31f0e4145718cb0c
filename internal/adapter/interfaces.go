// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-estate server and with the external image host.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The shipped implementation
// ([NewHTTPServerAdapter]) talks HTTP/REST and keeps the session cookie in
// an in-process cookie jar, so authenticated calls work transparently after
// a successful SignIn.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-estate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the go-estate
// server. Implementations are responsible for serialisation, session
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SignUp creates a new account from the provided credentials. The call
	// does NOT establish a session; a subsequent SignIn is required. Returns
	// the public projection of the created user, or [ErrConflict] (wrapped)
	// when the username or e-mail is already taken.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn authenticates with a username-or-email identifier and password.
	// On success the session cookie returned by the server is captured and
	// attached to all subsequent requests. Returns [ErrUnauthorized]
	// (wrapped) on a wrong password and [ErrNotFound] when no such account
	// exists.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)

	// OAuthSignIn signs in with a federated identity profile, provisioning
	// an account on first contact. Like SignIn it captures the session
	// cookie on success.
	OAuthSignIn(ctx context.Context, req models.OAuthRequest) (models.User, error)

	// SignOut ends the current session on the server and drops the locally
	// held session cookie.
	SignOut(ctx context.Context) error

	// SessionToken returns the raw value of the session cookie currently
	// held by the adapter, or an empty string when no session is active.
	SessionToken() string

	// GetUser fetches the public profile of the user with the given id.
	// Requires an active session.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies a partial profile update to the caller's own
	// account. Zero-valued request fields are left unchanged server-side.
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error)

	// DeleteAccount removes the caller's account together with all of their
	// listings and invalidates the session.
	DeleteAccount(ctx context.Context, userID int64) error

	// CreateListing publishes a new listing owned by the caller.
	CreateListing(ctx context.Context, req models.ListingRequest) (models.Listing, error)

	// GetListing fetches a single listing by id. No session is required.
	GetListing(ctx context.Context, listingID int64) (models.Listing, error)

	// UpdateListing replaces the full record of the caller's listing.
	// Returns [ErrForbidden] (wrapped) when the listing belongs to another
	// user.
	UpdateListing(ctx context.Context, listingID int64, req models.ListingRequest) (models.Listing, error)

	// DeleteListing removes the caller's listing. Returns [ErrForbidden]
	// (wrapped) when the listing belongs to another user.
	DeleteListing(ctx context.Context, listingID int64) error

	// UserListings fetches the caller's own portfolio.
	UserListings(ctx context.Context, ownerID int64) ([]models.Listing, error)

	// Search queries the public listing catalogue with the given filters.
	// No session is required.
	Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error)
}

// ImageHost uploads listing photos to an external hosting service and
// returns publicly reachable URLs for them.
type ImageHost interface {
	// UploadImage streams a single image to the host and returns its HTTPS
	// URL. Returns [ErrUploadFailed] (wrapped) when the host rejects the
	// file or the response cannot be decoded.
	UploadImage(ctx context.Context, filename string, data io.Reader) (string, error)
}
