// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-estate/internal/workers"
	"github.com/MKhiriev/go-estate/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ImageUploader uploads a batch of listing photos and returns their public
// URLs in input order. Satisfied by [workers.UploadPool].
type ImageUploader interface {
	// UploadAll uploads all files, preserving their order in the returned
	// URL slice. A single failure aborts the whole batch.
	UploadAll(ctx context.Context, files []workers.UploadFile) ([]string, error)
}

// ClientAuthService defines the client-side contract for account management.
// Implementations hold the active session: after a successful SignIn the
// signed-in user is retained and authenticated operations act on it.
type ClientAuthService interface {
	// SignUp registers a new account on the server. It does not sign the
	// user in; a follow-up SignIn is required.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn authenticates against the server and retains the signed-in
	// user for subsequent calls.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)

	// SignOut ends the server session and clears the retained user.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user and true, or a zero user and
	// false when no session is active.
	CurrentUser() (models.User, bool)

	// UpdateProfile applies a partial update to the signed-in user's
	// profile and refreshes the retained copy. Returns [ErrNotSignedIn]
	// when no session is active.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)

	// DeleteAccount removes the signed-in user's account together with all
	// of their listings and clears the session.
	DeleteAccount(ctx context.Context) error
}

// ClientListingService defines the client-side contract for managing and
// browsing listings. Mutating operations require an active session.
type ClientListingService interface {
	// SubmitListing uploads the attached photos (all-or-nothing), validates
	// the resulting listing and publishes it on the server. Photos already
	// referenced by URL in req.ImageURLs are kept and the uploaded ones are
	// appended after them.
	SubmitListing(ctx context.Context, req models.ListingRequest, photos []workers.UploadFile) (models.Listing, error)

	// EditListing replaces the full record of an owned listing, uploading
	// any newly attached photos first.
	EditListing(ctx context.Context, listingID int64, req models.ListingRequest, photos []workers.UploadFile) (models.Listing, error)

	// RemoveListing deletes an owned listing.
	RemoveListing(ctx context.Context, listingID int64) error

	// Listing fetches a single listing by id. Works without a session.
	Listing(ctx context.Context, listingID int64) (models.Listing, error)

	// MyListings returns the signed-in user's portfolio. Returns
	// [ErrNotSignedIn] when no session is active.
	MyListings(ctx context.Context) ([]models.Listing, error)

	// Search queries the public catalogue. Works without a session.
	Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error)
}
