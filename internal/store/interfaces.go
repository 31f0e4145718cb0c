package store

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrUserAlreadyExists] on a username or
	// email collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByIdentifier looks an account up by username or email.
	// Returns [ErrUserNotFound] if no account matches.
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// FindUserByEmail looks an account up by email only. Used by the
	// federated sign-in flow. Returns [ErrUserNotFound] if absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key.
	// Returns [ErrUserNotFound] if absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser replaces the mutable profile columns of the user row
	// identified by user.ID and returns the stored record. Returns
	// [ErrUserNotFound] if absent and [ErrUserAlreadyExists] on a unique
	// constraint collision.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the account row. Returns [ErrUserNotFound] if the
	// row did not exist.
	DeleteUser(ctx context.Context, userID int64) error
}

// ListingRepository is the data-access contract for property listings.
type ListingRepository interface {
	// CreateListing persists a new listing and returns it with
	// server-assigned fields populated.
	CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error)

	// GetListing fetches one listing by id.
	// Returns [ErrListingNotFound] if absent.
	GetListing(ctx context.Context, listingID int64) (models.Listing, error)

	// UpdateListing replaces all client-supplied columns of the listing row
	// identified by listing.ID (full-record replace, last write wins) and
	// returns the stored record. Returns [ErrListingNotFound] if absent.
	UpdateListing(ctx context.Context, listing models.Listing) (models.Listing, error)

	// DeleteListing removes one listing row. Returns [ErrListingNotFound]
	// if the row did not exist.
	DeleteListing(ctx context.Context, listingID int64) error

	// ListByOwner returns every listing owned by the given user, newest
	// first.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Listing, error)

	// DeleteByOwner removes all listings owned by the given user. Used by
	// the account-deletion cascade; deleting zero rows is not an error.
	DeleteByOwner(ctx context.Context, ownerID int64) error

	// Search returns listings matching the predicate filters of query,
	// newest first, bounded by limit/offset.
	Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error)
}
