package service

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, request models.SignInRequest) (models.User, error)
	OAuthLogin(ctx context.Context, request models.OAuthRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

type ListingService interface {
	CreateListing(ctx context.Context, ownerID int64, request models.ListingRequest) (models.Listing, error)
	GetListing(ctx context.Context, listingID int64) (models.Listing, error)
	UpdateListing(ctx context.Context, actorID, listingID int64, request models.ListingRequest) (models.Listing, error)
	DeleteListing(ctx context.Context, actorID, listingID int64) error
	ListByOwner(ctx context.Context, actorID, ownerID int64) ([]models.Listing, error)
	Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error)
}
