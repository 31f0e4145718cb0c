package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

// userService is the concrete implementation of UserService. It handles
// profile reads, profile updates, and full account deletion together with
// the listings the account owns.
type userService struct {
	userRepository    store.UserRepository
	listingRepository store.ListingRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// repositories.
func NewUserService(userRepository store.UserRepository, listingRepository store.ListingRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		listingRepository: listingRepository,
		validator:         validators.NewUserValidator(),
		logger:            logger,
	}
}

// GetUser returns the account with the given ID.
// A wrapped store.ErrUserNotFound is returned when no such account exists.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by ID failed")
		return models.User{}, fmt.Errorf("user search by ID failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-empty fields of request to the stored
// account. Empty fields are left unchanged; a non-empty Password is
// re-hashed with bcrypt before persisting.
//
// Returns the updated account or:
//   - ErrInvalidDataProvided if the request fails structural validation.
//   - A wrapped store.ErrUserNotFound when the account does not exist.
//   - A wrapped store.ErrUserAlreadyExists when the new username or e-mail
//     is already taken.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("invalid profile update data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by ID failed")
		return models.User{}, fmt.Errorf("user search by ID failed: %w", err)
	}

	if request.Username != "" {
		user.Username = request.Username
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.Avatar != "" {
		user.Avatar = request.Avatar
	}
	if request.Password != "" {
		passwordHash, err := hashPassword(request.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteAccount removes the account and every listing it owns. Listings go
// first so a failure there leaves the account intact and the operation
// retryable.
func (u *userService) DeleteAccount(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := u.listingRepository.DeleteByOwner(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("deleting user listings failed")
		return fmt.Errorf("deleting user listings failed: %w", err)
	}

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	return nil
}
