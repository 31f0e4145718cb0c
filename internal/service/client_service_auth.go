package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	mu   sync.RWMutex
	user models.User

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.adapter.SignUp(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.logger.Info().Str("username", user.Username).Msg("account registered")
	return user, nil
}

func (a *clientAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.adapter.SignIn(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.setUser(user)
	a.logger.Info().Int64("user_id", user.ID).Msg("signed in")
	return user, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.adapter.SignOut(ctx); err != nil {
		return mapAdapterError(err)
	}

	a.clearUser()
	return nil
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user, a.user.ID != 0
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	current, ok := a.CurrentUser()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.adapter.UpdateProfile(ctx, current.ID, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.setUser(user)
	return user, nil
}

func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	current, ok := a.CurrentUser()
	if !ok {
		return ErrNotSignedIn
	}

	if err := a.adapter.DeleteAccount(ctx, current.ID); err != nil {
		return mapAdapterError(err)
	}

	a.clearUser()
	a.logger.Info().Int64("user_id", current.ID).Msg("account deleted")
	return nil
}

func (a *clientAuthService) setUser(user models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
}

func (a *clientAuthService) clearUser() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = models.User{}
}
