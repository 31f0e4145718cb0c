package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, federated
// sign-in, and the session token lifecycle, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the structural rules of incoming auth requests.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// avatarURL is the placeholder profile picture for new accounts.
	avatarURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	avatarURL := cfg.AvatarURL
	if avatarURL == "" {
		avatarURL = models.DefaultAvatarURL
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		avatarURL:      avatarURL,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request, hashes the password with bcrypt, assigns the
// placeholder avatar, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the request fails structural validation.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("username", request.Username).Msg("invalid sign-up data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := hashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Avatar:       a.avatarURL,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by username or e-mail.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the request fails structural validation.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrUserNotFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, request models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("identifier", request.Identifier).Msg("invalid sign-in data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, request.Identifier)
	if err != nil {
		log.Err(err).Str("identifier", request.Identifier).Msg("user search by identifier failed")
		return models.User{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// OAuthLogin signs in a user via a federated identity provider profile.
//
// If an account with the given e-mail already exists it is returned as-is.
// Otherwise a new account is created with a username synthesised from the
// provider display name plus a random suffix, a random bcrypt-hashed
// password, and the provider photo as avatar (falling back to the
// placeholder when the provider supplies none).
func (a *authService) OAuthLogin(ctx context.Context, request models.OAuthRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid oauth data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err == nil {
		return foundUser, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	// first federated sign-in: provision an account on the fly
	passwordHash, err := hashPassword(randomSecret(16))
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	avatar := request.Photo
	if avatar == "" {
		avatar = a.avatarURL
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     synthesizeUsername(request.Name),
		Email:        request.Email,
		PasswordHash: passwordHash,
		Avatar:       avatar,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("oauth user creation ended with error")
		return models.User{}, fmt.Errorf("oauth user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// hashPassword returns the bcrypt hash of the given plaintext at the
// default cost.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// synthesizeUsername builds a username from a provider display name:
// lowercased, spaces removed, with a random 4-character suffix to dodge
// collisions between users sharing a name.
func synthesizeUsername(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	return base + randomSecret(2)
}

// randomSecret returns a hex string of n random bytes (2n characters).
func randomSecret(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
