package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-estate/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUsername targets the unique account name chosen at registration.
	FieldUsername = "username"

	// FieldEmail targets the account e-mail address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of an auth request.
	FieldPassword = "password"

	// FieldIdentifier targets the username-or-email login field.
	FieldIdentifier = "identifier"

	// FieldOAuthName targets the display name supplied by the identity provider.
	FieldOAuthName = "oauth name"

	// FieldProfileUpdates enforces that a profile update carries at least
	// one field to change.
	FieldProfileUpdates = "profile updates"
)

// minPasswordLength is the shortest accepted plaintext password.
const minPasswordLength = 6

// UserValidator implements the Validator interface for all account-related
// request models: SignUpRequest, SignInRequest, OAuthRequest, and
// UpdateProfileRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.SignUpRequest / *models.SignUpRequest
//   - models.SignInRequest / *models.SignInRequest
//   - models.OAuthRequest / *models.OAuthRequest
//   - models.UpdateProfileRequest / *models.UpdateProfileRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)
	case models.SignInRequest:
		return v.validateSignInRequest(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignInRequest(ctx, *value, fields...)
	case models.OAuthRequest:
		return v.validateOAuthRequest(ctx, value, fields...)
	case *models.OAuthRequest:
		return v.validateOAuthRequest(ctx, *value, fields...)
	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUpRequest(_ context.Context, request models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateSignInRequest(_ context.Context, request models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if strings.TrimSpace(request.Identifier) == "" {
				return ErrEmptyIdentifier
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateOAuthRequest(_ context.Context, request models.OAuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOAuthName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldOAuthName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyOAuthName
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateProfileRequest(_ context.Context, request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileUpdates, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileUpdates:
			if request.Username == "" && request.Email == "" && request.Password == "" && request.Avatar == "" {
				return ErrNoProfileFields
			}
		case FieldEmail:
			// optional on update, validated only when supplied
			if request.Email != "" && !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password != "" && len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail performs a minimal structural check: one '@' with non-empty
// local part and a domain containing a dot. Deliverability is the mail
// provider's problem, not ours.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
