// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{
		Username: "john",
		Email:    "john@example.com",
		Password: "secret1",
	}
}

// ---------------------------------------------------------------------------
// TestNewUserValidator
// ---------------------------------------------------------------------------

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestUserValidate_Dispatch
// ---------------------------------------------------------------------------

func TestUserValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("SignUpRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validSignUp()))
	})

	t.Run("SignUpRequest pointer", func(t *testing.T) {
		req := validSignUp()
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validSignUp(), "no-such-field")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateSignUpRequest
// ---------------------------------------------------------------------------

func TestValidateSignUpRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.SignUpRequest)
		wantErr error
	}{
		{"valid", func(r *models.SignUpRequest) {}, nil},
		{"empty username", func(r *models.SignUpRequest) { r.Username = "  " }, ErrEmptyUsername},
		{"missing at sign", func(r *models.SignUpRequest) { r.Email = "john.example.com" }, ErrInvalidEmail},
		{"missing domain dot", func(r *models.SignUpRequest) { r.Email = "john@example" }, ErrInvalidEmail},
		{"empty password", func(r *models.SignUpRequest) { r.Password = "" }, ErrEmptyPassword},
		{"short password", func(r *models.SignUpRequest) { r.Password = "abc" }, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignUp()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateSignInRequest
// ---------------------------------------------------------------------------

func TestValidateSignInRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid with username", func(t *testing.T) {
		err := v.Validate(ctx, models.SignInRequest{Identifier: "john", Password: "secret1"})
		require.NoError(t, err)
	})

	t.Run("valid with email", func(t *testing.T) {
		err := v.Validate(ctx, models.SignInRequest{Identifier: "john@example.com", Password: "secret1"})
		require.NoError(t, err)
	})

	t.Run("empty identifier", func(t *testing.T) {
		err := v.Validate(ctx, models.SignInRequest{Password: "secret1"})
		require.ErrorIs(t, err, ErrEmptyIdentifier)
	})

	t.Run("empty password", func(t *testing.T) {
		err := v.Validate(ctx, models.SignInRequest{Identifier: "john"})
		require.ErrorIs(t, err, ErrEmptyPassword)
	})
}

// ---------------------------------------------------------------------------
// TestValidateOAuthRequest
// ---------------------------------------------------------------------------

func TestValidateOAuthRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(ctx, models.OAuthRequest{Name: "John Doe", Email: "john@example.com", Photo: "https://p.example.com/j.png"})
		require.NoError(t, err)
	})

	t.Run("photo is optional", func(t *testing.T) {
		err := v.Validate(ctx, models.OAuthRequest{Name: "John Doe", Email: "john@example.com"})
		require.NoError(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(ctx, models.OAuthRequest{Email: "john@example.com"})
		require.ErrorIs(t, err, ErrEmptyOAuthName)
	})

	t.Run("bad email", func(t *testing.T) {
		err := v.Validate(ctx, models.OAuthRequest{Name: "John Doe", Email: "nope"})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})
}

// ---------------------------------------------------------------------------
// TestValidateUpdateProfileRequest
// ---------------------------------------------------------------------------

func TestValidateUpdateProfileRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("single field is enough", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateProfileRequest{Username: "john-2"})
		require.NoError(t, err)
	})

	t.Run("no fields", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateProfileRequest{})
		require.ErrorIs(t, err, ErrNoProfileFields)
	})

	t.Run("bad email when supplied", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateProfileRequest{Email: "nope"})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("short password when supplied", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdateProfileRequest{Password: "abc"})
		require.ErrorIs(t, err, ErrPasswordTooShort)
	})
}
