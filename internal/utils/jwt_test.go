package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("go-estate", 123, time.Hour, "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: "secret"},
		{name: "zero duration", issuer: "go-estate", duration: 0, signKey: "secret"},
		{name: "empty sign key", issuer: "go-estate", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("go-estate", 42, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "go-estate")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("go-estate", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-secret", "go-estate")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("someone-else", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "go-estate")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("go-estate", 42, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "go-estate")
	assert.Error(t, err)
}
