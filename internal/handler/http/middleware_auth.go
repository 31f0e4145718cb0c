package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie is present but empty ([ErrEmptySessionToken]).
//   - The token is expired, malformed, or signed with the wrong key
//     ([service.ErrTokenIsExpiredOrInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromCookie(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, err)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromCookie extracts the raw session token string from the request
// cookie jar.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] — if the cookie is missing entirely.
//   - [ErrEmptySessionToken] — if the cookie exists but its value is empty.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(models.SessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionToken
	}

	return cookie.Value, nil
}
