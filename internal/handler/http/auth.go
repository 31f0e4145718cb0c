package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during user registration")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, registeredUser.Public(), http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during user login")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	h.establishSession(w, r, foundUser)
}

func (h *Handler) oauth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	user, err := h.services.AuthService.OAuthLogin(ctx, request)
	if err != nil {
		log.Err(err).Msg("error occurred during oauth login")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user logged in via oauth")

	h.establishSession(w, r, user)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	_, _ = utils.WriteJSON(w, models.Message{Message: "signed out"}, http.StatusOK)
}

// establishSession issues a session token for user, sets it as the HTTP-only
// session cookie, and writes the public user projection with 200 OK.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_, _ = utils.WriteJSON(w, user.Public(), http.StatusOK)
}
