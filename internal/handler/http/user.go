package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in URL")
		writeError(w, err)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("error occurred during user lookup")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in URL")
		writeError(w, err)
		return
	}

	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || actorID != userID {
		log.Error().Int64("actorID", actorID).Int64("userID", userID).Msg("profile update denied: not the owner")
		writeError(w, service.ErrNotResourceOwner)
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	updatedUser, err := h.services.UserService.UpdateProfile(ctx, userID, request)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("error occurred during profile update")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updatedUser.Public(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in URL")
		writeError(w, err)
		return
	}

	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || actorID != userID {
		log.Error().Int64("actorID", actorID).Int64("userID", userID).Msg("account deletion denied: not the owner")
		writeError(w, service.ErrNotResourceOwner)
		return
	}

	if err := h.services.UserService.DeleteAccount(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("error occurred during account deletion")
		writeError(w, err)
		return
	}

	// the deleted account's session is useless now, drop the cookie too
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	_, _ = utils.WriteJSON(w, models.Message{Message: "account deleted"}, http.StatusOK)
}

func (h *Handler) userListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid user id in URL")
		writeError(w, err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)

	listings, err := h.services.ListingService.ListByOwner(ctx, actorID, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("error occurred during portfolio lookup")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, listings, http.StatusOK)
}

// idFromURL parses the {id} chi route parameter as a positive int64.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
