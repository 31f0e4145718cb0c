package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, _ := utils.GetUserIDFromContext(ctx)

	var request models.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	createdListing, err := h.services.ListingService.CreateListing(ctx, ownerID, request)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("error occurred during listing creation")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, createdListing, http.StatusCreated)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listingID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid listing id in URL")
		writeError(w, err)
		return
	}

	listing, err := h.services.ListingService.GetListing(ctx, listingID)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("error occurred during listing lookup")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) updateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listingID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid listing id in URL")
		writeError(w, err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)

	var request models.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, errInvalidJSON)
		return
	}

	updatedListing, err := h.services.ListingService.UpdateListing(ctx, actorID, listingID, request)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("error occurred during listing update")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updatedListing, http.StatusOK)
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listingID, err := idFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid listing id in URL")
		writeError(w, err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.ListingService.DeleteListing(ctx, actorID, listingID); err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("error occurred during listing deletion")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Message{Message: "listing deleted"}, http.StatusOK)
}

func (h *Handler) searchListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := searchQueryFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid search parameters")
		writeError(w, err)
		return
	}

	listings, err := h.services.ListingService.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("searchTerm", query.SearchTerm).Msg("error occurred during listing search")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, listings, http.StatusOK)
}

// searchQueryFromURL decodes the search filters from the query string.
//
// Boolean filters are tri-state: absent, "all", or "" mean "either value";
// "true"/"false" narrow the result. Type behaves the same with "sale"/"rent".
// limit defaults to models.DefaultSearchLimit, startIndex to 0.
func searchQueryFromURL(r *http.Request) (models.SearchQuery, error) {
	values := r.URL.Query()

	query := models.SearchQuery{
		SearchTerm: values.Get("searchTerm"),
		Limit:      models.DefaultSearchLimit,
	}

	if t := values.Get("type"); t != "" && t != "all" {
		if t != models.ListingTypeSale && t != models.ListingTypeRent {
			return models.SearchQuery{}, errInvalidSearchParams
		}
		query.Type = t
	}

	for name, dst := range map[string]**bool{
		"offer":     &query.Offer,
		"furnished": &query.Furnished,
		"parking":   &query.Parking,
	} {
		raw := values.Get(name)
		if raw == "" || raw == "all" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return models.SearchQuery{}, errInvalidSearchParams
		}
		*dst = &parsed
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return models.SearchQuery{}, errInvalidSearchParams
		}
		query.Limit = limit
	}

	if raw := values.Get("startIndex"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.SearchQuery{}, errInvalidSearchParams
		}
		query.Offset = offset
	}

	return query, nil
}
