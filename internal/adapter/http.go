// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL, configures the underlying HTTP client with the
// resolved base URL and request timeout, and installs an in-process cookie
// jar so that the session cookie set by the server on sign-in is replayed on
// every subsequent request.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}

	client.
		SetBaseURL(baseURL.String()).
		SetTimeout(adapterCfg.RequestTimeout).
		SetCookieJar(jar)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("address must include host and scheme")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// SignUp implements [ServerAdapter]. It POSTs the registration form to
// POST /api/auth/signup and returns the created user's public profile. No
// session cookie is issued for this call.
func (h *httpServerAdapter) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/signin. On success the session cookie from the response is
// captured by the adapter's cookie jar and attached to all subsequent
// requests.
func (h *httpServerAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/signin")
	if err != nil {
		return models.User{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// OAuthSignIn implements [ServerAdapter]. It POSTs the federated identity
// profile to POST /api/auth/google; the server signs in an existing account
// or provisions a new one. The session cookie is captured like in SignIn.
func (h *httpServerAdapter) OAuthSignIn(ctx context.Context, req models.OAuthRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/auth/google")
	if err != nil {
		return models.User{}, fmt.Errorf("oauth sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SignOut implements [ServerAdapter]. It calls GET /api/auth/signout; the
// expiring cookie in the response makes the jar drop the session.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/auth/signout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// SessionToken implements [ServerAdapter]. It inspects the cookie jar for
// the server's session cookie and returns its raw value.
func (h *httpServerAdapter) SessionToken() string {
	jar := h.client.GetClient().Jar
	if jar == nil {
		return ""
	}

	for _, c := range jar.Cookies(h.baseURL) {
		if c.Name == models.SessionCookieName {
			return c.Value
		}
	}
	return ""
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/user/" + formatID(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/user/update/" + formatID(userID))
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// DeleteAccount implements [ServerAdapter]. The server clears the session
// cookie together with the account; the jar follows suit.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/user/update/" + formatID(userID))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateListing implements [ServerAdapter].
func (h *httpServerAdapter) CreateListing(ctx context.Context, req models.ListingRequest) (models.Listing, error) {
	var listing models.Listing

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&listing).
		Post("/api/listing/create")
	if err != nil {
		return models.Listing{}, fmt.Errorf("create listing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Listing{}, err
	}

	return listing, nil
}

// GetListing implements [ServerAdapter].
func (h *httpServerAdapter) GetListing(ctx context.Context, listingID int64) (models.Listing, error) {
	var listing models.Listing

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&listing).
		Get("/api/listing/" + formatID(listingID))
	if err != nil {
		return models.Listing{}, fmt.Errorf("get listing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Listing{}, err
	}

	return listing, nil
}

// UpdateListing implements [ServerAdapter].
func (h *httpServerAdapter) UpdateListing(ctx context.Context, listingID int64, req models.ListingRequest) (models.Listing, error) {
	var listing models.Listing

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&listing).
		Post("/api/listing/update/" + formatID(listingID))
	if err != nil {
		return models.Listing{}, fmt.Errorf("update listing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Listing{}, err
	}

	return listing, nil
}

// DeleteListing implements [ServerAdapter].
func (h *httpServerAdapter) DeleteListing(ctx context.Context, listingID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/listing/delete/" + formatID(listingID))
	if err != nil {
		return fmt.Errorf("delete listing request: %w", err)
	}

	return mapHTTPError(resp)
}

// UserListings implements [ServerAdapter].
func (h *httpServerAdapter) UserListings(ctx context.Context, ownerID int64) ([]models.Listing, error) {
	var listings []models.Listing

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&listings).
		Get("/api/user/listings/" + formatID(ownerID))
	if err != nil {
		return nil, fmt.Errorf("user listings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return listings, nil
}

// Search implements [ServerAdapter]. Nil boolean filters and the empty
// transaction type are omitted from the query string so that the server
// treats them as match-all.
func (h *httpServerAdapter) Search(ctx context.Context, query models.SearchQuery) ([]models.Listing, error) {
	var listings []models.Listing

	req := h.client.R().
		SetContext(ctx).
		SetResult(&listings)

	if query.SearchTerm != "" {
		req.SetQueryParam("searchTerm", query.SearchTerm)
	}
	if query.Type != "" {
		req.SetQueryParam("type", query.Type)
	}
	for name, filter := range map[string]*bool{
		"offer":     query.Offer,
		"furnished": query.Furnished,
		"parking":   query.Parking,
	} {
		if filter != nil {
			req.SetQueryParam(name, strconv.FormatBool(*filter))
		}
	}
	if query.Limit != 0 {
		req.SetQueryParam("limit", strconv.FormatUint(query.Limit, 10))
	}
	if query.Offset != 0 {
		req.SetQueryParam("startIndex", strconv.FormatUint(query.Offset, 10))
	}

	resp, err := req.Get("/api/listing/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return listings, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
