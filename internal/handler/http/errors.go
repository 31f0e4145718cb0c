// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the incoming
	// request carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionToken is returned when the session cookie is present but
	// its value is an empty string.
	ErrEmptySessionToken = errors.New("empty session token")

	// errInvalidID is returned when a path parameter that must be a positive
	// integer identifier fails to parse.
	errInvalidID = errors.New("invalid identifier in URL")

	// errInvalidJSON is returned when a request body cannot be decoded.
	errInvalidJSON = errors.New("invalid JSON was passed")

	// errInvalidSearchParams is returned when a search query parameter
	// cannot be parsed.
	errInvalidSearchParams = errors.New("invalid search parameters")
)
