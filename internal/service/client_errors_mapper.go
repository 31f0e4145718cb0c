// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/store"
)

// mapAdapterError translates the adapter's transport error into the business
// error the rest of the client understands. The server puts its sentinel
// error text into the response body, so ambiguous statuses (401, 404) are
// disambiguated by message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.Contains(msg, ErrWrongPassword.Error()) {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotResourceOwner

	case errors.Is(err, adapter.ErrNotFound):
		if strings.Contains(msg, store.ErrListingNotFound.Error()) {
			return store.ErrListingNotFound
		}
		return store.ErrUserNotFound

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUserAlreadyExists
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
