// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the listing platform:
// account payloads (sign-up, sign-in, profile updates) and listing payloads
// (title, address, room counts, price pair, image gallery).
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation, which
//     profile updates use to check only the fields the request carries.
//
// The same validators run on both sides of the wire: services validate
// before touching storage, the terminal client validates before issuing a
// request, so a bad listing never reaches the upload step.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
