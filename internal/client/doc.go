// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows and client services into a single process
// lifecycle: the auth flow runs until a session is established, then the
// main loop serves the signed-in user until they quit or sign out.
package client
