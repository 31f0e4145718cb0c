// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the terminal client. [App] is the
// only implementation; the interface keeps main decoupled from the
// auth-flow/main-loop cycle inside.
type Client interface {
	// Run starts the client application and blocks until exit. A nil
	// return means the user quit on purpose.
	Run() error
}
