// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by NewApp when a dependency is missing.
var ErrNotConfigured = errors.New("client app is not fully configured")

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
