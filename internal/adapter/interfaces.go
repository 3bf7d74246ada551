// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-search-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_adapter_mock.go -package=mock

// FeedDownloader opens the catalog feed as a stream.
type FeedDownloader interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// ImageSync mirrors catalog images locally.
type ImageSync interface {
	Sync(ctx context.Context, updated, deleted []string) error
}

// UsageSubmitter reports a queued usage log to the server.
type UsageSubmitter interface {
	Submit(ctx context.Context, log models.UsageLog, uc models.UsageContext) error
}
