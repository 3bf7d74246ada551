// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is returned when a sync is requested while another
	// one is still running.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSyncFailed wraps the cause carried by a terminal error event.
	ErrSyncFailed = errors.New("sync failed")

	// ErrEmptyKeyword is returned by searches without a keyword.
	ErrEmptyKeyword = errors.New("empty search keyword")

	// ErrInvalidDataProvided is returned when submitted data fails
	// validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
