// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the catalog server writes
// into HTTP response bodies, so handlers word failures consistently.
package app

const (
	// MsgFeedUnavailable is returned when the feed file cannot be opened.
	MsgFeedUnavailable = "feed is unavailable"

	// MsgImageUnavailable is returned when an image cannot be opened.
	MsgImageUnavailable = "image is unavailable"

	// MsgMissingLogFlag is returned for usage requests without log=true.
	MsgMissingLogFlag = "missing log=true query parameter"

	// MsgInvalidSubmitTime is returned when handset_submit_time does not
	// follow the "2006-01-02 15:04:05" layout.
	MsgInvalidSubmitTime = "invalid handset_submit_time query parameter"

	// MsgUsageLogNotStored is returned when a usage log is rejected or
	// cannot be written.
	MsgUsageLogNotStored = "usage log was not stored"

	// MsgUsageLogStored acknowledges an accepted usage log.
	MsgUsageLogStored = "ok"
)
