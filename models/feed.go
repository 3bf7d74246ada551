// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordType names a top-level key of the catalog feed.
type RecordType string

const (
	RecordMenus            RecordType = "Menus"
	RecordMenuItems        RecordType = "MenuItems"
	RecordDeletedMenuItems RecordType = "DeletedMenuItems"
	RecordImages           RecordType = "Images"
	RecordDeletedImages    RecordType = "DeletedImages"

	// RecordVersion and RecordTotal are top-level scalars, never arrays.
	RecordVersion RecordType = "Version"
	RecordTotal   RecordType = "Total"
)

// FeedRecord is one element of a typed record array: a flat set of
// string-keyed scalar fields collected while streaming.
type FeedRecord struct {
	Type   RecordType
	Fields map[string]string
}

// ID returns the "id" field of the record, or an empty string.
func (r FeedRecord) ID() string {
	return r.Fields["id"]
}

// FeedSummary is what one pass over a feed produced.
type FeedSummary struct {
	// Version is the first Version scalar of the feed, "" when absent.
	Version      string
	VersionFound bool
	// Total is the declared node count, used only for progress.
	Total      int
	TotalFound bool

	// MenusSeen reports whether the feed carried a "Menus" array at all.
	MenusSeen   bool
	SeenMenuIDs []string

	UpdatedImages []string
	DeletedImages []string

	Added   int
	Deleted int
	Skipped int
}
