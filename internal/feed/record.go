package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-search-keeper/models"
)

// field returns the first non-empty value among the given keys. Feeds have
// used both camelCase and column-style names for the same field.
func field(fields map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := fields[k]; v != "" {
			return v
		}
	}
	return ""
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func menuFromRecord(rec models.FeedRecord) (models.Menu, error) {
	id := rec.ID()
	if id == "" {
		return models.Menu{}, fmt.Errorf("%w: %s record without id", ErrInvalidRecord, rec.Type)
	}

	return models.Menu{
		ID:    id,
		Label: rec.Fields["label"],
	}, nil
}

func menuItemFromRecord(rec models.FeedRecord) (models.MenuItem, error) {
	id := rec.ID()
	if id == "" {
		return models.MenuItem{}, fmt.Errorf("%w: %s record without id", ErrInvalidRecord, rec.Type)
	}

	item := models.MenuItem{
		ID:           id,
		Label:        rec.Fields["label"],
		MenuID:       field(rec.Fields, "menuId", "menu_id"),
		ParentID:     optional(field(rec.Fields, "parentId", "parent_id")),
		Content:      rec.Fields["content"],
		AttachmentID: optional(field(rec.Fields, "attachmentId", "attachment_id")),
	}

	if raw := strings.TrimSpace(rec.Fields["position"]); raw != "" {
		position, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.MenuItem{}, fmt.Errorf("%w: item %s has position %q", ErrInvalidRecord, id, raw)
		}
		item.Position = &position
	}

	return item, nil
}
