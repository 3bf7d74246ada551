package models

// Menu is a top-level catalog category (e.g. "Crops", "Animals").
//
// Menus are created or replaced by every "Menus" record of a feed and are
// removed by the reconciler when they disappear from the latest feed.
// Removing a Menu cascades to all of its [MenuItem] rows.
type Menu struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MenuItem is a content node of the catalog tree. A root item has no
// ParentID and hangs directly under its Menu.
type MenuItem struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	MenuID       string  `json:"menu_id"`
	ParentID     *string `json:"parent_id,omitempty"`
	Position     *int64  `json:"position,omitempty"`
	Content      string  `json:"content"`
	AttachmentID *string `json:"attachment_id,omitempty"`
}

// IsRoot reports whether the item is attached directly to its menu.
func (m MenuItem) IsRoot() bool {
	return m.ParentID == nil
}
