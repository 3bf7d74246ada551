package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-search-keeper/models"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type statusLoadedMsg struct {
	version string
	valid   bool
	err     error
}

type syncStartedMsg struct {
	events <-chan models.SyncEvent
	err    error
}

type syncEventMsg struct {
	event models.SyncEvent
}

// syncClosedMsg is sent when the event channel of a run is closed.
type syncClosedMsg struct{}

type menusLoadedMsg struct {
	menus []models.Menu
	err   error
}

type itemsLoadedMsg struct {
	// parent is the item that was opened, nil for the root of a menu.
	parent *models.MenuItem
	items  []models.MenuItem
	err    error
}

type searchDoneMsg struct {
	keyword string
	items   []models.MenuItem
	err     error
}
