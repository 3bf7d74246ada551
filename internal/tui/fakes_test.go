package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-search-keeper/models"
)

type fakeSyncService struct {
	events   chan models.SyncEvent
	startErr error
	version  string
	valid    bool
	canceled int
}

func (f *fakeSyncService) Start(_ context.Context) (<-chan models.SyncEvent, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.events, nil
}

func (f *fakeSyncService) Run(_ context.Context) error { return nil }

func (f *fakeSyncService) Cancel() { f.canceled++ }

func (f *fakeSyncService) Wait(_ context.Context) error { return nil }

func (f *fakeSyncService) State() models.SyncState { return models.SyncIdle }

func (f *fakeSyncService) CurrentVersion(_ context.Context) (string, error) {
	return f.version, nil
}

func (f *fakeSyncService) HasValidData(_ context.Context) (bool, error) {
	return f.valid, nil
}

type fakeCatalogService struct {
	menus    []models.Menu
	children map[string][]models.MenuItem
	results  []models.MenuItem
	searched []string
}

func (f *fakeCatalogService) Menus(_ context.Context) ([]models.Menu, error) {
	return f.menus, nil
}

func (f *fakeCatalogService) Children(_ context.Context, menuID, parentID string) ([]models.MenuItem, error) {
	return f.children[menuID+"/"+parentID], nil
}

func (f *fakeCatalogService) Item(_ context.Context, id string) (models.MenuItem, error) {
	return models.MenuItem{ID: id}, nil
}

func (f *fakeCatalogService) Search(_ context.Context, _, keyword string, _ uint64) ([]models.MenuItem, error) {
	f.searched = append(f.searched, keyword)
	return f.results, nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes cmd and returns its message.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
