package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/models"
)

// browseModel walks the catalog tree: menus, then items level by level.
// Opening an item without children shows its content.
type browseModel struct {
	ctx     context.Context
	catalog service.ClientCatalogService

	menus []models.Menu
	menu  *models.Menu
	// path holds the opened items, innermost last.
	path   []models.MenuItem
	items  []models.MenuItem
	detail *models.MenuItem

	idx     int
	loading bool
	err     error
}

func newBrowseModel(ctx context.Context, catalog service.ClientCatalogService) *browseModel {
	return &browseModel{ctx: ctx, catalog: catalog}
}

func (m *browseModel) Init() tea.Cmd {
	m.menu, m.path, m.items, m.detail = nil, nil, nil, nil
	m.idx, m.err = 0, nil
	m.loading = true
	return m.loadMenus()
}

func (m *browseModel) loadMenus() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		menus, err := catalog.Menus(ctx)
		return menusLoadedMsg{menus: menus, err: err}
	}
}

func (m *browseModel) loadItems(menuID string, parent *models.MenuItem) tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	return func() tea.Msg {
		parentID := ""
		if parent != nil {
			parentID = parent.ID
		}
		items, err := catalog.Children(ctx, menuID, parentID)
		return itemsLoadedMsg{parent: parent, items: items, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case menusLoadedMsg:
		m.loading = false
		m.menus, m.err = msg.menus, msg.err
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.parent != nil && len(msg.items) == 0 {
			m.detail = msg.parent
			return m, nil
		}
		if msg.parent != nil && !m.inPath(msg.parent.ID) {
			m.path = append(m.path, *msg.parent)
		}
		m.items = msg.items
		m.idx = 0
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.back()
		case key.Matches(msg, keys.enter):
			return m, m.open()
		default:
			m.idx = moveCursor(msg, m.idx, m.rows())
		}
	}

	return m, nil
}

func (m *browseModel) inPath(id string) bool {
	for _, item := range m.path {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (m *browseModel) rows() int {
	if m.menu == nil {
		return len(m.menus)
	}
	return len(m.items)
}

func (m *browseModel) open() tea.Cmd {
	if m.detail != nil || m.idx >= m.rows() {
		return nil
	}

	m.loading = true
	if m.menu == nil {
		menu := m.menus[m.idx]
		m.menu = &menu
		return m.loadItems(menu.ID, nil)
	}

	item := m.items[m.idx]
	return m.loadItems(m.menu.ID, &item)
}

func (m *browseModel) back() tea.Cmd {
	switch {
	case m.detail != nil:
		m.detail = nil
		return nil
	case len(m.path) > 0:
		m.path = m.path[:len(m.path)-1]
		m.loading = true
		if len(m.path) == 0 {
			return m.loadItems(m.menu.ID, nil)
		}
		parent := m.path[len(m.path)-1]
		return m.loadItems(m.menu.ID, &parent)
	case m.menu != nil:
		m.menu, m.items, m.idx = nil, nil, 0
		return nil
	default:
		return func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}
}

func (m *browseModel) breadcrumb() string {
	parts := []string{"Catalog"}
	if m.menu != nil {
		parts = append(parts, m.menu.Label)
	}
	for _, item := range m.path {
		parts = append(parts, item.Label)
	}
	return strings.Join(parts, " › ")
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(helpStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(newErrorOverlay(m.err).View())
	case m.loading:
		b.WriteString("Loading...")
	case m.detail != nil:
		b.WriteString(renderItemDetail(*m.detail))
	case m.menu == nil:
		if len(m.menus) == 0 {
			b.WriteString("No menus")
		}
		for i, menu := range m.menus {
			fmt.Fprintf(&b, "%s %s\n", cursorMark(i == m.idx), menu.Label)
		}
	default:
		if len(m.items) == 0 {
			b.WriteString("No items")
		}
		for i, item := range m.items {
			fmt.Fprintf(&b, "%s %s\n", cursorMark(i == m.idx), fitText(item.Label, 60))
		}
	}

	return renderPage(titleStyle.Render("BROWSE"), strings.TrimRight(b.String(), "\n"), "enter: open │ esc: back │ ↑/↓: navigate")
}

func renderItemDetail(item models.MenuItem) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(item.Label))
	b.WriteString("\n\n")
	if strings.TrimSpace(item.Content) == "" {
		b.WriteString("-")
	} else {
		b.WriteString(item.Content)
	}
	b.WriteString("\n\nAttachment: ")
	b.WriteString(valueOrDash(item.AttachmentID))

	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
