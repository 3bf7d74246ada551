package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/models"
)

const (
	searchFieldInterviewee = iota
	searchFieldKeyword
)

// searchModel runs keyword searches. Every search is recorded as a usage
// log for the entered interviewee.
type searchModel struct {
	ctx     context.Context
	catalog service.ClientCatalogService

	inputs []textinput.Model
	focus  int

	keyword   string
	results   []models.MenuItem
	idx       int
	detail    *models.MenuItem
	searching bool
	err       error
}

func newSearchModel(ctx context.Context, catalog service.ClientCatalogService) *searchModel {
	interviewee := textinput.New()
	interviewee.Placeholder = "interviewee id"
	interviewee.CharLimit = 64

	keyword := textinput.New()
	keyword.Placeholder = "keyword"
	keyword.CharLimit = 128

	return &searchModel{
		ctx:     ctx,
		catalog: catalog,
		inputs:  []textinput.Model{interviewee, keyword},
	}
}

func (m *searchModel) Init() tea.Cmd {
	m.results, m.detail, m.err = nil, nil, nil
	m.keyword, m.idx = "", 0
	m.inputs[searchFieldKeyword].SetValue("")
	return m.setFocus(searchFieldKeyword)
}

func (m *searchModel) setFocus(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[field].Focus()
}

func (m *searchModel) search() tea.Cmd {
	ctx, catalog := m.ctx, m.catalog
	interviewee := strings.TrimSpace(m.inputs[searchFieldInterviewee].Value())
	keyword := strings.TrimSpace(m.inputs[searchFieldKeyword].Value())

	return func() tea.Msg {
		items, err := catalog.Search(ctx, interviewee, keyword, service.DefaultSearchLimit)
		return searchDoneMsg{keyword: keyword, items: items, err: err}
	}
}

func (m *searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.searching = false
		m.keyword, m.results, m.err = msg.keyword, msg.items, msg.err
		m.idx = 0
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m, nil
		}
		if m.detail != nil {
			if key.Matches(msg, keys.esc) {
				m.detail = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case msg.Type == tea.KeyUp:
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case msg.Type == tea.KeyDown:
			if m.idx < len(m.results)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			// a second enter on an unchanged keyword opens the selected result
			if len(m.results) > 0 && m.keyword == strings.TrimSpace(m.inputs[searchFieldKeyword].Value()) {
				item := m.results[m.idx]
				m.detail = &item
				return m, nil
			}
			m.searching = true
			return m, m.search()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *searchModel) View() string {
	var b strings.Builder

	if m.detail != nil {
		b.WriteString(renderItemDetail(*m.detail))
		return renderPage(titleStyle.Render("SEARCH"), b.String(), "esc: back to results")
	}

	b.WriteString("Interviewee: ")
	b.WriteString(m.inputs[searchFieldInterviewee].View())
	b.WriteString("\nKeyword:     ")
	b.WriteString(m.inputs[searchFieldKeyword].View())
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString("Searching...")
	case m.err != nil:
		b.WriteString(newErrorOverlay(m.err).View())
	case m.keyword != "" && len(m.results) == 0:
		fmt.Fprintf(&b, "Nothing found for %q", m.keyword)
	default:
		for i, item := range m.results {
			fmt.Fprintf(&b, "%s %s\n", cursorMark(i == m.idx), fitText(item.Label, 60))
		}
	}

	return renderPage(titleStyle.Render("SEARCH"), strings.TrimRight(b.String(), "\n"), "enter: search / open │ tab: switch field │ ↑/↓: results │ esc: back")
}
