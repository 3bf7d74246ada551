// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-search-keeper/internal/service"
)

type menuEntry struct {
	label string
	page  string
}

type MenuModel struct {
	ctx  context.Context
	sync service.ClientSyncService

	items []menuEntry
	idx   int

	version string
	valid   bool
	loaded  bool
	err     error
	status  string
}

func NewMenuModel(ctx context.Context, sync service.ClientSyncService) *MenuModel {
	return &MenuModel{
		ctx:  ctx,
		sync: sync,
		items: []menuEntry{
			{label: "Sync catalog", page: pageSync},
			{label: "Browse catalog", page: pageBrowse},
			{label: "Search", page: pageSearch},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return m.loadStatus()
}

func (m *MenuModel) loadStatus() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		version, err := sync.CurrentVersion(ctx)
		if err != nil {
			return statusLoadedMsg{err: err}
		}
		valid, err := sync.HasValidData(ctx)
		return statusLoadedMsg{version: version, valid: valid, err: err}
	}
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.loaded = true
		m.version, m.valid, m.err = msg.version, msg.valid, msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			entry := m.items[m.idx]
			if entry.page != pageSync && !m.valid {
				m.status = "The catalog is empty, run a sync first"
				return m, nil
			}
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: entry.page} }
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		default:
			m.idx = moveCursor(msg, m.idx, len(m.items))
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	labelWidth := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > labelWidth {
			labelWidth = w
		}
	}

	switch {
	case !m.loaded:
		b.WriteString("Catalog: loading...\n\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Catalog: " + humanizeError(m.err)))
		b.WriteString("\n\n")
	case m.version == "":
		b.WriteString("Catalog: never synced\n\n")
	default:
		fmt.Fprintf(&b, "Catalog version: %s\n\n", m.version)
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %d │ %-*s\n", cursor, i+1, labelWidth, item.label)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(titleStyle.Render("MAIN MENU"), strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
