package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/models"
)

// syncModel starts a sync when shown and renders its progress events.
type syncModel struct {
	ctx  context.Context
	sync service.ClientSyncService

	events  <-chan models.SyncEvent
	spinner spinner.Model
	bar     progress.Model

	total   int
	done    int
	running bool

	finished bool
	canceled bool
	version  string
	err      error
}

func newSyncModel(ctx context.Context, sync service.ClientSyncService) *syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &syncModel{
		ctx:     ctx,
		sync:    sync,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m *syncModel) Init() tea.Cmd {
	m.reset()
	m.running = true
	return tea.Batch(m.spinner.Tick, m.start())
}

func (m *syncModel) reset() {
	m.events = nil
	m.total, m.done = 0, 0
	m.running, m.finished, m.canceled = false, false, false
	m.version, m.err = "", nil
}

func (m *syncModel) start() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		events, err := sync.Start(ctx)
		return syncStartedMsg{events: events, err: err}
	}
}

func waitForSyncEvent(events <-chan models.SyncEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return syncClosedMsg{}
		}
		return syncEventMsg{event: ev}
	}
}

func (m *syncModel) capturesInterrupt() bool {
	return m.running
}

func (m *syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncStartedMsg:
		if msg.err != nil {
			m.running = false
			m.err = msg.err
			return m, nil
		}
		m.events = msg.events
		return m, waitForSyncEvent(m.events)

	case syncEventMsg:
		m.apply(msg.event)
		return m, waitForSyncEvent(m.events)

	case syncClosedMsg:
		m.running = false
		m.events = nil
		if !m.finished && m.err == nil {
			m.canceled = true
		}
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.running {
			if key.Matches(msg, keys.cancel) {
				m.sync.Cancel()
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.retry):
			return m, m.Init()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}

	return m, nil
}

func (m *syncModel) apply(ev models.SyncEvent) {
	switch ev.Kind {
	case models.EventNodeCount:
		m.total = ev.NodeCount
	case models.EventNode:
		m.done = ev.Node
	case models.EventSuccess:
		m.finished = true
		m.version = ev.Version
	case models.EventError:
		m.finished = true
		m.err = ev.Err
	}
}

// percent is the share of declared nodes applied so far, capped at 1.
func (m *syncModel) percent() float64 {
	if m.finished && m.err == nil {
		return 1
	}
	if m.total <= 0 {
		return 0
	}
	p := float64(m.done) / float64(m.total)
	if p > 1 {
		return 1
	}
	return p
}

func (m *syncModel) View() string {
	var b strings.Builder

	switch {
	case m.running:
		b.WriteString(m.spinner.View())
		b.WriteString(" Syncing catalog...\n\n")
	case m.err != nil:
		b.WriteString(newErrorOverlay(m.err).View())
		b.WriteString("\n\n")
	case m.canceled:
		b.WriteString("Sync canceled\n\n")
	case m.finished:
		b.WriteString(okStyle.Render("Catalog updated to version " + m.version))
		b.WriteString("\n\n")
	}

	b.WriteString(m.bar.ViewAs(m.percent()))
	if m.total > 0 {
		fmt.Fprintf(&b, "\n%d / %d", m.done, m.total)
	}

	hotKeys := "ctrl+c / esc: cancel"
	if !m.running {
		hotKeys = "r: sync again │ enter / esc: back"
	}
	return renderPage(titleStyle.Render("SYNC"), b.String(), hotKeys)
}
