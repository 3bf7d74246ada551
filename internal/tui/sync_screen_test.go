package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-search-keeper/internal/service"
	"github.com/MKhiriev/go-search-keeper/models"
)

func startedSyncModel(t *testing.T, fake *fakeSyncService) *syncModel {
	t.Helper()

	m := newSyncModel(context.Background(), fake)
	m.Init()
	require.True(t, m.running)

	msg := run(m.start())
	_, cmd := m.Update(msg)
	if fake.startErr == nil {
		require.NotNil(t, cmd)
	}
	return m
}

func TestSyncModel_ProgressAndSuccess(t *testing.T) {
	fake := &fakeSyncService{events: make(chan models.SyncEvent, 8)}
	m := startedSyncModel(t, fake)

	m.Update(syncEventMsg{event: models.SyncEvent{Kind: models.EventNodeCount, NodeCount: 4}})
	m.Update(syncEventMsg{event: models.SyncEvent{Kind: models.EventNode, Node: 1}})
	assert.InDelta(t, 0.25, m.percent(), 0.001)

	m.Update(syncEventMsg{event: models.SyncEvent{Kind: models.EventNode, Node: 9}})
	assert.Equal(t, 1.0, m.percent(), "progress is capped")

	m.Update(syncEventMsg{event: models.SyncEvent{Kind: models.EventSuccess, Version: "7"}})
	m.Update(syncClosedMsg{})

	assert.False(t, m.running)
	assert.False(t, m.canceled)
	assert.Equal(t, "7", m.version)
	assert.Contains(t, m.View(), "version 7")
}

func TestSyncModel_ErrorEvent(t *testing.T) {
	fake := &fakeSyncService{events: make(chan models.SyncEvent, 8)}
	m := startedSyncModel(t, fake)

	m.Update(syncEventMsg{event: models.SyncEvent{Kind: models.EventError, Err: errors.New("feed broken")}})
	m.Update(syncClosedMsg{})

	assert.False(t, m.canceled)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "feed broken")
}

func TestSyncModel_CtrlCCancelsRunningSync(t *testing.T) {
	fake := &fakeSyncService{events: make(chan models.SyncEvent, 8)}
	m := startedSyncModel(t, fake)

	assert.True(t, m.capturesInterrupt())
	m.Update(keyMsg("ctrl+c"))
	assert.Equal(t, 1, fake.canceled)

	// a canceled run closes the channel without a terminal event
	m.Update(syncClosedMsg{})
	assert.True(t, m.canceled)
	assert.False(t, m.capturesInterrupt())
	assert.Contains(t, m.View(), "Sync canceled")
}

func TestSyncModel_WaitForEventReadsChannel(t *testing.T) {
	events := make(chan models.SyncEvent, 1)
	events <- models.SyncEvent{Kind: models.EventNode, Node: 3}

	msg := run(waitForSyncEvent(events))
	assert.Equal(t, syncEventMsg{event: models.SyncEvent{Kind: models.EventNode, Node: 3}}, msg)

	close(events)
	assert.Equal(t, syncClosedMsg{}, run(waitForSyncEvent(events)))
}

func TestSyncModel_StartRejected(t *testing.T) {
	fake := &fakeSyncService{startErr: service.ErrSyncInProgress}
	m := startedSyncModel(t, fake)

	assert.False(t, m.running)
	assert.Contains(t, m.View(), "already running")
}

func TestSyncModel_BackToMenuWhenDone(t *testing.T) {
	fake := &fakeSyncService{events: make(chan models.SyncEvent, 8)}
	m := startedSyncModel(t, fake)
	m.Update(syncClosedMsg{})

	_, cmd := m.Update(keyMsg("esc"))
	assert.Equal(t, NavigateTo{Page: pageMenu}, run(cmd))
}
