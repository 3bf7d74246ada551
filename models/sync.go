// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is the lifecycle state of one synchronization run.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncFetching
	SyncParsing
	SyncReconciling
	SyncCommitted
	SyncFailed
	SyncCanceled
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncFetching:
		return "fetching"
	case SyncParsing:
		return "parsing"
	case SyncReconciling:
		return "reconciling"
	case SyncCommitted:
		return "committed"
	case SyncFailed:
		return "failed"
	case SyncCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// SyncEventKind discriminates the payload of a [SyncEvent].
type SyncEventKind int

const (
	// EventNodeCount is sent once, when the feed declares its Total.
	EventNodeCount SyncEventKind = iota + 1
	// EventNode is sent once per applied record with the running count.
	EventNode
	// EventSuccess is the terminal event of a committed sync.
	EventSuccess
	// EventError is the terminal event of a failed sync.
	EventError
)

// SyncEvent is a fire-and-forget notification delivered to the caller.
// Canceled runs produce no terminal event.
type SyncEvent struct {
	Kind SyncEventKind

	NodeCount int
	Node      int

	// Version is set on EventSuccess.
	Version string
	// Err is set on EventError.
	Err error
}

// Terminal reports whether e ends the event stream of a run.
func (e SyncEvent) Terminal() bool {
	return e.Kind == EventSuccess || e.Kind == EventError
}
