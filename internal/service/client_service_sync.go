package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-search-keeper/internal/adapter"
	"github.com/MKhiriev/go-search-keeper/internal/feed"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/internal/utils"
	"github.com/MKhiriev/go-search-keeper/models"
)

// DefaultEventBuffer is the capacity of the channel returned by Start.
const DefaultEventBuffer = 64

// clientSyncService coordinates one sync at a time:
// Fetching -> Parsing -> Reconciling -> Committed, or Failed / Canceled.
type clientSyncService struct {
	catalog    store.CatalogRepository
	settings   store.SettingsStorage
	feed       adapter.FeedDownloader
	images     adapter.ImageSync
	reconciler Reconciler
	ids        *utils.UUIDGenerator
	logger     *logger.Logger

	eventBuffer int

	running atomic.Bool

	mu     sync.Mutex
	state  models.SyncState
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientSyncService constructs the sync coordinator.
func NewClientSyncService(
	catalog store.CatalogRepository,
	settings store.SettingsStorage,
	feedDownloader adapter.FeedDownloader,
	images adapter.ImageSync,
	logger *logger.Logger,
) ClientSyncService {
	if images == nil {
		images = adapter.NewNoopImageSync()
	}

	return &clientSyncService{
		catalog:     catalog,
		settings:    settings,
		feed:        feedDownloader,
		images:      images,
		reconciler:  NewReconciler(),
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
		eventBuffer: DefaultEventBuffer,
		state:       models.SyncIdle,
	}
}

func (s *clientSyncService) Start(ctx context.Context) (<-chan models.SyncEvent, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}

	runCtx := s.begin(ctx)
	events := make(chan models.SyncEvent, s.eventBuffer)

	go func() {
		defer close(events)
		defer s.finish()

		_ = s.execute(runCtx, newEmitter(events))
	}()

	return events, nil
}

func (s *clientSyncService) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.finish()

	return s.execute(s.begin(ctx), newEmitter(nil))
}

func (s *clientSyncService) begin(ctx context.Context) context.Context {
	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.state = models.SyncIdle
	s.done = make(chan struct{})
	s.mu.Unlock()

	return runCtx
}

func (s *clientSyncService) finish() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	done := s.done
	s.mu.Unlock()

	s.running.Store(false)
	if done != nil {
		close(done)
	}
}

func (s *clientSyncService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until the current run has finished, including the commit of
// its open batch. It returns at once when no sync was ever started.
func (s *clientSyncService) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *clientSyncService) State() models.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *clientSyncService) setState(ctx context.Context, state models.SyncState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("func", "clientSyncService.setState").
		Str("state", state.String()).
		Msg("sync state changed")
}

func (s *clientSyncService) CurrentVersion(ctx context.Context) (string, error) {
	version, err := s.settings.Get(ctx, store.KeywordsVersionKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	return version, err
}

func (s *clientSyncService) HasValidData(ctx context.Context) (bool, error) {
	return s.catalog.TableHasValidData(ctx, store.TableMenus, "id", "label")
}

// execute runs one sync. Every exit path other than cancellation emits
// exactly one terminal event.
func (s *clientSyncService) execute(ctx context.Context, emit *emitter) error {
	ctx = s.logger.WithRunID(ctx, s.ids.Generate())
	log := logger.FromContext(ctx)

	log.Info().Str("func", "clientSyncService.execute").Msg("sync started")

	s.setState(ctx, models.SyncFetching)
	stream, err := s.feed.Fetch(ctx)
	if err != nil {
		return s.fail(ctx, emit, err)
	}
	defer stream.Close()

	batch, err := s.catalog.BeginBatch(ctx)
	if err != nil {
		return s.fail(ctx, emit, err)
	}

	s.setState(ctx, models.SyncParsing)
	summary, err := feed.NewApplier(batch, emit.progress).Apply(ctx, stream)
	if err != nil {
		// whatever was applied stays applied
		if closeErr := batch.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
		return s.fail(ctx, emit, err)
	}

	if err = s.images.Sync(ctx, summary.UpdatedImages, summary.DeletedImages); err != nil {
		log.Warn().Err(err).
			Str("func", "clientSyncService.execute").
			Int("updated", len(summary.UpdatedImages)).
			Int("deleted", len(summary.DeletedImages)).
			Msg("image sync finished with errors")
	}

	s.setState(ctx, models.SyncReconciling)
	if summary.MenusSeen {
		removed, recErr := s.reconciler.Reconcile(ctx, batch, summary.SeenMenuIDs)
		if recErr != nil {
			if closeErr := batch.Close(); closeErr != nil {
				recErr = errors.Join(recErr, closeErr)
			}
			return s.fail(ctx, emit, recErr)
		}
		summary.Deleted += removed
	}

	if err = batch.Close(); err != nil {
		return s.fail(ctx, emit, err)
	}

	if err = s.settings.Set(ctx, store.KeywordsVersionKey, summary.Version); err != nil {
		return s.fail(ctx, emit, fmt.Errorf("store catalog version: %w", err))
	}

	s.setState(ctx, models.SyncCommitted)
	log.Info().
		Str("func", "clientSyncService.execute").
		Str("version", summary.Version).
		Int("added", summary.Added).
		Int("deleted", summary.Deleted).
		Int("skipped", summary.Skipped).
		Msg("sync committed")

	emit.terminal(models.SyncEvent{Kind: models.EventSuccess, Version: summary.Version})
	return nil
}

// fail finishes a run that did not commit. Cancellation is silent.
func (s *clientSyncService) fail(ctx context.Context, emit *emitter, err error) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, adapter.ErrCanceled) {
		s.setState(ctx, models.SyncCanceled)
		log.Info().Str("func", "clientSyncService.fail").Msg("sync canceled")
		return adapter.ErrCanceled
	}

	s.setState(ctx, models.SyncFailed)
	log.Err(err).Str("func", "clientSyncService.fail").Msg("sync failed")

	err = fmt.Errorf("%w: %w", ErrSyncFailed, err)
	emit.terminal(models.SyncEvent{Kind: models.EventError, Err: err})
	return err
}

// emitter delivers events to the caller without ever blocking the sync on a
// progress event. One buffer slot is kept free for the terminal event.
type emitter struct {
	ch chan<- models.SyncEvent
}

func newEmitter(ch chan<- models.SyncEvent) *emitter {
	return &emitter{ch: ch}
}

func (e *emitter) progress(ev models.SyncEvent) {
	if e.ch == nil || len(e.ch) >= cap(e.ch)-1 {
		return
	}
	select {
	case e.ch <- ev:
	default:
	}
}

func (e *emitter) terminal(ev models.SyncEvent) {
	if e.ch == nil {
		return
	}
	e.ch <- ev
}
