// Package feed applies a catalog feed to the local store while it is being
// read. The document is consumed token by token and never held in memory:
// every record is written through a [store.CatalogWriter] as soon as its
// closing brace is seen.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

// ProgressFunc receives nodeCount and node events. It must not block.
type ProgressFunc func(models.SyncEvent)

// Applier is a single-use state machine that streams one feed into a
// [store.CatalogWriter].
type Applier struct {
	writer   store.CatalogWriter
	progress ProgressFunc

	state      state
	recordType models.RecordType
	fieldKey   string
	current    *models.FeedRecord

	seenMenus map[string]struct{}
	summary   models.FeedSummary
}

// NewApplier returns an Applier writing through w. progress may be nil.
func NewApplier(w store.CatalogWriter, progress ProgressFunc) *Applier {
	if progress == nil {
		progress = func(models.SyncEvent) {}
	}

	return &Applier{
		writer:    w,
		progress:  progress,
		state:     stateIdle,
		seenMenus: make(map[string]struct{}),
	}
}

// Apply reads the feed from r and applies each record in document order.
//
// The returned summary is filled even when an error is returned, so callers
// can still hand collected image ids to their collaborators. Errors:
//   - [ErrMalformedFeed] for invalid JSON, a non-object document or a feed
//     missing its Total or a non-empty Version;
//   - transaction errors from the writer, which make the writer unusable;
//   - any other read error from r, returned unchanged.
func (a *Applier) Apply(ctx context.Context, r io.Reader) (models.FeedSummary, error) {
	log := logger.FromContext(ctx)

	dec := json.NewDecoder(r)
	dec.UseNumber()

	for a.state != stateDone {
		tok, err := dec.Token()
		if err != nil {
			err = classifyReadError(err)
			log.Err(err).
				Str("func", "Applier.Apply").
				Str("state", a.state.String()).
				Msg("feed stream ended early")
			return a.finish(), err
		}

		if err = a.step(ctx, dec, tok); err != nil {
			log.Err(err).
				Str("func", "Applier.Apply").
				Str("state", a.state.String()).
				Str("record_type", string(a.recordType)).
				Msg("failed to apply feed")
			return a.finish(), err
		}
	}

	summary := a.finish()
	if !summary.VersionFound || !summary.TotalFound || summary.Version == "" {
		err := fmt.Errorf("%w: version=%q (found=%t), total found=%t",
			ErrMalformedFeed, summary.Version, summary.VersionFound, summary.TotalFound)
		log.Err(err).
			Str("func", "Applier.Apply").
			Msg("feed is incomplete")
		return summary, err
	}

	log.Info().
		Str("func", "Applier.Apply").
		Str("version", summary.Version).
		Int("total", summary.Total).
		Int("added", summary.Added).
		Int("deleted", summary.Deleted).
		Int("skipped", summary.Skipped).
		Msg("feed applied")

	return summary, nil
}

func (a *Applier) finish() models.FeedSummary {
	a.summary.SeenMenuIDs = make([]string, 0, len(a.seenMenus))
	for id := range a.seenMenus {
		a.summary.SeenMenuIDs = append(a.summary.SeenMenuIDs, id)
	}
	return a.summary
}

// step advances the state machine by one token.
func (a *Applier) step(ctx context.Context, dec *json.Decoder, tok json.Token) error {
	switch a.state {
	case stateIdle:
		if tok != json.Delim('{') {
			return fmt.Errorf("%w: document is not an object", ErrMalformedFeed)
		}
		a.state = stateAwaitingKey

	case stateAwaitingKey:
		if tok == json.Delim('}') {
			a.state = stateDone
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrMalformedFeed, tok)
		}
		return a.topLevelValue(ctx, dec, models.RecordType(key))

	case stateInRecordArray:
		switch tok {
		case json.Delim(']'):
			a.state = stateAwaitingKey
			a.recordType = ""
		case json.Delim('{'):
			a.current = &models.FeedRecord{Type: a.recordType, Fields: make(map[string]string)}
			a.state = stateInRecord
		case json.Delim('['):
			return skipValue(dec)
		}

	case stateInRecord:
		if tok == json.Delim('}') {
			rec := *a.current
			a.current = nil
			a.state = stateInRecordArray
			return a.dispatch(ctx, rec)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrMalformedFeed, tok)
		}
		a.fieldKey = key
		a.state = stateInRecordField

	case stateInRecordField:
		a.state = stateInRecord
		if delim, ok := tok.(json.Delim); ok {
			// nested values carry nothing a flat record can hold
			if delim == '{' || delim == '[' {
				return skipValue(dec)
			}
			return fmt.Errorf("%w: unexpected %v", ErrMalformedFeed, delim)
		}
		a.current.Fields[a.fieldKey] = scalarString(tok)
	}

	return nil
}

// topLevelValue consumes the value of a top-level key.
func (a *Applier) topLevelValue(ctx context.Context, dec *json.Decoder, key models.RecordType) error {
	tok, err := dec.Token()
	if err != nil {
		return classifyReadError(err)
	}

	if delim, ok := tok.(json.Delim); ok {
		if delim == '[' && isRecordArray(key) {
			a.recordType = key
			a.state = stateInRecordArray
			if key == models.RecordMenus {
				a.summary.MenusSeen = true
			}
			return nil
		}
		if delim == '[' || delim == '{' {
			logger.FromContext(ctx).Debug().
				Str("func", "Applier.topLevelValue").
				Str("key", string(key)).
				Msg("skipping unknown feed section")
			return skipValue(dec)
		}
		return fmt.Errorf("%w: unexpected %v", ErrMalformedFeed, delim)
	}

	switch key {
	case models.RecordVersion:
		if !a.summary.VersionFound {
			a.summary.VersionFound = true
			a.summary.Version = scalarString(tok)
		}
	case models.RecordTotal:
		if a.summary.TotalFound {
			return nil
		}
		total, err := strconv.Atoi(strings.TrimSpace(scalarString(tok)))
		if err != nil {
			return fmt.Errorf("%w: Total %v is not an integer", ErrMalformedFeed, tok)
		}
		a.summary.Total = total
		a.summary.TotalFound = true
		a.progress(models.SyncEvent{Kind: models.EventNodeCount, NodeCount: total})
	}

	return nil
}

// dispatch writes one completed record.
func (a *Applier) dispatch(ctx context.Context, rec models.FeedRecord) error {
	var err error

	switch rec.Type {
	case models.RecordMenus:
		var menu models.Menu
		if menu, err = menuFromRecord(rec); err == nil {
			if _, err = a.writer.UpsertMenu(ctx, menu); err == nil {
				a.seenMenus[menu.ID] = struct{}{}
				a.applied()
			}
		}

	case models.RecordMenuItems:
		var item models.MenuItem
		if item, err = menuItemFromRecord(rec); err == nil {
			if _, err = a.writer.UpsertMenuItem(ctx, item); err == nil {
				a.applied()
			}
		}

	case models.RecordDeletedMenuItems:
		if rec.ID() == "" {
			err = fmt.Errorf("%w: %s record without id", ErrInvalidRecord, rec.Type)
		} else if _, err = a.writer.Delete(ctx, store.TableMenuItems, rec.ID()); err == nil {
			a.summary.Deleted++
		}

	case models.RecordImages:
		if id := rec.ID(); id != "" {
			a.summary.UpdatedImages = append(a.summary.UpdatedImages, id)
		}

	case models.RecordDeletedImages:
		if id := rec.ID(); id != "" {
			a.summary.DeletedImages = append(a.summary.DeletedImages, id)
		}
	}

	if err == nil {
		return nil
	}
	if store.IsTransactionError(err) {
		return err
	}

	a.summary.Skipped++
	logger.FromContext(ctx).Warn().
		Err(fmt.Errorf("%w: %w", ErrRecordApply, err)).
		Str("func", "Applier.dispatch").
		Str("record_type", string(rec.Type)).
		Str("id", rec.ID()).
		Msg("skipping feed record")

	return nil
}

func (a *Applier) applied() {
	a.summary.Added++
	a.progress(models.SyncEvent{Kind: models.EventNode, Node: a.summary.Added})
}

func isRecordArray(t models.RecordType) bool {
	switch t {
	case models.RecordMenus,
		models.RecordMenuItems,
		models.RecordDeletedMenuItems,
		models.RecordImages,
		models.RecordDeletedImages:
		return true
	}
	return false
}

// scalarString renders a scalar token the way it appeared in the feed.
// null becomes the empty string.
func scalarString(tok json.Token) string {
	switch v := tok.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// skipValue consumes tokens until the container whose opening delimiter was
// just read is closed.
func skipValue(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return classifyReadError(err)
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
	}
	return nil
}

// classifyReadError maps decoder failures to ErrMalformedFeed and leaves
// errors that came from the underlying reader untouched. The decoder reports
// a truncated document with the bare io.EOF / io.ErrUnexpectedEOF values;
// a reader error that merely wraps them is an I/O failure.
func classifyReadError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || err == io.ErrUnexpectedEOF || err == io.EOF {
		return fmt.Errorf("%w: %w", ErrMalformedFeed, err)
	}
	return err
}
