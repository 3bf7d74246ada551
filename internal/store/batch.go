package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

// DefaultBatchThreshold is the number of writes after which a [Batch]
// commits its transaction and begins a new one.
const DefaultBatchThreshold = 200

// Batch groups catalog writes into transactions of bounded size.
//
// Every write, including one the database rejects, increments a counter.
// Once the counter exceeds the threshold the open transaction is committed,
// a new one begins and the counter is reset. Close commits whatever is
// pending; a Batch never rolls back, so the store always reflects every
// record applied so far.
//
// A Batch is owned by a single goroutine and is not safe for concurrent use.
type Batch struct {
	db        *DB
	tx        *sql.Tx
	threshold int
	count     int
	commits   int

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// NewBatch opens a new [Batch] with the default threshold.
func (db *DB) NewBatch(ctx context.Context) (*Batch, error) {
	return db.NewBatchWithThreshold(ctx, DefaultBatchThreshold)
}

// NewBatchWithThreshold opens a new [Batch] that commits after more than
// threshold writes.
func (db *DB) NewBatchWithThreshold(ctx context.Context, threshold int) (*Batch, error) {
	if threshold <= 0 {
		threshold = DefaultBatchThreshold
	}

	b := &Batch{db: db, threshold: threshold}
	if err := b.begin(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// begin detaches the transaction from ctx cancellation: database/sql rolls
// back a transaction whose context is canceled, and a Batch never rolls back.
func (b *Batch) begin(ctx context.Context) error {
	tx, err := b.db.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.begin").
			Msg("failed to begin catalog transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	b.tx = tx
	b.count = 0
	return nil
}

func (b *Batch) commit(ctx context.Context) error {
	tx := b.tx
	b.tx = nil
	if err := tx.Commit(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.commit").
			Int("writes", b.count).
			Msg("failed to commit catalog transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	b.commits++
	return nil
}

// exec runs one write statement inside the open transaction and rolls the
// transaction over when the threshold is crossed.
func (b *Batch) exec(ctx context.Context, query string, args []any) (sql.Result, error) {
	if b.closed {
		return nil, ErrBatchClosed
	}
	if b.tx == nil {
		if err := b.begin(ctx); err != nil {
			return nil, err
		}
	}

	// a failed statement still counts toward the threshold; SQLite only
	// rolls back the statement, not the transaction
	res, execErr := b.tx.ExecContext(context.WithoutCancel(ctx), query, args...)
	if execErr != nil {
		execErr = fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	b.count++
	if b.count > b.threshold {
		if err := b.commit(ctx); err != nil {
			return res, err
		}
		if err := b.begin(ctx); err != nil {
			return res, err
		}
	}

	return res, execErr
}

func affected(res sql.Result) bool {
	n, err := res.RowsAffected()
	return err == nil && n > 0
}

// UpsertMenu inserts menu or replaces the label of an existing one.
func (b *Batch) UpsertMenu(ctx context.Context, menu models.Menu) (bool, error) {
	if menu.ID == "" {
		return false, ErrMissingID
	}

	query, args, err := buildUpsertMenuQuery(menu)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.exec(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.UpsertMenu").
			Str("menu_id", menu.ID).
			Msg("failed to upsert menu")
		return false, err
	}
	return affected(res), nil
}

// UpsertMenuItem inserts item or replaces every column of an existing one.
func (b *Batch) UpsertMenuItem(ctx context.Context, item models.MenuItem) (bool, error) {
	if item.ID == "" {
		return false, ErrMissingID
	}

	query, args, err := buildUpsertMenuItemQuery(item)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.exec(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.UpsertMenuItem").
			Str("item_id", item.ID).
			Str("menu_id", item.MenuID).
			Msg("failed to upsert menu item")
		return false, err
	}
	return affected(res), nil
}

// Delete removes the row with the given id from table. Foreign keys cascade
// the deletion to dependent rows. It reports whether a row was removed.
func (b *Batch) Delete(ctx context.Context, table, id string) (bool, error) {
	query, args, err := buildDeleteByIDQuery(table, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.exec(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.Delete").
			Str("table", table).
			Str("id", id).
			Msg("failed to delete row")
		return false, err
	}
	return affected(res), nil
}

// DeleteMenuItemsByMenu removes every item belonging to menuID and returns
// the number of removed rows.
func (b *Batch) DeleteMenuItemsByMenu(ctx context.Context, menuID string) (int64, error) {
	query, args, err := buildDeleteMenuItemsByMenuQuery(menuID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := b.exec(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.DeleteMenuItemsByMenu").
			Str("menu_id", menuID).
			Msg("failed to delete menu items")
		return 0, err
	}

	n, _ := res.RowsAffected()
	return n, nil
}

// MenuIDs lists the ids of all menus as seen from inside the open
// transaction, so uncommitted upserts are included.
func (b *Batch) MenuIDs(ctx context.Context) ([]string, error) {
	if b.closed {
		return nil, ErrBatchClosed
	}
	if b.tx == nil {
		if err := b.begin(ctx); err != nil {
			return nil, err
		}
	}

	query, args, err := buildSelectMenuIDsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.tx.QueryContext(context.WithoutCancel(ctx), query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Batch.MenuIDs").
			Msg("failed to query menu ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// Commits returns how many transactions the batch has committed so far.
func (b *Batch) Commits() int {
	return b.commits
}

// Pending returns the number of writes in the open transaction.
func (b *Batch) Pending() int {
	return b.count
}

// Close commits the open transaction. Calling Close more than once returns
// the result of the first call.
func (b *Batch) Close() error {
	b.closeOnce.Do(func() {
		b.closed = true
		if b.tx == nil {
			return
		}
		b.closeErr = b.commit(context.Background())
	})
	return b.closeErr
}
