package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/models"
)

// catalogRepository is the SQLite-backed implementation of
// [CatalogRepository].
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] over db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

// BeginBatch opens a write [Batch] on the catalog.
func (c *catalogRepository) BeginBatch(ctx context.Context) (CatalogWriter, error) {
	batch, err := c.DB.NewBatch(ctx)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// TableHasValidData reports whether table holds at least one row whose
// labelColumn is not NULL.
func (c *catalogRepository) TableHasValidData(ctx context.Context, table, idColumn, labelColumn string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTableHasValidDataQuery(table, idColumn, labelColumn)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.TableHasValidData").
			Str("table", table).
			Msg("failed to create query")
		return false, err
	}

	var id sql.NullString
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.TableHasValidData").
			Str("table", table).
			Msg("failed to probe table")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// ListMenus returns every menu ordered by label.
func (c *catalogRepository) ListMenus(ctx context.Context) ([]models.Menu, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMenusQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ListMenus").
			Msg("failed to execute query for listing menus")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	menus := make([]models.Menu, 0, 16)
	for rows.Next() {
		var menu models.Menu
		if scanErr := rows.Scan(&menu.ID, &menu.Label); scanErr != nil {
			log.Err(scanErr).
				Str("func", "catalogRepository.ListMenus").
				Msg("failed to scan menu row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		menus = append(menus, menu)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return menus, nil
}

// ListMenuItems returns the children of parentID within menuID ordered by
// position. An empty parentID lists the root items.
func (c *catalogRepository) ListMenuItems(ctx context.Context, menuID, parentID string) ([]models.MenuItem, error) {
	query, args, err := buildListMenuItemsQuery(menuID, parentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := c.queryMenuItems(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.ListMenuItems").
			Str("menu_id", menuID).
			Str("parent_id", parentID).
			Msg("failed to list menu items")
		return nil, err
	}

	return items, nil
}

// GetMenuItem returns a single item by id or [ErrMenuItemNotFound].
func (c *catalogRepository) GetMenuItem(ctx context.Context, id string) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMenuItemQuery(id)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanMenuItem(c.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MenuItem{}, ErrMenuItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetMenuItem").
			Str("item_id", id).
			Msg("failed to get menu item")
		return models.MenuItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// SearchMenuItems returns items whose label or content contains keyword.
// A zero limit returns every match.
func (c *catalogRepository) SearchMenuItems(ctx context.Context, keyword string, limit uint64) ([]models.MenuItem, error) {
	query, args, err := buildSearchMenuItemsQuery(keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := c.queryMenuItems(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.SearchMenuItems").
			Str("keyword", keyword).
			Msg("failed to search menu items")
		return nil, err
	}

	return items, nil
}

func (c *catalogRepository) queryMenuItems(ctx context.Context, query string, args []any) ([]models.MenuItem, error) {
	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0, 32)
	for rows.Next() {
		item, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var (
		item         models.MenuItem
		menuID       sql.NullString
		parentID     sql.NullString
		position     sql.NullInt64
		content      sql.NullString
		attachmentID sql.NullString
	)

	err := row.Scan(&item.ID, &item.Label, &menuID, &parentID, &position, &content, &attachmentID)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.MenuID = menuID.String
	if parentID.Valid {
		item.ParentID = &parentID.String
	}
	if position.Valid {
		item.Position = &position.Int64
	}
	item.Content = content.String
	if attachmentID.Valid {
		item.AttachmentID = &attachmentID.String
	}

	return item, nil
}
