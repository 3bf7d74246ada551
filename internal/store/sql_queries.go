// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-search-keeper/models"
)

// Table and column names of the catalog schema.
const (
	TableMenus      = "menus"
	TableMenuItems  = "menu_items"
	TableAccessLogs = "access_logs"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// validColumns is the whitelist consulted before any identifier is
// interpolated into SQL text.
var validColumns = map[string]map[string]bool{
	TableMenus: {
		"id":    true,
		"label": true,
	},
	TableMenuItems: {
		"id":            true,
		"label":         true,
		"menu_id":       true,
		"parent_id":     true,
		"position":      true,
		"content":       true,
		"attachment_id": true,
	},
}

var menuItemColumns = []string{"id", "label", "menu_id", "parent_id", "position", "content", "attachment_id"}

// upsert never goes through DELETE, so replacing a menu keeps its items.
func buildUpsertMenuQuery(menu models.Menu) (string, []any, error) {
	return psql.Insert(TableMenus).
		Columns("id", "label").
		Values(menu.ID, menu.Label).
		Suffix("ON CONFLICT(id) DO UPDATE SET label = excluded.label").
		ToSql()
}

func buildUpsertMenuItemQuery(item models.MenuItem) (string, []any, error) {
	return psql.Insert(TableMenuItems).
		Columns(menuItemColumns...).
		Values(item.ID, item.Label, nullIfEmpty(item.MenuID), item.ParentID, item.Position, item.Content, item.AttachmentID).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			menu_id = excluded.menu_id,
			parent_id = excluded.parent_id,
			position = excluded.position,
			content = excluded.content,
			attachment_id = excluded.attachment_id`).
		ToSql()
}

func buildDeleteByIDQuery(table, id string) (string, []any, error) {
	if _, ok := validColumns[table]; !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteMenuItemsByMenuQuery(menuID string) (string, []any, error) {
	return psql.Delete(TableMenuItems).Where(sq.Eq{"menu_id": menuID}).ToSql()
}

func buildSelectMenuIDsQuery() (string, []any, error) {
	return psql.Select("id").From(TableMenus).OrderBy("id").ToSql()
}

func buildListMenusQuery() (string, []any, error) {
	return psql.Select("id", "label").From(TableMenus).OrderBy("label", "id").ToSql()
}

// buildListMenuItemsQuery selects the children of parentID inside menuID.
// An empty parentID selects the root items of the menu.
func buildListMenuItemsQuery(menuID, parentID string) (string, []any, error) {
	builder := psql.Select(menuItemColumns...).
		From(TableMenuItems).
		Where(sq.Eq{"menu_id": menuID})

	if parentID == "" {
		builder = builder.Where(sq.Eq{"parent_id": nil})
	} else {
		builder = builder.Where(sq.Eq{"parent_id": parentID})
	}

	return builder.OrderBy("position IS NULL", "position", "label").ToSql()
}

func buildGetMenuItemQuery(id string) (string, []any, error) {
	return psql.Select(menuItemColumns...).
		From(TableMenuItems).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSearchMenuItemsQuery(keyword string, limit uint64) (string, []any, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	builder := psql.Select(menuItemColumns...).
		From(TableMenuItems).
		Where(sq.Or{
			sq.Expr(`label LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`content LIKE ? ESCAPE '\'`, pattern),
		}).
		OrderBy("label", "id")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

// buildTableHasValidDataQuery checks both identifiers against the schema
// whitelist before they reach the query text.
func buildTableHasValidDataQuery(table, idColumn, labelColumn string) (string, []any, error) {
	columns, ok := validColumns[table]
	if !ok || !columns[idColumn] || !columns[labelColumn] {
		return "", nil, fmt.Errorf("%w: %s(%s, %s)", ErrUnknownTable, table, idColumn, labelColumn)
	}

	return psql.Select(idColumn).
		From(table).
		Where(sq.NotEq{labelColumn: nil}).
		Limit(1).
		ToSql()
}

func buildInsertUsageLogQuery(log models.UsageLog) (string, []any, error) {
	return psql.Insert(TableAccessLogs).
		Columns("submit_time", "interviewee_id", "keyword").
		Values(log.SubmitTime.UTC(), log.IntervieweeID, log.Keyword).
		ToSql()
}

func buildOldestUsageLogQuery() (string, []any, error) {
	return psql.Select("id", "submit_time", "interviewee_id", "keyword").
		From(TableAccessLogs).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func buildDeleteUsageLogQuery(id int64) (string, []any, error) {
	return psql.Delete(TableAccessLogs).Where(sq.Eq{"id": id}).ToSql()
}

func buildCountUsageLogsQuery() (string, []any, error) {
	return psql.Select("COUNT(*)").From(TableAccessLogs).ToSql()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
