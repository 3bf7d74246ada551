package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
)

// menuReconciler deletes stale menus. Items are never reconciled: they only
// disappear through explicit tombstones or with their menu.
type menuReconciler struct{}

// NewReconciler returns the default [Reconciler].
func NewReconciler() Reconciler {
	return menuReconciler{}
}

// Reconcile computes existing minus seen and deletes the difference through
// w, so the removal lands in the same batch as the feed it follows.
func (menuReconciler) Reconcile(ctx context.Context, w store.CatalogWriter, seenMenuIDs []string) (int, error) {
	log := logger.FromContext(ctx)

	existing, err := w.MenuIDs(ctx)
	if err != nil {
		log.Err(err).Str("func", "menuReconciler.Reconcile").Msg("failed to list local menus")
		return 0, fmt.Errorf("list local menus: %w", err)
	}

	seen := make(map[string]struct{}, len(seenMenuIDs))
	for _, id := range seenMenuIDs {
		seen[id] = struct{}{}
	}

	removed := 0
	for _, id := range existing {
		if _, ok := seen[id]; ok {
			continue
		}

		if _, err = w.Delete(ctx, store.TableMenus, id); err != nil {
			if store.IsTransactionError(err) {
				return removed, err
			}
			log.Warn().Err(err).
				Str("func", "menuReconciler.Reconcile").
				Str("menu_id", id).
				Msg("failed to delete stale menu")
			continue
		}

		// items go explicitly as well as through the cascade
		if _, err = w.DeleteMenuItemsByMenu(ctx, id); err != nil {
			if store.IsTransactionError(err) {
				return removed, err
			}
			log.Warn().Err(err).
				Str("func", "menuReconciler.Reconcile").
				Str("menu_id", id).
				Msg("failed to delete items of stale menu")
		}

		removed++
	}

	log.Debug().
		Str("func", "menuReconciler.Reconcile").
		Int("existing", len(existing)).
		Int("seen", len(seen)).
		Int("removed", removed).
		Msg("menus reconciled")

	return removed, nil
}
