package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

// DefaultSearchLimit caps searches that do not pass their own limit.
const DefaultSearchLimit = 50

type clientCatalogService struct {
	catalog store.CatalogRepository
	usage   ClientUsageService
}

func NewClientCatalogService(catalog store.CatalogRepository, usage ClientUsageService) ClientCatalogService {
	return &clientCatalogService{catalog: catalog, usage: usage}
}

func (c *clientCatalogService) Menus(ctx context.Context) ([]models.Menu, error) {
	return c.catalog.ListMenus(ctx)
}

func (c *clientCatalogService) Children(ctx context.Context, menuID, parentID string) ([]models.MenuItem, error) {
	return c.catalog.ListMenuItems(ctx, menuID, parentID)
}

func (c *clientCatalogService) Item(ctx context.Context, id string) (models.MenuItem, error) {
	return c.catalog.GetMenuItem(ctx, id)
}

// Search never fails because of usage logging; a failed Record is only logged.
func (c *clientCatalogService) Search(ctx context.Context, intervieweeID, keyword string, limit uint64) ([]models.MenuItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	items, err := c.catalog.SearchMenuItems(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}

	if c.usage != nil {
		if err = c.usage.Record(ctx, intervieweeID, keyword); err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "clientCatalogService.Search").
				Msg("failed to record usage log")
		}
	}

	return items, nil
}
