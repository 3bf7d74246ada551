package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-search-keeper/internal/logger"
	"github.com/MKhiriev/go-search-keeper/internal/mock"
	"github.com/MKhiriev/go-search-keeper/internal/store"
	"github.com/MKhiriev/go-search-keeper/models"
)

func newTestDB(t *testing.T) *store.DB {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "catalog.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return db
}

type eventRecorder struct {
	events []models.SyncEvent
}

func (r *eventRecorder) record(e models.SyncEvent) {
	r.events = append(r.events, e)
}

func TestApplier_CropsExample(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	batch, err := db.NewBatch(ctx)
	require.NoError(t, err)

	feed := `{
		"Total": 2,
		"Menus": [{"id": "A", "label": "Crops"}],
		"MenuItems": [{"id": "I1", "menuId": "A", "label": "Maize", "position": 1, "content": "Plant early"}],
		"Version": "7"
	}`

	rec := &eventRecorder{}
	summary, err := NewApplier(batch, rec.record).Apply(ctx, strings.NewReader(feed))
	require.NoError(t, err)
	require.NoError(t, batch.Close())

	assert.Equal(t, "7", summary.Version)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Added)
	assert.True(t, summary.MenusSeen)
	assert.Equal(t, []string{"A"}, summary.SeenMenuIDs)

	assert.Equal(t, []models.SyncEvent{
		{Kind: models.EventNodeCount, NodeCount: 2},
		{Kind: models.EventNode, Node: 1},
		{Kind: models.EventNode, Node: 2},
	}, rec.events)

	repo := store.NewCatalogRepository(db, logger.Nop())
	menus, err := repo.ListMenus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Menu{{ID: "A", Label: "Crops"}}, menus)

	item, err := repo.GetMenuItem(ctx, "I1")
	require.NoError(t, err)
	assert.Equal(t, "A", item.MenuID)
	assert.Equal(t, "Maize", item.Label)
	assert.Equal(t, "Plant early", item.Content)
	require.NotNil(t, item.Position)
	assert.EqualValues(t, 1, *item.Position)
	assert.True(t, item.IsRoot())
}

func TestApplier_MalformedFeeds(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{name: "missing version", feed: `{"Total": 0, "Menus": []}`},
		{name: "missing total", feed: `{"Version": "7"}`},
		{name: "empty version", feed: `{"Total": 0, "Version": ""}`},
		{name: "null version", feed: `{"Total": 0, "Version": null}`},
		{name: "syntax error", feed: `{"Total": 0, "Version": "7",,}`},
		{name: "truncated", feed: `{"Total": 0, "Version": "7", "Menus": [{"id": "A"`},
		{name: "empty body", feed: ``},
		{name: "top-level array", feed: `[{"Total": 0}]`},
		{name: "total is not a number", feed: `{"Total": "many", "Version": "7"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := mock.NewMockCatalogWriter(ctrl)

			_, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(tt.feed))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedFeed)
		})
	}
}

var errLinkDropped = errors.New("link dropped")

type failingReader struct {
	r   io.Reader
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, f.err
	}
	return n, err
}

func TestApplier_ReadErrorIsReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	r := &failingReader{r: strings.NewReader(`{"Total": 3, "Menus": [`), err: errLinkDropped}

	_, err := NewApplier(writer, nil).Apply(context.Background(), r)
	require.ErrorIs(t, err, errLinkDropped)
	assert.NotErrorIs(t, err, ErrMalformedFeed)
}

func TestApplier_SkipsUnknownSectionsAndNestedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	writer.EXPECT().
		UpsertMenu(gomock.Any(), models.Menu{ID: "A", Label: "Crops"}).
		Return(true, nil)

	feed := `{
		"Total": 1,
		"Comments": [{"id": "x", "label": "ignored"}],
		"Meta": {"nested": {"deep": [1, 2, {"a": null}]}},
		"Server": "eu-1",
		"Menus": [
			{"id": "A", "extra": {"x": [1, 2]}, "label": "Crops", "tags": ["a", "b"]}
		],
		"Version": "2026-03-01"
	}`

	summary, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, "2026-03-01", summary.Version)
}

func TestApplier_FirstVersionWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	feed := `{"Version": 7, "Total": 0, "Version": "8"}`

	summary, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
	assert.Equal(t, "7", summary.Version)
}

func TestApplier_TotalEmitsNodeCountOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	rec := &eventRecorder{}
	_, err := NewApplier(writer, rec.record).
		Apply(context.Background(), strings.NewReader(`{"Total": 5, "Total": 9, "Version": "1"}`))
	require.NoError(t, err)

	assert.Equal(t, []models.SyncEvent{{Kind: models.EventNodeCount, NodeCount: 5}}, rec.events)
}

func TestApplier_RecordErrorsAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	gomock.InOrder(
		writer.EXPECT().
			UpsertMenu(gomock.Any(), models.Menu{ID: "A", Label: "Crops"}).
			Return(false, fmt.Errorf("%w: constraint failed", store.ErrExecutingStatement)),
		writer.EXPECT().
			UpsertMenu(gomock.Any(), models.Menu{ID: "B", Label: "Animals"}).
			Return(true, nil),
	)

	feed := `{
		"Total": 4,
		"Menus": [
			{"id": "A", "label": "Crops"},
			{"label": "no id"},
			{"id": "B", "label": "Animals"}
		],
		"MenuItems": [{"id": "I1", "menuId": "B", "label": "Goat", "position": "first"}],
		"Version": "3"
	}`

	rec := &eventRecorder{}
	summary, err := NewApplier(writer, rec.record).Apply(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 3, summary.Skipped)
	assert.Equal(t, []string{"B"}, summary.SeenMenuIDs)
	assert.Equal(t, []models.SyncEvent{
		{Kind: models.EventNodeCount, NodeCount: 4},
		{Kind: models.EventNode, Node: 1},
	}, rec.events)
}

func TestApplier_TransactionErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	writer.EXPECT().
		UpsertMenu(gomock.Any(), gomock.Any()).
		Return(false, fmt.Errorf("%w: disk I/O error", store.ErrCommitingTransaction))

	feed := `{"Total": 2, "Menus": [{"id": "A", "label": "Crops"}, {"id": "B", "label": "Animals"}], "Version": "3"}`

	_, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(feed))
	require.Error(t, err)
	assert.True(t, store.IsTransactionError(err))
}

func TestApplier_DeletionsAndImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	gomock.InOrder(
		writer.EXPECT().Delete(gomock.Any(), store.TableMenuItems, "I7").Return(true, nil),
		writer.EXPECT().Delete(gomock.Any(), store.TableMenuItems, "I8").Return(false, nil),
	)

	feed := `{
		"Version": "9",
		"Total": 0,
		"DeletedMenuItems": [{"id": "I7"}, {"id": "I8"}],
		"Images": [{"id": "img-1"}, {"id": "img-2"}],
		"DeletedImages": [{"id": "img-0"}]
	}`

	summary, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Deleted)
	assert.Equal(t, []string{"img-1", "img-2"}, summary.UpdatedImages)
	assert.Equal(t, []string{"img-0"}, summary.DeletedImages)
	assert.False(t, summary.MenusSeen)
}

func TestApplier_MenuItemFieldMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mock.NewMockCatalogWriter(ctrl)

	parent := "I1"
	attachment := "img-3"
	position := int64(4)

	writer.EXPECT().
		UpsertMenuItem(gomock.Any(), models.MenuItem{
			ID:           "I2",
			Label:        "Planting",
			MenuID:       "A",
			ParentID:     &parent,
			Position:     &position,
			Content:      "",
			AttachmentID: &attachment,
		}).
		Return(true, nil)

	feed := `{
		"Total": 1,
		"MenuItems": [{
			"id": "I2", "label": "Planting", "menu_id": "A", "parent_id": "I1",
			"position": "4", "content": null, "attachmentId": "img-3", "rank": 10
		}],
		"Version": "9"
	}`

	_, err := NewApplier(writer, nil).Apply(context.Background(), strings.NewReader(feed))
	require.NoError(t, err)
}
