package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-search-keeper/models"
)

func strPtr(s string) *string { return &s }

func testCatalog() *fakeCatalogService {
	return &fakeCatalogService{
		menus: []models.Menu{{ID: "A", Label: "Crops"}},
		children: map[string][]models.MenuItem{
			"A/":   {{ID: "I1", MenuID: "A", Label: "Maize"}},
			"A/I1": {{ID: "I3", MenuID: "A", Label: "Planting", ParentID: strPtr("I1"), Content: "Plant early"}},
		},
		results: []models.MenuItem{{ID: "I1", MenuID: "A", Label: "Maize", Content: "Grain"}},
	}
}

// step feeds msg to m and then the message its command produces.
func step(m *browseModel, msg any) {
	_, cmd := m.Update(msg)
	if next := run(cmd); next != nil {
		m.Update(next)
	}
}

func TestBrowseModel_WalksTreeToDetail(t *testing.T) {
	m := newBrowseModel(context.Background(), testCatalog())
	m.Update(run(m.Init()))
	require.Len(t, m.menus, 1)

	step(m, keyMsg("enter"))
	require.NotNil(t, m.menu)
	assert.Equal(t, "Maize", m.items[0].Label)

	step(m, keyMsg("enter"))
	assert.Equal(t, []string{"I1"}, pathIDs(m.path))
	assert.Equal(t, "Planting", m.items[0].Label)
	assert.Contains(t, m.View(), "Crops › Maize")

	// a leaf opens as detail
	step(m, keyMsg("enter"))
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "Plant early")

	step(m, keyMsg("esc"))
	assert.Nil(t, m.detail)

	step(m, keyMsg("esc"))
	assert.Empty(t, m.path)
	assert.Equal(t, "Maize", m.items[0].Label)

	step(m, keyMsg("esc"))
	assert.Nil(t, m.menu)

	_, cmd := m.Update(keyMsg("esc"))
	assert.Equal(t, NavigateTo{Page: pageMenu}, run(cmd))
}

func pathIDs(items []models.MenuItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestSearchModel_SearchesAndOpensResult(t *testing.T) {
	catalog := testCatalog()
	m := newSearchModel(context.Background(), catalog)
	m.Init()

	m.inputs[searchFieldKeyword].SetValue("maize")
	_, cmd := m.Update(keyMsg("enter"))
	require.True(t, m.searching)
	m.Update(run(cmd))

	assert.Equal(t, []string{"maize"}, catalog.searched)
	require.Len(t, m.results, 1)
	assert.Contains(t, m.View(), "Maize")

	m.Update(keyMsg("enter"))
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "Grain")

	m.Update(keyMsg("esc"))
	assert.Nil(t, m.detail)
}

func TestSearchModel_NothingFound(t *testing.T) {
	catalog := &fakeCatalogService{}
	m := newSearchModel(context.Background(), catalog)
	m.Init()

	m.inputs[searchFieldKeyword].SetValue("rice")
	_, cmd := m.Update(keyMsg("enter"))
	m.Update(run(cmd))

	assert.Contains(t, m.View(), `Nothing found for "rice"`)
}
