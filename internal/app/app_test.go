package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/config"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host/embedded"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/pubsub"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/sourcedialog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/toaster"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/watcher"
)

func newTestModel(t *testing.T) (Model, *embedded.Project, *embedded.Canvas) {
	t.Helper()

	project, err := embedded.OpenProject(filepath.Join(t.TempDir(), "project.yaml"))
	require.NoError(t, err)
	canvas := embedded.NewCanvas()

	cfg := config.Defaults()
	cfg.AutoReload = false

	model := New(Services{
		Engine:  embedded.NewEngine(),
		Project: project,
		Canvas:  canvas,
		Catalog: catalog.Default(),
		Config:  cfg,
		Extent:  geo.Olsztyn(),
	}, nil)
	model.width = 120
	model.height = 40

	return model, project, canvas
}

// collect runs a command tree and returns every message it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collect(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestOpenDialog(t *testing.T) {
	model, _, _ := newTestModel(t)

	model, _ = update(t, model, OpenDialogMsg{})

	assert.True(t, model.dialogOpen)
	assert.Contains(t, model.View(), "Standardowa mapa OSM")
}

func TestAddLayer_EndToEnd(t *testing.T) {
	model, project, canvas := newTestModel(t)

	model, _ = update(t, model, OpenDialogMsg{})
	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	msgs := collect(cmd)
	var added *sourcedialog.AddedMsg
	for _, msg := range msgs {
		if m, ok := msg.(sourcedialog.AddedMsg); ok {
			added = &m
		}
	}
	require.NotNil(t, added, "expected a layer to be added")
	assert.Equal(t, "Standardowa mapa OSM", added.Source.Name)

	require.Equal(t, 1, project.LayerCount())
	assert.Equal(t, []string{"Standardowa mapa OSM"}, project.LayerNames())
	assert.Equal(t, geo.WebMercator, project.CRS())

	assert.Equal(t, geo.Olsztyn(), canvas.Extent())
	assert.Equal(t, geo.WebMercator, canvas.DestinationCRS())
	assert.Equal(t, 1, canvas.Redraws())
}

func TestAddedMsg_ClosesDialog(t *testing.T) {
	model, _, _ := newTestModel(t)

	model, _ = update(t, model, OpenDialogMsg{})
	require.True(t, model.dialogOpen)

	model, _ = update(t, model, sourcedialog.AddedMsg{})
	assert.False(t, model.dialogOpen)
}

func TestEscape_CancelsDialog(t *testing.T) {
	model, _, _ := newTestModel(t)

	model, _ = update(t, model, OpenDialogMsg{})
	model, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyEsc})

	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(sourcedialog.CancelMsg)
	require.True(t, ok)

	model, _ = update(t, model, msgs[0])
	assert.False(t, model.dialogOpen)
}

func TestNotice_ShowsAndDismissesToast(t *testing.T) {
	model, _, _ := newTestModel(t)

	model, cmd := update(t, model, sourcedialog.NoticeMsg{
		Text:  "Dodano warstwę.",
		Style: toaster.StyleSuccess,
	})
	assert.True(t, model.toaster.Visible())
	assert.NotNil(t, cmd)

	model, _ = update(t, model, toaster.DismissMsg{})
	assert.False(t, model.toaster.Visible())
}

func TestOpenDialogKey_NoMenu(t *testing.T) {
	model, _, _ := newTestModel(t)

	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)

	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(OpenDialogMsg)
	assert.True(t, ok)
}

func TestOpenDialogKey_TriggersMenuAction(t *testing.T) {
	model, _, _ := newTestModel(t)

	invoked := false
	menu := NewMenuBar()
	menu.AddMenuAction(host.Action{
		ID:       "test.open",
		Title:    "Otwórz",
		Callback: func() { invoked = true },
	})
	model.menu = menu

	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Nil(t, cmd)
	assert.True(t, invoked)
}

func TestQuitKey(t *testing.T) {
	model, _, _ := newTestModel(t)

	_, cmd := update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWatcherEvent_ReloadsCatalog(t *testing.T) {
	model, _, _ := newTestModel(t)

	sources := filepath.Join(t.TempDir(), "sources.yaml")
	content := `- name: "Mapa testowa"
  url: "https://tiles.example.org/{z}/{x}/{y}.png"
  min_zoom: 0
  max_zoom: 15
  crs: "EPSG:3857"
`
	require.NoError(t, os.WriteFile(sources, []byte(content), 0o644))
	model.services.Config.SourcesFile = sources

	model, _ = update(t, model, pubsub.Event[watcher.Event]{
		Type:    watcher.SourcesChanged,
		Payload: watcher.Event{Path: sources},
	})
	assert.True(t, model.toaster.Visible())

	model, _ = update(t, model, OpenDialogMsg{})
	assert.Contains(t, model.View(), "Mapa testowa")
}

func TestWatcherEvent_ReloadFailure(t *testing.T) {
	model, _, _ := newTestModel(t)

	sources := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(sources, []byte("{not yaml"), 0o644))
	model.services.Config.SourcesFile = sources

	model, _ = update(t, model, pubsub.Event[watcher.Event]{
		Type:    watcher.SourcesChanged,
		Payload: watcher.Event{Path: sources},
	})
	assert.True(t, model.toaster.Visible())

	// The previous catalog stays in effect.
	model, _ = update(t, model, OpenDialogMsg{})
	assert.Contains(t, model.View(), "Standardowa mapa OSM")
}

func TestWorkspaceView(t *testing.T) {
	model, project, _ := newTestModel(t)

	engine := embedded.NewEngine()
	layer, err := engine.NewTileLayer(
		"type=xyz&url=https://tile.openstreetmap.org/{z}/{x}/{y}.png&zmin=0&zmax=19&crs=EPSG:3857",
		"Standardowa mapa OSM")
	require.NoError(t, err)
	require.NoError(t, project.AddMapLayer(layer))
	project.SetCRS(geo.WebMercator)

	view := model.View()
	assert.Contains(t, view, "Geoportal Olsztyn")
	assert.Contains(t, view, "EPSG:3857")
	assert.Contains(t, view, "Standardowa mapa OSM")
}

func TestClose_Persists(t *testing.T) {
	model, _, _ := newTestModel(t)

	persisted := false
	model.services.Persist = func() error {
		persisted = true
		return nil
	}

	require.NoError(t, model.Close())
	assert.True(t, persisted)
}

func TestClose_NoWatcherNoPersist(t *testing.T) {
	model, _, _ := newTestModel(t)
	require.NoError(t, model.Close())
}

func TestMenuBar(t *testing.T) {
	menu := NewMenuBar()

	calls := 0
	menu.AddMenuAction(host.Action{ID: "one", Title: "Pierwsza", Callback: func() { calls++ }})
	menu.AddMenuAction(host.Action{ID: "two", Title: "Druga", Callback: func() {}})
	require.Len(t, menu.Actions(), 2)

	// Replacing by ID keeps position.
	menu.AddMenuAction(host.Action{ID: "one", Title: "Zmieniona", Callback: func() { calls += 10 }})
	actions := menu.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, "Zmieniona", actions[0].Title)

	assert.True(t, menu.Trigger("one"))
	assert.Equal(t, 10, calls)
	assert.False(t, menu.Trigger("missing"))

	menu.RemoveMenuAction("one")
	assert.Len(t, menu.Actions(), 1)
	menu.RemoveMenuAction("missing")
	assert.Len(t, menu.Actions(), 1)

	first, ok := menu.First()
	require.True(t, ok)
	assert.Equal(t, "two", first.ID)
}
