// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/config"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/keys"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/pubsub"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/sourcedialog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/styles"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/toaster"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/watcher"
)

// OpenDialogMsg opens the source selection dialog. The plugin shell's
// menu action sends it through the program.
type OpenDialogMsg struct{}

// Services contains shared dependencies injected into the app.
type Services struct {
	Engine  host.RasterEngine
	Project host.Project
	Canvas  host.Canvas
	Catalog *catalog.Catalog
	Config  config.Config
	Extent  geo.Extent

	// Persist saves the host project document; called on quit.
	Persist func() error
}

// Optional capability upgrades the workspace view uses when the host
// supports them (the embedded host does).
type layerLister interface {
	LayerNames() []string
}

type viewStater interface {
	DestinationCRS() string
	Extent() geo.Extent
	Redraws() int
}

// Model is the root application state.
type Model struct {
	services Services
	keys     keys.KeyMap
	menu     *MenuBar

	width  int
	height int

	dialog     sourcedialog.Model
	dialogOpen bool

	toaster toaster.Model

	watcherHandle   *watcher.Watcher
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Event]
}

// New creates the application model. The sources-file watcher starts
// only when auto reload is on and a sources file is configured.
func New(services Services, menu *MenuBar) Model {
	var (
		watcherHandle   *watcher.Watcher
		watcherCtx      context.Context
		watcherCancel   context.CancelFunc
		watcherListener *pubsub.ContinuousListener[watcher.Event]
	)

	if services.Config.AutoReload && services.Config.SourcesFile != "" {
		w, err := watcher.New(watcher.DefaultConfig(services.Config.SourcesFile))
		if err == nil {
			watcherCtx, watcherCancel = context.WithCancel(context.Background())
			watcherListener = pubsub.NewContinuousListener(watcherCtx, w.Broker())
			if err := w.Start(); err == nil {
				watcherHandle = w
			} else {
				watcherCancel()
				watcherHandle = nil
				watcherListener = nil
				_ = w.Stop()
			}
		}
		// The app works fine without auto-reload; init errors are not fatal.
	}

	return Model{
		services:        services,
		keys:            keys.DefaultKeyMap(),
		menu:            menu,
		toaster:         toaster.New(),
		watcherHandle:   watcherHandle,
		watcherCtx:      watcherCtx,
		watcherCancel:   watcherCancel,
		watcherListener: watcherListener,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcherListener != nil {
		return m.watcherListener.Listen()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		if m.dialogOpen {
			m.dialog = m.dialog.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case OpenDialogMsg:
		m.dialogOpen = true
		m.dialog = sourcedialog.New(
			m.services.Catalog,
			m.services.Extent,
			m.services.Engine,
			m.services.Project,
			m.services.Canvas,
		).SetSize(m.width, m.height)
		log.Debug(log.CatUI, "Source dialog opened")
		return m, nil

	case sourcedialog.AddedMsg:
		m.dialogOpen = false
		return m, nil

	case sourcedialog.CancelMsg:
		m.dialogOpen = false
		return m, nil

	case sourcedialog.NoticeMsg:
		m.toaster = m.toaster.Show(msg.Text, msg.Style)
		return m, toaster.ScheduleDismiss(4 * time.Second)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case pubsub.Event[watcher.Event]:
		return m.handleWatcherEvent(msg)

	case tea.KeyMsg:
		if m.dialogOpen {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.OpenDialog):
			return m, m.triggerMenuAction()
		}
	}

	return m, nil
}

// triggerMenuAction invokes the plugin shell's registered entry point,
// falling back to opening the dialog directly when nothing registered.
func (m Model) triggerMenuAction() tea.Cmd {
	if m.menu != nil {
		if action, ok := m.menu.First(); ok {
			action.Callback()
			return nil
		}
	}
	return func() tea.Msg { return OpenDialogMsg{} }
}

func (m Model) handleWatcherEvent(event pubsub.Event[watcher.Event]) (tea.Model, tea.Cmd) {
	listen := tea.Cmd(nil)
	if m.watcherListener != nil {
		listen = m.watcherListener.Listen()
	}

	switch event.Type {
	case watcher.SourcesChanged:
		reloaded, err := catalog.LoadOrDefault(m.services.Config.SourcesFile)
		if err != nil {
			log.ErrorErr(log.CatCatalog, "Catalog reload failed", err)
			m.toaster = m.toaster.Show(
				fmt.Sprintf("Nie udało się wczytać źródeł map: %v", err), toaster.StyleError)
			return m, tea.Batch(listen, toaster.ScheduleDismiss(4*time.Second))
		}

		m.services.Catalog = reloaded
		log.Info(log.CatCatalog, "Catalog reloaded", "sources", reloaded.Len())
		m.toaster = m.toaster.Show("Zaktualizowano listę źródeł map.", toaster.StyleInfo)
		return m, tea.Batch(listen, toaster.ScheduleDismiss(4*time.Second))

	case watcher.WatchError:
		log.Warn(log.CatWatcher, "Watcher error", "error", event.Payload.Err)
		return m, listen
	}

	return m, listen
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.viewWorkspace()

	if m.dialogOpen {
		view = m.dialog.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return view
}

// viewWorkspace renders the project summary screen behind the dialog.
func (m Model) viewWorkspace() string {
	var b strings.Builder

	b.WriteString(styles.SectionTitleStyle.Render("Geoportal Olsztyn"))
	b.WriteString("\n\n")

	crs := m.services.Project.CRS()
	if crs == "" {
		crs = "(nie ustawiono)"
	}
	b.WriteString(fmt.Sprintf("Projekt: %s\n", m.services.Config.ProjectFile))
	b.WriteString(fmt.Sprintf("CRS projektu: %s\n", crs))

	if lister, ok := m.services.Project.(layerLister); ok {
		names := lister.LayerNames()
		b.WriteString(fmt.Sprintf("Warstwy (%d):\n", len(names)))
		for _, name := range names {
			b.WriteString("  • " + name + "\n")
		}
	}

	if state, ok := m.services.Canvas.(viewStater); ok && !state.Extent().IsZero() {
		b.WriteString(fmt.Sprintf("Widok: %s (%s)\n", state.Extent(), state.DestinationCRS()))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("a: dodaj warstwę OSM • q: wyjście"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Close releases resources and persists the project document.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	if m.services.Persist != nil {
		if err := m.services.Persist(); err != nil {
			return fmt.Errorf("saving project: %w", err)
		}
	}
	return nil
}
