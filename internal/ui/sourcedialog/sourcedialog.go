// Package sourcedialog provides the modal dialog for picking a tile
// source from the catalog and adding it to the host project.
package sourcedialog

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/geo"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/overlay"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/styles"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/ui/toaster"
)

const boxWidth = 56

// AddedMsg is sent after a layer was constructed, registered and the
// view was moved; the dialog should be closed.
type AddedMsg struct {
	Source catalog.TileSource
	Layer  host.Layer
}

// CancelMsg is sent when the user dismisses the dialog.
type CancelMsg struct{}

// NoticeMsg asks the shell to show a toast.
type NoticeMsg struct {
	Text  string
	Style toaster.Style
}

// Model holds the dialog state. The host capabilities are injected so
// tests can substitute recording doubles.
type Model struct {
	catalog *catalog.Catalog
	extent  geo.Extent
	engine  host.RasterEngine
	project host.Project
	canvas  host.Canvas

	names    []string
	selected int
	width    int
	height   int
}

// New creates a source dialog over the given catalog and host.
func New(cat *catalog.Catalog, extent geo.Extent, engine host.RasterEngine, project host.Project, canvas host.Canvas) Model {
	return Model{
		catalog: cat,
		extent:  extent,
		engine:  engine,
		project: project,
		canvas:  canvas,
		names:   cat.Names(),
	}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Selected returns the currently highlighted source name.
func (m Model) Selected() string {
	if m.selected >= 0 && m.selected < len(m.names) {
		return m.names[m.selected]
	}
	return ""
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.names)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		case "enter":
			return m.Confirm(m.Selected())
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}
	return m, nil
}

// Confirm looks up the named source and runs the add-layer sequence
// against the host. On failure the dialog stays open and a notice
// describes what went wrong; on success an AddedMsg closes it.
func (m Model) Confirm(name string) (Model, tea.Cmd) {
	src, ok := m.catalog.Lookup(name)
	if !ok {
		log.Warn(log.CatUI, "Confirm with unknown source", "name", name)
		return m, notice("Nie wybrano warstwy.", toaster.StyleWarn)
	}
	return m, m.addLayer(src)
}

// addLayer performs the host call sequence. A panic out of the host is
// recovered into a generic error notice so the dialog stays usable.
func (m Model) addLayer(src catalog.TileSource) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatUI, "Recovered panic while adding layer", "source", src.Name, "panic", fmt.Sprint(r))
			cmd = notice(fmt.Sprintf("Wystąpił nieoczekiwany błąd: %v", r), toaster.StyleError)
		}
	}()

	conn := host.ConnString(src)
	layer, err := m.engine.NewTileLayer(conn, src.Name)
	if err != nil {
		log.ErrorErr(log.CatUI, "Layer construction failed", err, "source", src.Name)
		return notice(fmt.Sprintf(
			"Nie udało się załadować warstwy '%s'. Szczegóły: %v. URL: %s",
			src.Name, err, src.URL), toaster.StyleError)
	}

	if err := m.project.AddMapLayer(layer); err != nil {
		log.ErrorErr(log.CatUI, "Layer registration failed", err, "source", src.Name)
		return notice(fmt.Sprintf(
			"Nie udało się dodać warstwy '%s' do projektu. Szczegóły: %v",
			src.Name, err), toaster.StyleError)
	}

	success := fmt.Sprintf("Warstwa '%s' została dodana do projektu.", src.Name)
	if m.project.CRS() == "" {
		m.project.SetCRS(src.CRS)
		success += fmt.Sprintf(" Ustawiono CRS projektu na %s.", src.CRS)
	}

	m.canvas.SetDestinationCRS(src.CRS)
	m.canvas.SetExtent(m.extent)
	m.canvas.Refresh()

	log.Info(log.CatUI, "Layer added", "source", src.Name, "extent", m.extent.String())
	return tea.Batch(
		notice(success, toaster.StyleSuccess),
		func() tea.Msg { return AddedMsg{Source: src, Layer: layer} },
	)
}

func notice(text string, style toaster.Style) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text, Style: style} }
}

// View renders the dialog box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	var options strings.Builder
	for i, name := range m.names {
		if i == m.selected {
			options.WriteString(styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(name))
		} else {
			options.WriteString(" " + name)
		}
		options.WriteString("\n")
	}

	detail := m.renderDetail()

	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	footer := styles.HelpStyle.Render(" j/k: wybór • enter: dodaj warstwę • esc: anuluj")

	content := titleStyle.Render("Geoportal Olsztyn — pobieranie danych OSM") + "\n" +
		divider + "\n" +
		strings.TrimSuffix(options.String(), "\n") + "\n" +
		divider + "\n" +
		detail + "\n" +
		footer

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth)

	return boxStyle.Render(content)
}

// renderDetail shows the highlighted source's description and zoom/CRS
// line, word-wrapped to the box.
func (m Model) renderDetail() string {
	src, ok := m.catalog.Lookup(m.Selected())
	if !ok {
		return ""
	}

	descStyle := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
	infoStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)

	desc := wordwrap.String(src.Description, boxWidth-2)
	info := fmt.Sprintf("zoom %d-%d • %s", src.MinZoom, src.MaxZoom, src.CRS)

	return descStyle.Render(" "+strings.ReplaceAll(desc, "\n", "\n ")) + "\n" +
		infoStyle.Render(" "+info)
}

// Overlay renders the dialog centered on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.View()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			box,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}
