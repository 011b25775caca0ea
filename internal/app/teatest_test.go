package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// Full-program smoke test: boot the workspace, open the dialog, add the
// highlighted source, then quit.
func TestProgram_AddLayerAndQuit(t *testing.T) {
	model, project, _ := newTestModel(t)

	tm := teatest.NewTestModel(t, model,
		teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Geoportal Olsztyn"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(OpenDialogMsg{})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("OpenTopoMap"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("została dodana do projektu"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	if project.LayerCount() != 1 {
		t.Fatalf("expected 1 layer in project, got %d", project.LayerCount())
	}
}
