// Package plugin wires the geoportal entry point into the host's menu
// and toolbar. It owns no business logic; the registered action only
// triggers the selection dialog.
package plugin

import (
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
)

// MenuTitle is the menu entry title, kept from the original plugin.
const MenuTitle = "Pobierz dane z Geoportalu Olsztyna"

const actionID = "olsztyn-geoportal.open-dialog"

// Shell registers the plugin's entry points with the host UI.
type Shell struct {
	ui      host.UI
	actions []host.Action
}

// New creates an unregistered shell.
func New(ui host.UI) *Shell {
	return &Shell{ui: ui}
}

// InitGUI registers the menu/toolbar action that opens the selection
// dialog.
func (s *Shell) InitGUI(openDialog func()) {
	action := host.Action{
		ID:       actionID,
		Title:    MenuTitle,
		Callback: openDialog,
	}
	s.ui.AddMenuAction(action)
	s.actions = append(s.actions, action)
	log.Info(log.CatPlugin, "Action registered", "id", action.ID)
}

// Actions returns the currently registered actions.
func (s *Shell) Actions() []host.Action {
	return s.actions
}

// Unload removes every registered action from the host UI.
func (s *Shell) Unload() {
	for _, action := range s.actions {
		s.ui.RemoveMenuAction(action.ID)
		log.Info(log.CatPlugin, "Action removed", "id", action.ID)
	}
	s.actions = nil
}
