package app

import (
	"sync"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host"
)

// MenuBar is the application's menu surface. Plugins register actions
// through the host.UI interface; the app maps them onto keybindings.
type MenuBar struct {
	mu      sync.Mutex
	actions []host.Action
}

var _ host.UI = (*MenuBar)(nil)

// NewMenuBar creates an empty menu bar.
func NewMenuBar() *MenuBar {
	return &MenuBar{}
}

// AddMenuAction registers an action. A second registration with the
// same ID replaces the first.
func (m *MenuBar) AddMenuAction(action host.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.actions {
		if existing.ID == action.ID {
			m.actions[i] = action
			return
		}
	}
	m.actions = append(m.actions, action)
}

// RemoveMenuAction unregisters the action with the given ID. Unknown
// IDs are ignored.
func (m *MenuBar) RemoveMenuAction(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, action := range m.actions {
		if action.ID == id {
			m.actions = append(m.actions[:i], m.actions[i+1:]...)
			return
		}
	}
}

// Actions returns a copy of the registered actions in order.
func (m *MenuBar) Actions() []host.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]host.Action, len(m.actions))
	copy(out, m.actions)
	return out
}

// First returns the first registered action, if any.
func (m *MenuBar) First() (host.Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.actions) == 0 {
		return host.Action{}, false
	}
	return m.actions[0], true
}

// Trigger invokes the callback of the action with the given ID and
// reports whether it was found.
func (m *MenuBar) Trigger(id string) bool {
	m.mu.Lock()
	var callback func()
	for _, action := range m.actions {
		if action.ID == id {
			callback = action.Callback
			break
		}
	}
	m.mu.Unlock()

	if callback == nil {
		return false
	}
	callback()
	return true
}
