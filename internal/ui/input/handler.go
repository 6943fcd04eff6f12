package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"swipedeck/internal/ui/input/types"
)

// Handler turns key presses into actions
type Handler struct {
	keys KeyMap
}

// New creates a new input handler with the default key map
func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey processes a key message and returns actions and whether the key was consumed
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, h.keys.Prev):
		return []types.Action{types.SlideAction{Advance: false}}, true
	case key.Matches(msg, h.keys.Next):
		return []types.Action{types.SlideAction{Advance: true}}, true
	case key.Matches(msg, h.keys.Clean):
		return []types.Action{types.CleanAction{}}, true
	case key.Matches(msg, h.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, h.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
