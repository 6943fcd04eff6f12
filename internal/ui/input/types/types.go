package types

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// SlideAction moves the deck one pane
type SlideAction struct {
	Advance bool
}

func (a SlideAction) Type() string { return "slide" }

// CleanAction removes stale duplicate panes
type CleanAction struct{}

func (a CleanAction) Type() string { return "clean" }

// OpenPagerAction shows the current pane in the pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

// ReloadAction re-reads the deck file
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// ToggleHelpAction switches between short and full help
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// QuitAction exits the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
