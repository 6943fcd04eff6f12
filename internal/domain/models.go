package domain

// Pane is one unit of content in a deck
type Pane struct {
	Title string
	Body  string
}

// Equal reports whether two panes carry the same content
func (p Pane) Equal(other Pane) bool {
	return p.Title == other.Title && p.Body == other.Body
}

// DeckStatus is what the status line shows about the deck
type DeckStatus struct {
	Index     int
	ItemCount int
	Phase     string
	Message   string
}
