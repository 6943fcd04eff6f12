package logic

import "swipedeck/internal/domain"

// PaneStore provides ordered access to the panes of a deck
type PaneStore interface {
	GetPane(index int) (domain.Pane, bool)
	GetAllPanes() []domain.Pane
	AddPane(pane domain.Pane)
	ReplaceAll(panes []domain.Pane)
	Count() int
}
