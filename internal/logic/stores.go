package logic

import (
	"sync"

	"swipedeck/internal/domain"
)

// MemoryPaneStore is an in-memory implementation of PaneStore
type MemoryPaneStore struct {
	mu    sync.RWMutex
	panes []domain.Pane
}

// NewMemoryPaneStore creates a new memory-based pane store
func NewMemoryPaneStore(panes ...domain.Pane) *MemoryPaneStore {
	s := &MemoryPaneStore{}
	s.panes = append(s.panes, panes...)
	return s
}

func (s *MemoryPaneStore) GetPane(index int) (domain.Pane, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.panes) {
		return domain.Pane{}, false
	}
	return s.panes[index], true
}

func (s *MemoryPaneStore) GetAllPanes() []domain.Pane {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Pane, len(s.panes))
	copy(result, s.panes)
	return result
}

func (s *MemoryPaneStore) AddPane(pane domain.Pane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panes = append(s.panes, pane)
}

func (s *MemoryPaneStore) ReplaceAll(panes []domain.Pane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panes = append([]domain.Pane(nil), panes...)
}

func (s *MemoryPaneStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.panes)
}
