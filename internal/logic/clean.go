package logic

import "swipedeck/internal/domain"

// DedupePanes drops panes whose content repeats an earlier pane. Dynamic
// content reloads tend to append stale copies, and the first occurrence is
// the one the user has been looking at.
func DedupePanes(panes []domain.Pane) ([]domain.Pane, int) {
	out := make([]domain.Pane, 0, len(panes))
	for _, p := range panes {
		dup := false
		for _, kept := range out {
			if kept.Equal(p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out, len(panes) - len(out)
}

// CleanStore dedupes the store in place and returns how many panes were
// removed.
func CleanStore(store PaneStore) int {
	cleaned, removed := DedupePanes(store.GetAllPanes())
	if removed > 0 {
		store.ReplaceAll(cleaned)
	}
	return removed
}
