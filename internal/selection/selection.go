// Package selection tracks which visible items are marked for bulk actions.
package selection

import "sort"

// BulkActionHandler receives the selected ids when a bulk action fires.
type BulkActionHandler interface {
	HandleBulkAction(action string, ids []string)
}

// BulkActionFunc adapts a function to the BulkActionHandler interface.
type BulkActionFunc func(action string, ids []string)

// HandleBulkAction calls the wrapped function.
func (f BulkActionFunc) HandleBulkAction(action string, ids []string) {
	f(action, ids)
}

// Set is the selection state for a collection view. Membership is always
// a subset of the ids currently visible; Reconcile enforces that whenever
// filters change the visible population.
type Set struct {
	selected map[string]struct{}
	visible  []string
	visSet   map[string]struct{}
}

// NewSet creates an empty selection over an empty visible population.
func NewSet() *Set {
	return &Set{
		selected: make(map[string]struct{}),
		visSet:   make(map[string]struct{}),
	}
}

// Reconcile replaces the visible population and drops any selected id
// that is no longer visible.
func (s *Set) Reconcile(visible []string) {
	s.visible = append([]string(nil), visible...)
	s.visSet = make(map[string]struct{}, len(visible))
	for _, id := range visible {
		s.visSet[id] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := s.visSet[id]; !ok {
			delete(s.selected, id)
		}
	}
}

// Toggle flips membership of id. Ids outside the visible population are ignored.
func (s *Set) Toggle(id string) {
	if _, ok := s.visSet[id]; !ok {
		return
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// SelectAll selects every visible id. If all visible ids are already
// selected it clears the selection instead, so the same key toggles
// between all and none.
func (s *Set) SelectAll() {
	if len(s.visible) > 0 && len(s.selected) == len(s.visible) {
		s.Clear()
		return
	}
	for _, id := range s.visible {
		s.selected[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.selected = make(map[string]struct{})
}

// IsSelected reports whether id is currently selected.
func (s *Set) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Count returns the number of selected ids.
func (s *Set) Count() int {
	return len(s.selected)
}

// IDs returns the selected ids in visible order. Selected ids whose
// visible position is unknown sort last by id for a stable result.
func (s *Set) IDs() []string {
	order := make(map[string]int, len(s.visible))
	for i, id := range s.visible {
		order[id] = i
	}
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		oi, iok := order[ids[i]]
		oj, jok := order[ids[j]]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return ids[i] < ids[j]
	})
	return ids
}

// DispatchBulk hands the current selection to handler and clears it.
// The selection is cleared even when the handler fails some items;
// nothing is dispatched when the selection is empty.
func (s *Set) DispatchBulk(action string, handler BulkActionHandler) {
	ids := s.IDs()
	if len(ids) == 0 {
		return
	}
	if handler != nil {
		handler.HandleBulkAction(action, ids)
	}
	s.Clear()
}
