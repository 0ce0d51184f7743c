package evolution

import "sort"

// SavedStateVersion tags the registry persistence blob.
const SavedStateVersion = 1

// SavedState is the persistence blob for a whole registry: one snapshot
// per tracked character. It round-trips losslessly through
// ExportAll/LoadFromSaved.
type SavedState struct {
	Characters map[string]Snapshot `json:"characters"`
	Version    int                 `json:"version"`
}

// Registry is a keyed collection of managers, one per character. It is
// owned by the surrounding application context and injected where needed;
// there is no package-level instance.
type Registry struct {
	managers map[string]*Manager
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[string]*Manager)}
}

// GetManager returns the manager for a character, lazily creating a fresh
// archetype-less one on first access.
func (r *Registry) GetManager(characterID string) *Manager {
	if m, ok := r.managers[characterID]; ok {
		return m
	}
	m := NewManager(characterID)
	r.managers[characterID] = m
	return m
}

// Has reports whether a character is tracked without creating a manager.
func (r *Registry) Has(characterID string) bool {
	_, ok := r.managers[characterID]
	return ok
}

// RemoveManager drops a character's manager. Removal is the only way a
// manager leaves the registry; there is no TTL or garbage collection.
func (r *Registry) RemoveManager(characterID string) {
	delete(r.managers, characterID)
}

// Clear drops all managers.
func (r *Registry) Clear() {
	r.managers = make(map[string]*Manager)
}

// CharacterIDs returns the tracked character IDs in sorted order.
func (r *Registry) CharacterIDs() []string {
	ids := make([]string, 0, len(r.managers))
	for id := range r.managers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExportAll serializes every manager into a persistence blob.
func (r *Registry) ExportAll() *SavedState {
	s := &SavedState{
		Characters: make(map[string]Snapshot, len(r.managers)),
		Version:    SavedStateVersion,
	}
	for id, m := range r.managers {
		s.Characters[id] = m.ExportState()
	}
	return s
}

// LoadFromSaved replaces the registry's entire content from a persistence
// blob. A nil blob clears the registry.
func (r *Registry) LoadFromSaved(s *SavedState) {
	r.managers = make(map[string]*Manager)
	if s == nil {
		return
	}
	for id, snap := range s.Characters {
		if snap.CharacterID == "" {
			snap.CharacterID = id
		}
		r.managers[id] = NewManagerFromSnapshot(snap)
	}
}
