package evolution

import "time"

// SnapshotVersion tags exported snapshots so future schema changes can be
// migrated on restore.
const SnapshotVersion = 1

// Snapshot is the serializable form of a Manager's mutable state.
type Snapshot struct {
	Version           int                 `json:"version"`
	CharacterID       string              `json:"character_id"`
	Archetype         string              `json:"archetype,omitempty"`
	Points            float64             `json:"evolution_points"`
	State             State               `json:"state"`
	Interactions      []InteractionRecord `json:"interaction_history"`
	Transitions       []TransitionEvent   `json:"evolution_history"`
	TotalInteractions int                 `json:"total_interactions"`
	CreatedAt         time.Time           `json:"created_at"`
	LastInteraction   time.Time           `json:"last_interaction"`
}

// ExportState produces a plain serializable snapshot of every mutable
// field. History slices are copied; the snapshot shares no state with the
// manager.
func (m *Manager) ExportState() Snapshot {
	interactions := make([]InteractionRecord, len(m.interactions))
	copy(interactions, m.interactions)
	transitions := make([]TransitionEvent, len(m.transitions))
	copy(transitions, m.transitions)

	return Snapshot{
		Version:           SnapshotVersion,
		CharacterID:       m.characterID,
		Archetype:         m.archetypeKey,
		Points:            m.points,
		State:             m.state,
		Interactions:      interactions,
		Transitions:       transitions,
		TotalInteractions: m.totalInteractions,
		CreatedAt:         m.createdAt,
		LastInteraction:   m.lastInteraction,
	}
}

// RestoreState rebuilds the manager from a snapshot. The archetype is
// re-applied first, because assignment is the only path that initializes
// archetype-dependent fields and it resets points and state; the restored
// values are written over that reset afterward. Malformed fields fall back
// to safe defaults individually; one bad field never aborts the restore.
func (m *Manager) RestoreState(s Snapshot) {
	if s.CharacterID != "" {
		m.characterID = s.CharacterID
	}

	// Re-apply assignment, then overwrite the reset it performs. The "set"
	// event it appends is discarded when the snapshot's history is copied in.
	if s.Archetype == "" || !m.SetArchetype(s.Archetype) {
		m.archetypeKey = ""
	}

	m.points = clamp(s.Points, MinPoints, MaxPoints)

	switch s.State {
	case StateBase, StateEvolved, StateShadow:
		m.state = s.State
	default:
		m.state = StateBase
	}

	m.interactions = make([]InteractionRecord, len(s.Interactions))
	copy(m.interactions, s.Interactions)
	m.transitions = make([]TransitionEvent, len(s.Transitions))
	copy(m.transitions, s.Transitions)

	if s.TotalInteractions >= 0 {
		m.totalInteractions = s.TotalInteractions
	} else {
		m.totalInteractions = 0
	}

	if !s.CreatedAt.IsZero() {
		m.createdAt = s.CreatedAt
	}
	m.lastInteraction = s.LastInteraction
}

// NewManagerFromSnapshot constructs a manager and restores it in one step.
func NewManagerFromSnapshot(s Snapshot) *Manager {
	m := NewManager(s.CharacterID)
	m.RestoreState(s)
	return m
}
