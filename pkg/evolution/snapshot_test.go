package evolution

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewManager("elena")
	m.SetArchetype("LOVER")
	m.RecordInteraction("affection", 1.5, "a long goodbye")
	m.RecordInteraction("betrayal", 1, "the letter")
	m.RecordInteraction("forgiveness", 0.5, "")

	exported := m.ExportState()

	restored := NewManagerFromSnapshot(exported)
	if !reflect.DeepEqual(exported, restored.ExportState()) {
		t.Errorf("round trip diverged:\n exported: %+v\n restored: %+v", exported, restored.ExportState())
	}
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	m := NewManager("elena")
	m.SetArchetype("HERO")
	for i := 0; i < 20; i++ {
		m.RecordInteraction("sacrifice", 1, "")
	}
	if m.State() != StateEvolved {
		t.Fatalf("setup: state = %s, want evolved", m.State())
	}

	exported := m.ExportState()
	data, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := NewManagerFromSnapshot(decoded)
	if restored.State() != StateEvolved {
		t.Errorf("restored state = %s, want evolved", restored.State())
	}
	if restored.Points() != m.Points() {
		t.Errorf("restored points = %v, want %v", restored.Points(), m.Points())
	}
	if restored.Archetype() != "HERO" {
		t.Errorf("restored archetype = %q, want HERO", restored.Archetype())
	}
	if len(restored.ExportState().Interactions) != 20 {
		t.Errorf("restored %d interactions, want 20", len(restored.ExportState().Interactions))
	}
}

func TestRestoreStateDoesNotClobberProgress(t *testing.T) {
	// SetArchetype resets points and state; restore must re-apply the
	// assignment first and then write the snapshot's values over the reset.
	m := NewManager("elena")
	m.SetArchetype("SAGE")
	snap := m.ExportState()
	snap.Points = 85
	snap.State = StateBase

	m.RestoreState(snap)
	if m.Points() != 85 {
		t.Errorf("points = %v, want 85; assignment reset clobbered the restore", m.Points())
	}
}

func TestRestoreStateMalformed(t *testing.T) {
	tests := []struct {
		name  string
		mutil func(*Snapshot)
		check func(*testing.T, *Manager)
	}{
		{
			name:  "unknown archetype leaves manager unassigned",
			mutil: func(s *Snapshot) { s.Archetype = "WARLORD" },
			check: func(t *testing.T, m *Manager) {
				if m.Archetype() != "" {
					t.Errorf("archetype = %q, want unset", m.Archetype())
				}
			},
		},
		{
			name:  "out-of-range points are clamped",
			mutil: func(s *Snapshot) { s.Points = 9000 },
			check: func(t *testing.T, m *Manager) {
				if m.Points() != MaxPoints {
					t.Errorf("points = %v, want %v", m.Points(), MaxPoints)
				}
			},
		},
		{
			name:  "invalid state falls back to base",
			mutil: func(s *Snapshot) { s.State = State("ascended") },
			check: func(t *testing.T, m *Manager) {
				if m.State() != StateBase {
					t.Errorf("state = %s, want base", m.State())
				}
			},
		},
		{
			name:  "negative interaction count resets to zero",
			mutil: func(s *Snapshot) { s.TotalInteractions = -4 },
			check: func(t *testing.T, m *Manager) {
				if m.ExportState().TotalInteractions != 0 {
					t.Errorf("total = %d, want 0", m.ExportState().TotalInteractions)
				}
			},
		},
		{
			name:  "nil histories restore as empty",
			mutil: func(s *Snapshot) { s.Interactions = nil; s.Transitions = nil },
			check: func(t *testing.T, m *Manager) {
				out := m.ExportState()
				if out.Interactions == nil || out.Transitions == nil {
					t.Error("histories restored as nil")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager("elena")
			m.SetArchetype("HERO")
			m.RecordInteraction("kindness", 1, "")
			snap := m.ExportState()
			tt.mutil(&snap)

			// Restore must not panic or abort, whatever the field damage.
			m.RestoreState(snap)
			tt.check(t, m)
		})
	}
}
