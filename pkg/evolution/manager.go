package evolution

import (
	"fmt"
	"strings"
	"time"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
)

// Evolution point thresholds. Points may overshoot the transition
// thresholds up to the clamp bounds; the overshoot is kept for dramatic
// effect and is not reset on evolution.
const (
	EvolutionThreshold  = 100.0
	DevolutionThreshold = -100.0
	RedemptionThreshold = -30.0
	MaxPoints           = 150.0
	MinPoints           = -150.0
)

// Hints are added to prompt modifiers when points close in on a threshold.
const (
	growthHintThreshold   = 70.0
	distressHintThreshold = -70.0
)

// State is the lifecycle state of a character's archetype.
type State string

const (
	StateBase    State = "base"
	StateEvolved State = "evolved" // terminal: no automatic transition out
	StateShadow  State = "shadow"  // recoverable via redemption
)

// TransitionType tags entries in the evolution history.
type TransitionType string

const (
	TransitionSet        TransitionType = "set"
	TransitionEvolution  TransitionType = "evolution"
	TransitionDevolution TransitionType = "devolution"
	TransitionRedemption TransitionType = "redemption"
)

// InteractionRecord is one entry in a character's interaction history.
type InteractionRecord struct {
	Type         string    `json:"type"`
	BaseValue    float64   `json:"base_value"`
	Modifier     float64   `json:"modifier"`
	FinalValue   float64   `json:"final_value"`
	Context      string    `json:"context,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	PointsBefore float64   `json:"evolution_points_before"`
}

// TransitionEvent is one entry in a character's evolution history.
type TransitionEvent struct {
	Type      TransitionType `json:"type"`
	From      string         `json:"from,omitempty"`
	To        string         `json:"to"`
	Points    float64        `json:"points"`
	Timestamp time.Time      `json:"timestamp"`
}

// Transition describes a state change triggered by an interaction.
type Transition struct {
	Type TransitionType `json:"type"`
	From string         `json:"from"`
	To   string         `json:"to"`
	Name string         `json:"name"` // display name of the new form
}

// InteractionResult is returned by RecordInteraction. Invalid operations
// produce Success=false with a reason; they never panic or error.
type InteractionResult struct {
	Success     bool               `json:"success"`
	Error       string             `json:"error,omitempty"`
	Interaction *InteractionRecord `json:"interaction,omitempty"`
	Impact      float64            `json:"impact"`
	Points      float64            `json:"points"`
	Progress    float64            `json:"progress"`
	Transition  *Transition        `json:"transition,omitempty"`
}

// RedemptionResult is returned by AttemptRedemption.
type RedemptionResult struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Points  float64 `json:"points"`
	State   State   `json:"state"`
}

// Status is a read-only snapshot of where a character stands.
type Status struct {
	CharacterID       string    `json:"character_id"`
	Archetype         string    `json:"archetype,omitempty"`
	ArchetypeName     string    `json:"archetype_name,omitempty"`
	Icon              string    `json:"icon,omitempty"`
	State             State     `json:"state"`
	CurrentForm       string    `json:"current_form,omitempty"` // display name of the active form
	Points            float64   `json:"evolution_points"`
	Progress          float64   `json:"progress"`
	TotalInteractions int       `json:"total_interactions"`
	LastInteraction   time.Time `json:"last_interaction,omitempty"`
}

// InteractionStats summarizes a character's interaction history.
type InteractionStats struct {
	Total     int                `json:"total"`
	Positive  int                `json:"positive"`
	Negative  int                `json:"negative"`
	NetImpact float64            `json:"net_impact"`
	Strongest *InteractionRecord `json:"strongest,omitempty"`
}

// Manager tracks one character's archetype lifecycle: evolution points,
// state transitions, and append-only histories. Managers are not safe for
// concurrent use; the engine assumes a single caller at a time, matching
// the UI event-handler model it serves.
type Manager struct {
	characterID       string
	archetypeKey      string
	points            float64
	state             State
	interactions      []InteractionRecord
	transitions       []TransitionEvent
	totalInteractions int
	createdAt         time.Time
	lastInteraction   time.Time
}

// NewManager creates a fresh, archetype-less manager for a character.
func NewManager(characterID string) *Manager {
	return &Manager{
		characterID:  characterID,
		state:        StateBase,
		interactions: make([]InteractionRecord, 0),
		transitions:  make([]TransitionEvent, 0),
		createdAt:    time.Now(),
	}
}

// CharacterID returns the stable key this manager is tracked under.
func (m *Manager) CharacterID() string { return m.characterID }

// Archetype returns the assigned base archetype ID, or "" when unset.
func (m *Manager) Archetype() string { return m.archetypeKey }

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Points returns the current evolution points.
func (m *Manager) Points() float64 { return m.points }

// SetArchetype assigns a base archetype, resetting points to zero and the
// lifecycle state to base. Returns false for an unknown archetype ID; the
// manager is left unchanged.
func (m *Manager) SetArchetype(id string) bool {
	if archetype.Get(id) == nil {
		return false
	}

	from := m.archetypeKey
	m.archetypeKey = id
	m.points = 0
	m.state = StateBase
	m.transitions = append(m.transitions, TransitionEvent{
		Type:      TransitionSet,
		From:      from,
		To:        id,
		Points:    0,
		Timestamp: time.Now(),
	})
	return true
}

// RecordInteraction applies a named interaction to the character. The
// impact is the vocabulary base times the modifier, plus the archetype's
// exact-tag bonus if one is defined. Points are clamped to
// [MinPoints, MaxPoints] and threshold transitions are evaluated only
// while in the base state.
func (m *Manager) RecordInteraction(tag string, modifier float64, context string) *InteractionResult {
	if m.archetypeKey == "" {
		return &InteractionResult{Success: false, Error: "no archetype assigned"}
	}
	vocab, ok := archetype.GetInteraction(tag)
	if !ok {
		return &InteractionResult{Success: false, Error: fmt.Sprintf("unknown interaction type %q", tag)}
	}

	def := archetype.Get(m.archetypeKey)
	impact := vocab.Base*modifier + def.Bonus(tag)

	before := m.points
	m.points = clamp(before+impact, MinPoints, MaxPoints)

	record := InteractionRecord{
		Type:         tag,
		BaseValue:    vocab.Base,
		Modifier:     modifier,
		FinalValue:   impact,
		Context:      context,
		Timestamp:    time.Now(),
		PointsBefore: before,
	}
	m.interactions = append(m.interactions, record)
	m.totalInteractions++
	m.lastInteraction = record.Timestamp

	var transition *Transition
	if m.state == StateBase {
		transition = m.checkThresholds(def)
	}

	return &InteractionResult{
		Success:     true,
		Interaction: &record,
		Impact:      impact,
		Points:      m.points,
		Progress:    m.Progress(),
		Transition:  transition,
	}
}

// checkThresholds evaluates the evolution and devolution thresholds.
// Call only while in the base state.
func (m *Manager) checkThresholds(def *archetype.Definition) *Transition {
	switch {
	case m.points >= EvolutionThreshold:
		to := def.Evolution.Positive
		m.state = StateEvolved
		m.transitions = append(m.transitions, TransitionEvent{
			Type:      TransitionEvolution,
			From:      m.archetypeKey,
			To:        to,
			Points:    m.points,
			Timestamp: time.Now(),
		})
		name := ""
		if ev := archetype.GetEvolved(to); ev != nil {
			name = ev.Name
		}
		return &Transition{Type: TransitionEvolution, From: m.archetypeKey, To: to, Name: name}

	case m.points <= DevolutionThreshold:
		to := def.Evolution.Negative
		m.state = StateShadow
		m.transitions = append(m.transitions, TransitionEvent{
			Type:      TransitionDevolution,
			From:      m.archetypeKey,
			To:        to,
			Points:    m.points,
			Timestamp: time.Now(),
		})
		name := ""
		if sh := archetype.GetShadow(to); sh != nil {
			name = sh.Name
		}
		return &Transition{Type: TransitionDevolution, From: m.archetypeKey, To: to, Name: name}
	}
	return nil
}

// AttemptRedemption tries to bring a shadow-state character back to base.
// It succeeds only while in shadow with points at or above
// RedemptionThreshold; on success points reset to zero. Failure leaves the
// manager unchanged.
func (m *Manager) AttemptRedemption() *RedemptionResult {
	if m.state != StateShadow {
		return &RedemptionResult{
			Success: false,
			Error:   fmt.Sprintf("redemption requires shadow state, character is %s", m.state),
			Points:  m.points,
			State:   m.state,
		}
	}
	if m.points < RedemptionThreshold {
		return &RedemptionResult{
			Success: false,
			Error:   fmt.Sprintf("not ready for redemption: %.0f points, need %.0f", m.points, RedemptionThreshold),
			Points:  m.points,
			State:   m.state,
		}
	}

	from := ""
	if def := archetype.Get(m.archetypeKey); def != nil {
		from = def.Evolution.Negative
	}
	m.transitions = append(m.transitions, TransitionEvent{
		Type:      TransitionRedemption,
		From:      from,
		To:        m.archetypeKey,
		Points:    m.points,
		Timestamp: time.Now(),
	})
	m.points = 0
	m.state = StateBase

	return &RedemptionResult{Success: true, Points: 0, State: StateBase}
}

// Progress returns the normalized evolution progress in [-1, 1]:
// positive toward evolution, negative toward shadow.
func (m *Manager) Progress() float64 {
	return clamp(m.points/EvolutionThreshold, -1, 1)
}

// Status reports the character's current standing. Read-only.
func (m *Manager) Status() *Status {
	s := &Status{
		CharacterID:       m.characterID,
		Archetype:         m.archetypeKey,
		State:             m.state,
		Points:            m.points,
		Progress:          m.Progress(),
		TotalInteractions: m.totalInteractions,
		LastInteraction:   m.lastInteraction,
	}

	def := archetype.Get(m.archetypeKey)
	if def == nil {
		return s
	}
	s.ArchetypeName = def.Name
	s.Icon = def.Icon
	s.CurrentForm = def.Name

	switch m.state {
	case StateEvolved:
		if ev := archetype.GetEvolved(def.Evolution.Positive); ev != nil {
			s.CurrentForm = ev.Name
			s.Icon = ev.Icon
		}
	case StateShadow:
		if sh := archetype.GetShadow(def.Evolution.Negative); sh != nil {
			s.CurrentForm = sh.Name
			s.Icon = sh.Icon
		}
	}
	return s
}

// PromptModifiers returns the archetype's static prompt modifiers plus
// state-dependent additions. Read-only; returns nil when no archetype is
// assigned.
func (m *Manager) PromptModifiers() []string {
	def := archetype.Get(m.archetypeKey)
	if def == nil {
		return nil
	}

	mods := make([]string, 0, len(def.PromptModifiers)+2)
	mods = append(mods, def.PromptModifiers...)

	switch m.state {
	case StateEvolved:
		if ev := archetype.GetEvolved(def.Evolution.Positive); ev != nil {
			mods = append(mods,
				fmt.Sprintf("Now embodies %s: %s", ev.Name, ev.Behavior),
				fmt.Sprintf("Evolved traits: %s", strings.Join(ev.Traits, ", ")))
		}
	case StateShadow:
		if sh := archetype.GetShadow(def.Evolution.Negative); sh != nil {
			mods = append(mods,
				fmt.Sprintf("Has fallen into %s: %s", sh.Name, sh.Behavior),
				fmt.Sprintf("Shadow traits: %s", strings.Join(sh.Traits, ", ")))
		}
	case StateBase:
		if m.points >= growthHintThreshold {
			mods = append(mods, "On the verge of profound positive growth; moments of grace come more easily.")
		} else if m.points <= distressHintThreshold {
			mods = append(mods, "Under visible inner strain; darker impulses surface more often.")
		}
	}
	return mods
}

// CompatibilityWith returns the catalog affinity between this character's
// archetype and another archetype ID. Zero when either side is unknown.
func (m *Manager) CompatibilityWith(otherID string) int {
	if m.archetypeKey == "" {
		return 0
	}
	return archetype.Compatibility(m.archetypeKey, otherID)
}

// RecentInteractions returns a copy of the most recent n interaction
// records, oldest first. n <= 0 returns an empty slice.
func (m *Manager) RecentInteractions(n int) []InteractionRecord {
	if n <= 0 {
		return []InteractionRecord{}
	}
	if n > len(m.interactions) {
		n = len(m.interactions)
	}
	out := make([]InteractionRecord, n)
	copy(out, m.interactions[len(m.interactions)-n:])
	return out
}

// InteractionStats summarizes the interaction history. Read-only.
func (m *Manager) InteractionStats() *InteractionStats {
	stats := &InteractionStats{Total: len(m.interactions)}
	for i := range m.interactions {
		r := m.interactions[i]
		stats.NetImpact += r.FinalValue
		if r.FinalValue >= 0 {
			stats.Positive++
		} else {
			stats.Negative++
		}
		if stats.Strongest == nil || abs(r.FinalValue) > abs(stats.Strongest.FinalValue) {
			rec := r
			stats.Strongest = &rec
		}
	}
	return stats
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
