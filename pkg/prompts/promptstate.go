package prompts

import (
	"fmt"
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// PromptState is a reduced view of a character's psychological state for
// LLM prompts. It omits history internals and keeps only what the model
// needs to portray the character this turn.
type PromptState struct {
	CharacterID     string  `json:"character_id"`
	Archetype       string  `json:"archetype,omitempty"`
	CurrentForm     string  `json:"current_form,omitempty"`
	Icon            string  `json:"icon,omitempty"`
	State           string  `json:"state"`
	EvolutionPoints float64 `json:"evolution_points"`
	Progress        float64 `json:"progress"`
	RecentTrend     string  `json:"recent_trend,omitempty"`
}

// ToPromptState reduces a manager's full status to the prompt view.
func ToPromptState(m *evolution.Manager) *PromptState {
	status := m.Status()
	ps := &PromptState{
		CharacterID:     status.CharacterID,
		Archetype:       status.Archetype,
		CurrentForm:     status.CurrentForm,
		Icon:            status.Icon,
		State:           string(status.State),
		EvolutionPoints: status.Points,
		Progress:        status.Progress,
	}

	stats := m.InteractionStats()
	switch {
	case stats.Total == 0:
		// no trend yet
	case stats.NetImpact > 0:
		ps.RecentTrend = "warming"
	case stats.NetImpact < 0:
		ps.RecentTrend = "souring"
	default:
		ps.RecentTrend = "steady"
	}
	return ps
}

// ToString renders the prompt state as a short human-readable block,
// friendlier to language models than raw JSON.
func (ps *PromptState) ToString() string {
	var sb strings.Builder
	sb.WriteString("CHARACTER: " + ps.CharacterID + "\n")

	if ps.Archetype == "" {
		sb.WriteString("No archetype assigned yet.\n")
		return sb.String()
	}

	form := ps.CurrentForm
	if form == "" {
		if def := archetype.Get(ps.Archetype); def != nil {
			form = def.Name
		}
	}
	sb.WriteString(fmt.Sprintf("Currently %s %s (%s state).\n", form, ps.Icon, ps.State))

	switch {
	case ps.Progress >= 1:
		sb.WriteString("Their transformation is complete.\n")
	case ps.Progress >= 0.7:
		sb.WriteString("They are on the verge of positive transformation.\n")
	case ps.Progress <= -0.7 && ps.State == string(evolution.StateBase):
		sb.WriteString("They are dangerously close to falling into shadow.\n")
	}

	if ps.RecentTrend != "" {
		sb.WriteString("Recent interactions have left them " + ps.RecentTrend + ".\n")
	}
	return sb.String()
}
