package prompts

import (
	"strings"
	"testing"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

func TestGetArchetypeReaction(t *testing.T) {
	tests := []struct {
		name      string
		archetype string
		situation string
		state     evolution.State
		want      string
	}{
		{"hero in danger", "HERO", SituationDanger, evolution.StateBase, "between the threat"},
		{"lover betrayed", "LOVER", SituationBetrayal, evolution.StateBase, "devastated"},
		{"jester in conflict", "JESTER", SituationConflict, evolution.StateBase, "mockery"},
		{"unknown situation falls back", "SAGE", "taxes", evolution.StateBase, "uncertain"},
		{"evolved decoration", "HERO", SituationDanger, evolution.StateEvolved, "The Legend"},
		{"shadow decoration", "HERO", SituationDanger, evolution.StateShadow, "The Destroyer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetArchetypeReaction(tt.archetype, tt.situation, tt.state)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Expected reaction to contain %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGetArchetypeReactionUnknownArchetype(t *testing.T) {
	if got := GetArchetypeReaction("NOBODY", SituationDanger, evolution.StateBase); got != "" {
		t.Errorf("Expected empty reaction for unknown archetype, got %q", got)
	}
}

func TestReactionTablesCoverAllArchetypes(t *testing.T) {
	situations := []string{SituationDanger, SituationBetrayal, SituationLoss, SituationCelebration, SituationConflict}
	for id, table := range reactions {
		for _, s := range situations {
			if table[s] == "" {
				t.Errorf("%s is missing a reaction for %s", id, s)
			}
		}
	}
	if len(reactions) != 12 {
		t.Errorf("Expected reactions for 12 archetypes, got %d", len(reactions))
	}
}

func TestGenerateBehaviorSuggestions(t *testing.T) {
	base := GenerateBehaviorSuggestions("CAREGIVER", evolution.StateBase)
	if len(base) != 4 {
		t.Fatalf("Expected 4 suggestions for base state, got %d", len(base))
	}

	shadow := GenerateBehaviorSuggestions("CAREGIVER", evolution.StateShadow)
	found := false
	for _, s := range shadow {
		if strings.Contains(s, "The Martyr") {
			found = true
		}
	}
	if !found {
		t.Error("Expected shadow suggestions to reference The Martyr")
	}

	if got := GenerateBehaviorSuggestions("NOBODY", evolution.StateBase); got != nil {
		t.Errorf("Expected nil for unknown archetype, got %v", got)
	}
}
