package prompts

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// PersonalityHeader opens the archetype section appended to system prompts.
const PersonalityHeader = "\n\n### Character Psychology\n"

// Near-threshold elaborations for characters approaching a transformation.
const (
	GrowthElaboration   = "The character stands at the edge of profound positive change. Small kindnesses land deeply; write them as quietly transformative."
	DistressElaboration = "The character is close to breaking. Let the cracks show: shorter patience, darker humor, a lingering look at the exits."
)

var titleCaser = cases.Title(language.English)

// TitleID converts an uppercase catalog ID like "WISE_FOOL" into a
// display form like "Wise Fool".
func TitleID(id string) string {
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(id, "_", " ")))
}

// ApplyArchetypeToPrompt appends a structured personality section for a
// character onto a base system prompt. The base prompt is never mutated;
// the result is a new string. An unknown archetype returns the base
// prompt unchanged.
func ApplyArchetypeToPrompt(basePrompt, archetypeID string, state evolution.State, progress float64) string {
	def := archetype.Get(archetypeID)
	if def == nil {
		return basePrompt
	}

	var sb strings.Builder
	sb.WriteString(basePrompt)
	sb.WriteString(PersonalityHeader)
	sb.WriteString(fmt.Sprintf("The character embodies %s %s.\n", def.Name, def.Icon))
	sb.WriteString(fmt.Sprintf("- Core drive: %s\n", def.CoreDrive))
	sb.WriteString(fmt.Sprintf("- Deepest desire: %s\n", def.Desire))
	sb.WriteString(fmt.Sprintf("- Deepest fear: %s\n", def.Fear))
	sb.WriteString(fmt.Sprintf("- Traits: %s\n", strings.Join(def.Traits, ", ")))

	if len(def.PromptModifiers) > 0 {
		sb.WriteString("\nBehavior guidelines:\n")
		for _, mod := range def.PromptModifiers {
			sb.WriteString("- " + mod + "\n")
		}
	}

	switch state {
	case evolution.StateEvolved:
		if ev := archetype.GetEvolved(def.Evolution.Positive); ev != nil {
			sb.WriteString(fmt.Sprintf("\nThe character has evolved into %s %s. %s\n%s\n", ev.Name, ev.Icon, ev.Description, ev.Behavior))
		}
	case evolution.StateShadow:
		if sh := archetype.GetShadow(def.Evolution.Negative); sh != nil {
			sb.WriteString(fmt.Sprintf("\nThe character has fallen into %s %s. %s\n%s\n", sh.Name, sh.Icon, sh.Description, sh.Behavior))
			sb.WriteString("Path back to the light: " + sh.RedemptionPath + "\n")
		}
	default:
		if progress >= 0.7 {
			sb.WriteString("\n" + GrowthElaboration + "\n")
		} else if progress <= -0.7 {
			sb.WriteString("\n" + DistressElaboration + "\n")
		}
	}

	return sb.String()
}

// GetArchetypeSummary returns a compact one-paragraph description of an
// archetype suitable for character sheets and pickers. Unknown IDs return
// an empty string.
func GetArchetypeSummary(archetypeID string) string {
	def := archetype.Get(archetypeID)
	if def == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s (%s) — %s. ", def.Icon, def.Name, titleCaser.String(string(def.Category)), def.CoreDrive))
	sb.WriteString(fmt.Sprintf("Desires %s; fears %s.", lowerFirst(def.Desire), lowerFirst(def.Fear)))

	ev := archetype.GetEvolved(def.Evolution.Positive)
	sh := archetype.GetShadow(def.Evolution.Negative)
	if ev != nil && sh != nil {
		sb.WriteString(fmt.Sprintf(" May rise to %s or fall to %s.", ev.Name, sh.Name))
	}
	return sb.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
