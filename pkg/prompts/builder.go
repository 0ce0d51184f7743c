package prompts

import (
	"fmt"
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// Builder assembles a complete system prompt for a scene using a fluent
// interface. It layers archetype psychology, current evolution state, and
// pairwise relationship dynamics onto a caller-supplied base prompt.
type Builder struct {
	basePrompt  string
	cast        []*evolution.Manager
	suggestions bool
	dynamics    bool
}

// New creates a prompt builder with default settings.
func New() *Builder {
	return &Builder{
		dynamics: true,
	}
}

// WithBasePrompt sets the scenario prompt everything else is layered onto.
func (b *Builder) WithBasePrompt(prompt string) *Builder {
	b.basePrompt = prompt
	return b
}

// WithCharacter adds a character to the scene. Call once per cast member;
// order is preserved in the output.
func (b *Builder) WithCharacter(m *evolution.Manager) *Builder {
	if m != nil {
		b.cast = append(b.cast, m)
	}
	return b
}

// WithSuggestions includes per-character behavior writing prompts.
func (b *Builder) WithSuggestions(enabled bool) *Builder {
	b.suggestions = enabled
	return b
}

// WithDynamics toggles the pairwise relationship section. Enabled by default.
func (b *Builder) WithDynamics(enabled bool) *Builder {
	b.dynamics = enabled
	return b
}

// Build constructs the final prompt. At least one cast member with an
// assigned archetype is required.
func (b *Builder) Build() (string, error) {
	if len(b.cast) == 0 {
		return "", fmt.Errorf("at least one character is required")
	}

	var sb strings.Builder
	sb.WriteString(b.basePrompt)

	for _, m := range b.cast {
		if m.Archetype() == "" {
			continue
		}
		section := ApplyArchetypeToPrompt("", m.Archetype(), m.State(), m.Progress())
		sb.WriteString(section)
		sb.WriteString("\n" + ToPromptState(m).ToString())

		if b.suggestions {
			for _, s := range GenerateBehaviorSuggestions(m.Archetype(), m.State()) {
				sb.WriteString("- " + s + "\n")
			}
		}
	}

	if b.dynamics && len(b.cast) > 1 {
		sb.WriteString("\n### Relationship Dynamics\n")
		for i := 0; i < len(b.cast); i++ {
			for j := i + 1; j < len(b.cast); j++ {
				d := GetRelationshipDynamics(b.cast[i].Archetype(), b.cast[j].Archetype())
				if d == nil {
					continue
				}
				sb.WriteString(fmt.Sprintf("- %s\n", d.Description))
			}
		}
	}

	return sb.String(), nil
}

// BuildScenePrompt is a convenience function for the common case: one
// base prompt, a cast of characters, dynamics on, suggestions off.
func BuildScenePrompt(basePrompt string, cast ...*evolution.Manager) (string, error) {
	b := New().WithBasePrompt(basePrompt)
	for _, m := range cast {
		b.WithCharacter(m)
	}
	return b.Build()
}
