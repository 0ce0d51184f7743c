package prompts

import (
	"fmt"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
)

// RelationshipDynamics describes the natural chemistry between two
// archetypes, derived from their compatibility score.
type RelationshipDynamics struct {
	ArchetypeA    string   `json:"archetype_a"`
	ArchetypeB    string   `json:"archetype_b"`
	Score         int      `json:"score"`
	Quality       string   `json:"quality"`
	Description   string   `json:"description"`
	Challenges    []string `json:"challenges,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
}

// Relationship quality labels, from open conflict to deep synergy.
const (
	QualityConflict = "conflict"
	QualityTension  = "tension"
	QualityNeutral  = "neutral"
	QualityHarmony  = "harmony"
	QualitySynergy  = "synergy"
)

// GetRelationshipDynamics combines two archetypes' compatibility score
// with narrative descriptors. Unknown archetypes return nil.
func GetRelationshipDynamics(archetypeA, archetypeB string) *RelationshipDynamics {
	a := archetype.Get(archetypeA)
	b := archetype.Get(archetypeB)
	if a == nil || b == nil {
		return nil
	}

	score := archetype.Compatibility(a.ID, b.ID)
	d := &RelationshipDynamics{
		ArchetypeA: a.ID,
		ArchetypeB: b.ID,
		Score:      score,
	}

	switch {
	case score <= -2:
		d.Quality = QualityConflict
		d.Description = fmt.Sprintf("%s and %s pull in opposite directions; their core drives are fundamentally at odds.", a.Name, b.Name)
		d.Challenges = []string{
			"Disagreements escalate quickly because each sees the other's instincts as a threat.",
			"Trust is slow to build and easily shattered.",
		}
		d.Opportunities = []string{
			"A foe-to-ally arc carries real weight when it happens between these two.",
		}
	case score == -1:
		d.Quality = QualityTension
		d.Description = fmt.Sprintf("%s and %s rub against each other; workable, but friction is never far away.", a.Name, b.Name)
		d.Challenges = []string{
			"Small misunderstandings compound because their values are misaligned.",
		}
		d.Opportunities = []string{
			"Their friction can sharpen both when channeled toward a shared goal.",
		}
	case score == 0:
		d.Quality = QualityNeutral
		d.Description = fmt.Sprintf("%s and %s coexist without strong pull in either direction; the relationship is what they make of it.", a.Name, b.Name)
		d.Opportunities = []string{
			"A blank slate: shared experiences will define the bond.",
		}
	case score == 1:
		d.Quality = QualityHarmony
		d.Description = fmt.Sprintf("%s and %s complement each other naturally and settle into an easy rapport.", a.Name, b.Name)
		d.Opportunities = []string{
			"Each covers the other's blind spots without being asked.",
		}
	default:
		d.Quality = QualitySynergy
		d.Description = fmt.Sprintf("%s and %s bring out the best in each other; together they are more than the sum of their drives.", a.Name, b.Name)
		d.Challenges = []string{
			"Losing the other would hit harder than either expects.",
		}
		d.Opportunities = []string{
			"A bond strong enough to anchor an entire story.",
			"Their combined strengths open paths neither could take alone.",
		}
	}

	return d
}
