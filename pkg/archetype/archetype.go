package archetype

// Category groups the twelve base archetypes by psychological function.
type Category string

const (
	CategoryEgo    Category = "ego"    // mastery and achievement
	CategorySoul   Category = "soul"   // yearning and connection
	CategorySelf   Category = "self"   // understanding and meaning
	CategorySocial Category = "social" // belonging and community
)

// Categories lists the closed set of archetype categories.
var Categories = []Category{CategoryEgo, CategorySoul, CategorySelf, CategorySocial}

// EvolutionTargets names the forms an archetype can transition into.
type EvolutionTargets struct {
	Positive string `json:"positive"` // evolved archetype ID
	Negative string `json:"negative"` // shadow archetype ID
}

// EvolutionConditions describes, in prose, what pushes an archetype
// toward each of its alternate forms. Used in prompt text only.
type EvolutionConditions struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// Definition is a static base archetype. Exactly twelve exist, keyed by
// uppercase ID. Definitions are immutable; callers must not mutate them.
type Definition struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Icon                string              `json:"icon"`
	CoreDrive           string              `json:"core_drive"`
	Desire              string              `json:"desire"`
	Fear                string              `json:"fear"`
	Traits              []string            `json:"traits"`
	Strengths           []string            `json:"strengths"`
	Weaknesses          []string            `json:"weaknesses"`
	ShadowTendency      string              `json:"shadow_tendency"`
	Category            Category            `json:"category"`
	Evolution           EvolutionTargets    `json:"evolution"`
	EvolutionConditions EvolutionConditions `json:"evolution_conditions"`
	PromptModifiers     []string            `json:"prompt_modifiers"`
	Dialogue            map[string][]string `json:"dialogue,omitempty"` // situation -> example lines
	// InteractionBonuses adds an extra signed delta when an interaction's
	// tag matches a key exactly. A missing key means no bonus.
	InteractionBonuses map[string]float64 `json:"interaction_bonuses,omitempty"`
}

// Bonus returns the extra delta this archetype applies to the given
// interaction tag, or 0 when none is defined.
func (d *Definition) Bonus(tag string) float64 {
	if d == nil || d.InteractionBonuses == nil {
		return 0
	}
	return d.InteractionBonuses[tag]
}

// EvolvedArchetype is the positive alternate form of a base archetype.
type EvolvedArchetype struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Origin      string   `json:"origin"` // base archetype ID
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
	Behavior    string   `json:"behavior"`
}

// ShadowArchetype is the negative alternate form of a base archetype.
// Unlike evolution, the shadow state is recoverable through redemption.
type ShadowArchetype struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Origin         string   `json:"origin"` // base archetype ID
	Description    string   `json:"description"`
	Traits         []string `json:"traits"`
	Behavior       string   `json:"behavior"`
	RedemptionPath string   `json:"redemption_path"`
}
