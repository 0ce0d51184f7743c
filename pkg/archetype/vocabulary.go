package archetype

import "sort"

// Interaction is a named category of in-fiction action with a fixed signed
// base impact on evolution points.
type Interaction struct {
	Base        float64 `json:"base"`
	Description string  `json:"description"`
}

// Vocabulary is the fixed table of interaction tags the engine understands.
// Tags outside this table are rejected by the manager. The table is
// configuration data: versioned with the code, never changed at runtime.
var Vocabulary = map[string]Interaction{
	// positive
	"kindness":      {Base: 3, Description: "A considerate act or gentle word"},
	"compassion":    {Base: 4, Description: "Sharing in another's suffering"},
	"protection":    {Base: 4, Description: "Shielding someone from harm"},
	"loyalty":       {Base: 4, Description: "Standing by someone when it costs"},
	"sacrifice":     {Base: 5, Description: "Giving up something dear for another"},
	"forgiveness":   {Base: 5, Description: "Releasing a wrong without payment"},
	"mercy":         {Base: 4, Description: "Sparing someone at one's own discretion"},
	"honesty":       {Base: 2, Description: "Telling a truth that could have been hidden"},
	"encouragement": {Base: 3, Description: "Strengthening another's resolve"},
	"generosity":    {Base: 3, Description: "Giving freely without expectation"},
	"trust":         {Base: 3, Description: "Extending confidence before it is proven"},
	"respect":       {Base: 2, Description: "Acknowledging another's worth or station"},
	"support":       {Base: 3, Description: "Bearing part of another's burden"},
	"affection":     {Base: 3, Description: "An open expression of warmth"},

	// negative
	"betrayal":     {Base: -8, Description: "Breaking faith with someone who trusted"},
	"abandonment":  {Base: -7, Description: "Leaving someone who depended on you"},
	"cruelty":      {Base: -6, Description: "Inflicting suffering for its own sake"},
	"humiliation":  {Base: -6, Description: "Stripping someone of dignity before others"},
	"violence":     {Base: -5, Description: "Harm inflicted by force"},
	"manipulation": {Base: -5, Description: "Steering someone against their interest"},
	"deception":    {Base: -4, Description: "A lie told for advantage"},
	"theft":        {Base: -4, Description: "Taking what belongs to another"},
	"mockery":      {Base: -3, Description: "Ridicule aimed to wound"},
	"neglect":      {Base: -3, Description: "Withholding care that was owed"},
	"insult":       {Base: -2, Description: "A deliberate verbal slight"},
}

// GetInteraction looks up an interaction tag in the vocabulary.
func GetInteraction(tag string) (Interaction, bool) {
	i, ok := Vocabulary[tag]
	return i, ok
}

// InteractionTags returns the vocabulary keys in sorted order.
func InteractionTags() []string {
	tags := make([]string, 0, len(Vocabulary))
	for tag := range Vocabulary {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
