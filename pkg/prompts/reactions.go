package prompts

import (
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// Situation keys recognized by GetArchetypeReaction.
const (
	SituationDanger      = "danger"
	SituationBetrayal    = "betrayal"
	SituationLoss        = "loss"
	SituationCelebration = "celebration"
	SituationConflict    = "conflict"
)

// reactionFallback is used when no table entry exists for the
// archetype/situation pair.
const reactionFallback = "They hesitate, uncertain how to respond, falling back on instinct."

var reactions = map[string]map[string]string{
	"HERO": {
		SituationDanger:      "They step between the threat and the vulnerable without a second thought.",
		SituationBetrayal:    "They take the wound personally and resolve to prove the betrayer wrong through action.",
		SituationLoss:        "They channel grief into a renewed mission, refusing to let the loss be meaningless.",
		SituationCelebration: "They deflect praise toward their companions and scan the horizon for the next challenge.",
		SituationConflict:    "They meet the conflict head-on, preferring an honest fight to a cold silence.",
	},
	"RULER": {
		SituationDanger:      "They take command immediately, issuing orders to restore control.",
		SituationBetrayal:    "They grow cold and formal, recalculating who can still be trusted with power.",
		SituationLoss:        "They mourn in private and reinforce structure in public.",
		SituationCelebration: "They preside over the festivities, turning joy into a display of stability.",
		SituationConflict:    "They invoke rules and precedent, expecting the hierarchy to settle the matter.",
	},
	"CREATOR": {
		SituationDanger:      "They improvise, turning whatever is at hand into a solution no one else imagined.",
		SituationBetrayal:    "They withdraw into their work, reshaping the pain into something expressive.",
		SituationLoss:        "They memorialize what was lost by making something that carries it forward.",
		SituationCelebration: "They want to capture the moment, already sketching how to preserve it.",
		SituationConflict:    "They propose an unconventional third option nobody had considered.",
	},
	"EXPLORER": {
		SituationDanger:      "They look for the unguarded path, treating the threat as terrain to be read.",
		SituationBetrayal:    "They put distance between themselves and the betrayer, trusting the road more than people.",
		SituationLoss:        "They leave, needing motion and new horizons to process what is gone.",
		SituationCelebration: "They enjoy it from the edge of the crowd, restless before the music ends.",
		SituationConflict:    "They disengage rather than be pinned down, returning only on their own terms.",
	},
	"REBEL": {
		SituationDanger:      "They grin at it, more alive in the chaos than anywhere else.",
		SituationBetrayal:    "They burn the bridge loudly and vow the betrayer will regret it.",
		SituationLoss:        "They rage against whatever system or power they hold responsible.",
		SituationCelebration: "They subvert the formalities and start the real party somewhere unsanctioned.",
		SituationConflict:    "They escalate on principle, refusing to yield to authority.",
	},
	"LOVER": {
		SituationDanger:      "They shield the person they love first, everything else second.",
		SituationBetrayal:    "They are devastated, replaying every moment and aching for an explanation.",
		SituationLoss:        "They grieve openly and deeply, needing closeness more than ever.",
		SituationCelebration: "They make it intimate, pulling the people they cherish near.",
		SituationConflict:    "They seek reconciliation quickly; the distance hurts more than being wrong.",
	},
	"INNOCENT": {
		SituationDanger:      "They freeze, then look to someone they trust to know what to do.",
		SituationBetrayal:    "They struggle to believe it, offering the betrayer every possible excuse.",
		SituationLoss:        "They are quietly shattered but insist things will be all right.",
		SituationCelebration: "They delight in it completely, unguarded and radiant.",
		SituationConflict:    "They try to smooth it over, distressed that anyone is angry at all.",
	},
	"SAGE": {
		SituationDanger:      "They assess before acting, looking for the cause behind the threat.",
		SituationBetrayal:    "They analyze what they missed, more troubled by their blindness than the act.",
		SituationLoss:        "They seek meaning in it, consulting memory and principle for consolation.",
		SituationCelebration: "They observe with a warm detachment, noting what the moment reveals about everyone.",
		SituationConflict:    "They reframe the dispute as a question to be answered rather than a battle to be won.",
	},
	"MAGICIAN": {
		SituationDanger:      "They look for the hidden lever, the one move that transforms the situation.",
		SituationBetrayal:    "They go quiet and opaque, deciding how much of themselves to ever reveal again.",
		SituationLoss:        "They search for what the loss makes possible, refusing to see only the ending.",
		SituationCelebration: "They orchestrate a moment of wonder, turning the gathering into something memorable.",
		SituationConflict:    "They maneuver, reshaping the terms of the conflict until it resolves itself.",
	},
	"EVERYMAN": {
		SituationDanger:      "They stay close to the group, steady and practical, keeping everyone together.",
		SituationBetrayal:    "They are hurt most by the broken bond and quietly close ranks with those who remain.",
		SituationLoss:        "They lean on community, organizing the small kindnesses that keep people afloat.",
		SituationCelebration: "They make sure nobody is left out, happiest when the whole table is full.",
		SituationConflict:    "They look for common ground, uncomfortable until the group is whole again.",
	},
	"CAREGIVER": {
		SituationDanger:      "They check on everyone else before considering their own safety.",
		SituationBetrayal:    "They wonder what they failed to give, absorbing blame that is not theirs.",
		SituationLoss:        "They pour themselves into comforting others, deferring their own grief.",
		SituationCelebration: "They serve and tend through the whole event, finding joy in others' enjoyment.",
		SituationConflict:    "They mediate gently, taking on the emotional weight of both sides.",
	},
	"JESTER": {
		SituationDanger:      "They crack a joke to cut the fear, then move when nobody expects it.",
		SituationBetrayal:    "They laugh it off in public and sharpen the hurt into wit in private.",
		SituationLoss:        "They deflect with humor until the mask slips, briefly, when no one is watching.",
		SituationCelebration: "They become the center of gravity, turning the night into a story worth retelling.",
		SituationConflict:    "They puncture the tension with mockery, aiming the sharpest line at whoever is most pompous.",
	},
}

// GetArchetypeReaction describes how a character of the given archetype
// responds to a situation, decorated with their current evolution state.
// Unknown situations fall back to an uncertain response; unknown
// archetypes return an empty string.
func GetArchetypeReaction(archetypeID, situation string, state evolution.State) string {
	def := archetype.Get(archetypeID)
	if def == nil {
		return ""
	}

	reaction := reactionFallback
	if table, ok := reactions[def.ID]; ok {
		if r, ok := table[situation]; ok {
			reaction = r
		}
	}

	switch state {
	case evolution.StateEvolved:
		if ev := archetype.GetEvolved(def.Evolution.Positive); ev != nil {
			reaction += " As " + ev.Name + ", they act with a hard-won grace that steadies everyone around them."
		}
	case evolution.StateShadow:
		if sh := archetype.GetShadow(def.Evolution.Negative); sh != nil {
			reaction += " As " + sh.Name + ", the response carries a darker edge, warped by what they have become."
		}
	}
	return reaction
}

// GenerateBehaviorSuggestions returns short writing prompts for portraying
// a character of the given archetype in their current state. Unknown
// archetypes return nil.
func GenerateBehaviorSuggestions(archetypeID string, state evolution.State) []string {
	def := archetype.Get(archetypeID)
	if def == nil {
		return nil
	}

	suggestions := []string{
		"Let their choices orbit a single drive: " + lowerFirst(def.CoreDrive) + ".",
		"Show strength through " + joinLower(def.Strengths) + ".",
		"Let flaws surface as " + joinLower(def.Weaknesses) + ".",
	}

	switch state {
	case evolution.StateEvolved:
		if ev := archetype.GetEvolved(def.Evolution.Positive); ev != nil {
			suggestions = append(suggestions, "Portray the quiet authority of "+ev.Name+": the old struggles resolved into wisdom.")
		}
	case evolution.StateShadow:
		if sh := archetype.GetShadow(def.Evolution.Negative); sh != nil {
			suggestions = append(suggestions, "Let glimpses of "+sh.Name+" leak through: "+lowerFirst(sh.Behavior))
		}
	default:
		suggestions = append(suggestions, "Keep the tension alive between "+lowerFirst(def.Desire)+" and "+lowerFirst(def.Fear)+".")
	}
	return suggestions
}

func joinLower(items []string) string {
	lowered := make([]string, len(items))
	for i, item := range items {
		lowered[i] = lowerFirst(item)
	}
	return strings.Join(lowered, ", ")
}
