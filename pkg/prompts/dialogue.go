package prompts

import (
	"math/rand"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
)

// Emotion keys recognized by GetDialogueFlavor. Every archetype has a
// neutral entry; other emotions fall back to neutral when absent.
const (
	EmotionNeutral = "neutral"
	EmotionJoy     = "joy"
	EmotionAnger   = "anger"
	EmotionSorrow  = "sorrow"
	EmotionFear    = "fear"
)

var dialogueStyles = map[string]map[string]string{
	"HERO": {
		EmotionNeutral: "Direct, earnest sentences. Promises are made plainly and kept.",
		EmotionAnger:   "Clipped and controlled; the voice drops rather than rises.",
		EmotionFear:    "Fear is admitted only as a reason to act faster.",
	},
	"RULER": {
		EmotionNeutral: "Measured, formal diction. Speaks in decrees and expectations.",
		EmotionAnger:   "Icy precision; displeasure is delivered as a verdict.",
		EmotionJoy:     "Approval is bestowed, warm but never unguarded.",
	},
	"CREATOR": {
		EmotionNeutral: "Vivid, tactile language; describes the world in materials and possibilities.",
		EmotionJoy:     "Breathless, tumbling sentences about the thing being made.",
		EmotionSorrow:  "Speaks through metaphor, grieving in images rather than statements.",
	},
	"EXPLORER": {
		EmotionNeutral: "Loose, wandering cadence; anecdotes from far places.",
		EmotionFear:    "Goes terse and practical, already mapping the way out.",
		EmotionJoy:     "Infectious wonder; invites everyone to come see for themselves.",
	},
	"REBEL": {
		EmotionNeutral: "Irreverent, provocative; rules are quoted only to mock them.",
		EmotionAnger:   "Loud, profane, and gleeful; anger is fuel, not loss of control.",
		EmotionSorrow:  "Hides grief under bravado; the jokes get meaner before the truth slips out.",
	},
	"LOVER": {
		EmotionNeutral: "Warm, intimate phrasing; addresses people by name and touchstone memories.",
		EmotionSorrow:  "Openly wounded; asks the questions others are afraid to voice.",
		EmotionJoy:     "Effusive and physical, pulling loved ones into the moment.",
	},
	"INNOCENT": {
		EmotionNeutral: "Simple, sincere, unguarded; says exactly what they mean.",
		EmotionFear:    "Small voice, seeks reassurance, clings to familiar comforts.",
		EmotionJoy:     "Unfiltered delight in small things; everything is the best thing.",
	},
	"SAGE": {
		EmotionNeutral: "Deliberate and precise; answers questions with better questions.",
		EmotionAnger:   "Never shouts; disappointment arrives as a carefully chosen observation.",
		EmotionSorrow:  "Turns to aphorism and memory, consoling themselves with perspective.",
	},
	"MAGICIAN": {
		EmotionNeutral: "Allusive and layered; says less than they know, implies more than they say.",
		EmotionJoy:     "A showman's flourish; delight expressed as revelation.",
		EmotionFear:    "Goes very still and very quiet; the performance stops.",
	},
	"EVERYMAN": {
		EmotionNeutral: "Plain, friendly talk; proverbs, weather, and how the family is doing.",
		EmotionSorrow:  "Understated; grief shows in practical gestures, not speeches.",
		EmotionAnger:   "Slow to ignite, blunt when it finally comes.",
	},
	"CAREGIVER": {
		EmotionNeutral: "Soft, attentive questions; always about the other person first.",
		EmotionFear:    "Worry voiced as care: have you eaten, are you warm, stay close.",
		EmotionAnger:   "Fierce only on someone else's behalf, never their own.",
	},
	"JESTER": {
		EmotionNeutral: "Rapid wordplay and nicknames; nothing said straight that can be said sideways.",
		EmotionSorrow:  "The humor turns gallows-dark, then briefly drops away entirely.",
		EmotionAnger:   "Weaponized mockery, precise and public.",
	},
}

// GetDialogueFlavor returns speaking-style guidance for the archetype in
// the given emotional register. Emotions without a dedicated entry fall
// back to the archetype's neutral style. Unknown archetypes return an
// empty string.
func GetDialogueFlavor(archetypeID, emotion string) string {
	styles, ok := dialogueStyles[archetypeID]
	if !ok {
		return ""
	}
	if style, ok := styles[emotion]; ok {
		return style
	}
	return styles[EmotionNeutral]
}

// SampleDialogue picks one of the archetype's canned lines for the given
// situation. The caller supplies the randomness source. Returns an empty
// string when the archetype is unknown or has no lines for the situation.
func SampleDialogue(archetypeID, situation string, r *rand.Rand) string {
	def := archetype.Get(archetypeID)
	if def == nil {
		return ""
	}
	lines := def.Dialogue[situation]
	if len(lines) == 0 {
		return ""
	}
	return lines[r.Intn(len(lines))]
}
