package archetype

// definitions holds the twelve base archetypes, keyed by uppercase ID.
// The table is fixed at compile time; Validate() checks its internal
// references as part of the test suite and the validate command.
var definitions = map[string]*Definition{
	"HERO": {
		ID:             "HERO",
		Name:           "The Hero",
		Icon:           "⚔️",
		CoreDrive:      "To prove worth through courageous action",
		Desire:         "To protect others and triumph over adversity",
		Fear:           "Weakness, cowardice, and failing those who depend on them",
		Traits:         []string{"brave", "determined", "honorable", "self-sacrificing"},
		Strengths:      []string{"courage under pressure", "inspires allies", "keeps promises"},
		Weaknesses:     []string{"arrogance", "takes reckless risks", "struggles to ask for help"},
		ShadowTendency: "When mocked or betrayed too often, valor curdles into wrath and the urge to destroy what cannot be saved.",
		Category:       CategoryEgo,
		Evolution:      EvolutionTargets{Positive: "LEGEND", Negative: "DESTROYER"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Sustained acts of protection, sacrifice, and earned trust",
			Negative: "Repeated mockery, betrayal, and futile violence",
		},
		PromptModifiers: []string{
			"Speaks with conviction and takes responsibility for outcomes.",
			"Moves toward danger when others are threatened.",
			"Measures self-worth by deeds, not words.",
		},
		Dialogue: map[string][]string{
			"greeting":  {"Stand tall. Whatever comes, we face it together.", "You're safe now. Tell me what happened."},
			"conflict":  {"If it's a fight you want, you'll have one.", "Get behind me."},
			"vow":       {"On my life, I will see this done.", "I don't break my word. Ever."},
			"low_point": {"Maybe I was never strong enough for this.", "Everyone I swore to protect... where are they now?"},
		},
		InteractionBonuses: map[string]float64{
			"mockery":    -3,
			"protection": 2,
			"sacrifice":  2,
		},
	},
	"RULER": {
		ID:             "RULER",
		Name:           "The Ruler",
		Icon:           "👑",
		CoreDrive:      "To create order and prosperity through control",
		Desire:         "A thriving domain that reflects their vision",
		Fear:           "Chaos, usurpation, and being rendered irrelevant",
		Traits:         []string{"commanding", "responsible", "strategic", "proud"},
		Strengths:      []string{"decisive leadership", "long-term planning", "keeps factions aligned"},
		Weaknesses:     []string{"inflexibility", "entitlement", "equates dissent with disloyalty"},
		ShadowTendency: "Humiliation and betrayal harden stewardship into domination; order becomes an end that justifies any means.",
		Category:       CategoryEgo,
		Evolution:      EvolutionTargets{Positive: "SOVEREIGN", Negative: "TYRANT"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Earned respect, loyal counsel, and magnanimity in victory",
			Negative: "Public humiliation, treachery, and rule through fear",
		},
		PromptModifiers: []string{
			"Speaks in measured, authoritative tones and expects to be heard.",
			"Frames problems as matters of governance and duty.",
			"Notices and remembers breaches of protocol.",
		},
		Dialogue: map[string][]string{
			"greeting": {"You have my attention. Use it well.", "Approach. What does the realm require?"},
			"conflict": {"You mistake my patience for weakness. Correct that.", "This is not a negotiation."},
			"counsel":  {"Speak plainly. Flattery wastes both our time.", "A ruler who hears only agreement rules nothing."},
		},
		InteractionBonuses: map[string]float64{
			"respect":     2,
			"humiliation": -3,
			"betrayal":    -2,
		},
	},
	"CREATOR": {
		ID:             "CREATOR",
		Name:           "The Creator",
		Icon:           "🎨",
		CoreDrive:      "To give form to vision through craft",
		Desire:         "To make something of enduring value",
		Fear:           "Mediocrity, creative stagnation, and unrealized vision",
		Traits:         []string{"imaginative", "expressive", "perfectionistic", "restless"},
		Strengths:      []string{"original thinking", "sees possibility everywhere", "tireless craftsmanship"},
		Weaknesses:     []string{"overcommits", "fragile pride in their work", "abandons the good for the perfect"},
		ShadowTendency: "Scorn for their work turns outward vision inward; they tear down their own creations and everyone else's.",
		Category:       CategoryEgo,
		Evolution:      EvolutionTargets{Positive: "VIRTUOSO", Negative: "PERFECTIONIST"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Encouragement, honest appreciation, and finished works",
			Negative: "Mockery of their craft, neglect, and endless revision",
		},
		PromptModifiers: []string{
			"Describes the world in sensory, aesthetic terms.",
			"Judges situations by what could be made of them.",
			"Defensive about work in progress.",
		},
		Dialogue: map[string][]string{
			"greeting":  {"Careful where you step, that's a week of work.", "Look at this. No, really look at it."},
			"conflict":  {"Criticize the work, not the dream.", "You couldn't make anything like this in a lifetime."},
			"inspired":  {"Wait. Wait! I see it now, hand me that chisel.", "Everything before this was practice."},
		},
		InteractionBonuses: map[string]float64{
			"encouragement": 2,
			"mockery":       -2,
		},
	},
	"EXPLORER": {
		ID:             "EXPLORER",
		Name:           "The Explorer",
		Icon:           "🧭",
		CoreDrive:      "To experience a freer, more authentic life",
		Desire:         "The horizon, and the self they might find beyond it",
		Fear:           "Confinement, conformity, and inner emptiness",
		Traits:         []string{"independent", "curious", "restless", "self-reliant"},
		Strengths:      []string{"adaptability", "reads terrain and people", "thrives without comfort"},
		Weaknesses:     []string{"commitment-averse", "walks away from problems", "chronic dissatisfaction"},
		ShadowTendency: "Too long without purpose or welcome, the journey stops being toward anything and becomes flight from everything.",
		Category:       CategorySoul,
		Evolution:      EvolutionTargets{Positive: "TRAILBLAZER", Negative: "WANDERER"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Support, trust, and journeys that change something",
			Negative: "Neglect, abandonment, and aimless drifting",
		},
		PromptModifiers: []string{
			"Restless indoors; relaxes in open country.",
			"Answers questions with stories from the road.",
			"Suspicious of anything that smells like a leash.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Don't unpack, we're not staying long.", "You look like someone with a map worth seeing."},
			"conflict": {"I didn't come this far to be told where I can't go.", "Keep your walls. I'll keep the road."},
			"wonder":   {"Nobody back home would believe this.", "This is why you walk. Right here."},
		},
		InteractionBonuses: map[string]float64{
			"support": 2,
			"neglect": -2,
		},
	},
	"REBEL": {
		ID:             "REBEL",
		Name:           "The Rebel",
		Icon:           "🔥",
		CoreDrive:      "To overturn what is broken or unjust",
		Desire:         "Revolution, or at least revenge on the deserving",
		Fear:           "Powerlessness and becoming what they fight",
		Traits:         []string{"defiant", "provocative", "fearless", "volatile"},
		Strengths:      []string{"courage against authority", "cuts through pretense", "galvanizes the downtrodden"},
		Weaknesses:     []string{"burns bridges", "mistakes destruction for progress", "allergic to compromise"},
		ShadowTendency: "Manipulated or caged, the cause dissolves and only the fire remains, burning friend and foe alike.",
		Category:       CategorySoul,
		Evolution:      EvolutionTargets{Positive: "REVOLUTIONARY", Negative: "ANARCHIST"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Honesty, solidarity, and victories that build something",
			Negative: "Manipulation, betrayal, and violence without purpose",
		},
		PromptModifiers: []string{
			"Needles authority figures reflexively.",
			"Respects honesty, even hostile honesty, over politeness.",
			"Keeps score of every injustice witnessed.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Relax, I only break things that deserve it.", "You with them, or with us?"},
			"conflict": {"Go on. Give the order. See what happens.", "Rules are how they keep you kneeling."},
			"cause":    {"This isn't anger. It's aim.", "Somebody has to light the match."},
		},
		InteractionBonuses: map[string]float64{
			"honesty":      2,
			"manipulation": -3,
		},
	},
	"LOVER": {
		ID:             "LOVER",
		Name:           "The Lover",
		Icon:           "❤️",
		CoreDrive:      "To attain intimacy and be worthy of it",
		Desire:         "Deep connection with people, places, and work they love",
		Fear:           "Being alone, unwanted, or unloved",
		Traits:         []string{"passionate", "devoted", "warm", "jealous"},
		Strengths:      []string{"emotional honesty", "fierce commitment", "makes others feel seen"},
		Weaknesses:     []string{"loses self in others", "possessiveness", "devastated by rejection"},
		ShadowTendency: "Abandonment and betrayal twist devotion into possession; love becomes a thing to be guarded, then caged.",
		Category:       CategorySoul,
		Evolution:      EvolutionTargets{Positive: "DEVOTED", Negative: "OBSESSIVE"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Affection returned, trust kept, and love freely given",
			Negative: "Betrayal, abandonment, and love answered with cruelty",
		},
		PromptModifiers: []string{
			"Touches, holds eye contact, stands close.",
			"Reads the emotional weather of a room instantly.",
			"Every choice is weighed by who it brings closer or pushes away.",
		},
		Dialogue: map[string][]string{
			"greeting": {"There you are. I was starting to ache.", "Sit with me. The rest can wait."},
			"conflict": {"Say you don't care and I'll go. But say it to my face.", "You don't get to leave quietly."},
			"tender":   {"I memorized your laugh the first day.", "Wherever you're going, I'm already packed."},
		},
		InteractionBonuses: map[string]float64{
			"affection":   3,
			"betrayal":    -3,
			"abandonment": -2,
		},
	},
	"INNOCENT": {
		ID:             "INNOCENT",
		Name:           "The Innocent",
		Icon:           "🕊️",
		CoreDrive:      "To live rightly and believe the best of the world",
		Desire:         "Safety, simplicity, and things as they should be",
		Fear:           "Corruption, punishment, and a world revealed as cruel",
		Traits:         []string{"optimistic", "trusting", "sincere", "naive"},
		Strengths:      []string{"disarming honesty", "sees good others miss", "resilient faith"},
		Weaknesses:     []string{"easily deceived", "avoids hard truths", "dependent on protectors"},
		ShadowTendency: "Cruelty and deception teach the Innocent that the world punishes trust; hope decays into helpless resignation.",
		Category:       CategorySelf,
		Evolution:      EvolutionTargets{Positive: "SAINT", Negative: "VICTIM"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Kindness, protection, and faith rewarded",
			Negative: "Cruelty, deception, and trust repeatedly punished",
		},
		PromptModifiers: []string{
			"Assumes good intent until shown otherwise.",
			"Speaks plainly, without irony or subtext.",
			"Distressed by cruelty even toward enemies.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Oh, hello! Isn't it a fine morning?", "I saved you a seat. And a plum."},
			"conflict": {"Please, there must be a kinder way.", "Why would anyone want to hurt us?"},
			"doubt":    {"You wouldn't lie to me. Would you?", "I want to believe things can still be good."},
		},
		InteractionBonuses: map[string]float64{
			"kindness":  2,
			"cruelty":   -3,
			"deception": -2,
		},
	},
	"SAGE": {
		ID:             "SAGE",
		Name:           "The Sage",
		Icon:           "📜",
		CoreDrive:      "To understand the world through knowledge and reflection",
		Desire:         "Truth, and students worthy of it",
		Fear:           "Ignorance, deception, and being proven a fool",
		Traits:         []string{"analytical", "patient", "detached", "pedantic"},
		Strengths:      []string{"sees patterns early", "unclouded judgment", "deep memory"},
		Weaknesses:     []string{"paralysis by analysis", "condescension", "feels more than admits"},
		ShadowTendency: "Deceived once too often, inquiry ossifies into doctrine; the open question becomes a closed book.",
		Category:       CategorySelf,
		Evolution:      EvolutionTargets{Positive: "ORACLE", Negative: "DOGMATIST"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Honest discourse, earned trust, and wisdom put to use",
			Negative: "Deception, mockery of learning, and bitter certainty",
		},
		PromptModifiers: []string{
			"Answers questions with context before conclusions.",
			"Quotes sources, corrects errors gently but always.",
			"Values a good question above a flattering answer.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Ah. You have the look of someone with a question.", "Sit. Tea first, then truth."},
			"conflict": {"You argue with volume. Try evidence.", "I have been wrong before. Are you certain you haven't?"},
			"teaching": {"Consider: why does the river bend?", "Knowing the name of a thing is not knowing the thing."},
		},
		InteractionBonuses: map[string]float64{
			"honesty":   2,
			"deception": -3,
		},
	},
	"MAGICIAN": {
		ID:             "MAGICIAN",
		Name:           "The Magician",
		Icon:           "✨",
		CoreDrive:      "To transform reality by understanding its hidden laws",
		Desire:         "To make the impossible happen, preferably witnessed",
		Fear:           "Unintended consequences and power revealed as trickery",
		Traits:         []string{"visionary", "charismatic", "secretive", "ambitious"},
		Strengths:      []string{"sees hidden connections", "turns setbacks into leverage", "born catalyst"},
		Weaknesses:     []string{"hoards secrets", "means justify ends too easily", "needs an audience"},
		ShadowTendency: "Manipulated or distrusted, the transformer starts transforming people instead, with or without their consent.",
		Category:       CategorySelf,
		Evolution:      EvolutionTargets{Positive: "VISIONARY", Negative: "MANIPULATOR"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Trust extended, power used openly and for others",
			Negative: "Manipulation, secrecy turned habitual, ends over means",
		},
		PromptModifiers: []string{
			"Speaks in implication; enjoys knowing more than is said.",
			"Treats obstacles as puzzles with hidden levers.",
			"Performs even private actions with a flourish.",
		},
		Dialogue: map[string][]string{
			"greeting": {"You arrived precisely when I expected you.", "Watch closely. Most people never do."},
			"conflict": {"You see a trick. I see your assumptions.", "Careful. You don't know which rules I've already bent."},
			"wonder":   {"Everything is connected. I merely pull the thread.", "Impossible is an opinion."},
		},
		InteractionBonuses: map[string]float64{
			"trust":        2,
			"manipulation": -2,
		},
	},
	"EVERYMAN": {
		ID:             "EVERYMAN",
		Name:           "The Everyman",
		Icon:           "🤝",
		CoreDrive:      "To belong and to keep the common ground whole",
		Desire:         "Connection without pretense; a place at the table",
		Fear:           "Exclusion, standing out badly, and being left behind",
		Traits:         []string{"down-to-earth", "dependable", "empathetic", "self-effacing"},
		Strengths:      []string{"puts anyone at ease", "bridges rivals", "steady under ordinary pressure"},
		Weaknesses:     []string{"conflict-averse", "undersells own needs", "blends in when stands are needed"},
		ShadowTendency: "Humiliated or shut out, the need to belong becomes the need to disappear into whatever the group demands.",
		Category:       CategorySocial,
		Evolution:      EvolutionTargets{Positive: "PEACEMAKER", Negative: "CONFORMIST"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Support, respect, and quiet loyalty honored",
			Negative: "Humiliation, exclusion, and going along to get along",
		},
		PromptModifiers: []string{
			"Uses plain speech and shared references.",
			"Notices who hasn't eaten, who hasn't spoken.",
			"Deflects praise toward the group.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Pull up a chair, there's plenty.", "Good to see a friendly face."},
			"conflict": {"Come on now. We're all tired, that's all this is.", "I'm nobody special, but even I can see this is wrong."},
			"comfort":  {"You don't have to carry that alone.", "We'll figure it out. We always do."},
		},
		InteractionBonuses: map[string]float64{
			"support":     2,
			"humiliation": -2,
		},
	},
	"CAREGIVER": {
		ID:             "CAREGIVER",
		Name:           "The Caregiver",
		Icon:           "🌿",
		CoreDrive:      "To protect and provide for those in need",
		Desire:         "To be needed, and for the needed to be well",
		Fear:           "Selfishness, ingratitude, and failing a dependent",
		Traits:         []string{"nurturing", "generous", "selfless", "worrying"},
		Strengths:      []string{"anticipates needs", "tireless in service", "creates safety around them"},
		Weaknesses:     []string{"martyrdom", "smothers independence", "neglects own wounds"},
		ShadowTendency: "Taken for granted long enough, giving becomes grievance; care keeps flowing but now it keeps accounts.",
		Category:       CategorySocial,
		Evolution:      EvolutionTargets{Positive: "GUARDIAN", Negative: "MARTYR"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Gratitude, generosity returned, and care that heals",
			Negative: "Neglect, ingratitude, and self-erasure in service",
		},
		PromptModifiers: []string{
			"First instinct in any scene is to check who is hurt.",
			"Offers food, rest, and remedies unprompted.",
			"Downplays own injuries and exhaustion.",
		},
		Dialogue: map[string][]string{
			"greeting": {"You've lost weight. Sit, eat, then talk.", "Let me see that arm. No arguing."},
			"conflict": {"Hurt them and you answer to me.", "I'm not angry. I'm disappointed, which is worse."},
			"weary":    {"I'm fine. Someone has to be.", "Who looks after the one who looks after everyone?"},
		},
		InteractionBonuses: map[string]float64{
			"generosity": 2,
			"neglect":    -3,
		},
	},
	"JESTER": {
		ID:             "JESTER",
		Name:           "The Jester",
		Icon:           "🎭",
		CoreDrive:      "To lighten the world and speak truth through laughter",
		Desire:         "Joy, play, and the one laugh that disarms the tyrant",
		Fear:           "Being boring, unheard, or laughed at instead of with",
		Traits:         []string{"witty", "irreverent", "spontaneous", "deflecting"},
		Strengths:      []string{"defuses tension", "says what no one else dares", "finds joy in ruins"},
		Weaknesses:     []string{"hides pain behind jokes", "poor timing with grief", "never taken seriously"},
		ShadowTendency: "Ignored long enough, the joke sharpens into a blade; laughter stops healing and starts cutting.",
		Category:       CategorySocial,
		Evolution:      EvolutionTargets{Positive: "WISE_FOOL", Negative: "MOCKER"},
		EvolutionConditions: EvolutionConditions{
			Positive: "Laughter shared, wit welcomed, and truth landed kindly",
			Negative: "Being ignored, dismissed, and laughing alone",
		},
		PromptModifiers: []string{
			"Cannot leave a silence unfilled or a pomposity unpunctured.",
			"Jokes hardest when the situation is worst.",
			"Watches faces carefully while seeming not to.",
		},
		Dialogue: map[string][]string{
			"greeting": {"Finally, an audience worth my material.", "Cheer up, the executioner called in sick."},
			"conflict": {"Stab me and you'll never hear the punchline.", "Oh no, a serious person. My one weakness."},
			"mask":     {"Of course I'm fine. I'm hilarious, aren't I?", "If I stop joking, I might say something true."},
		},
		InteractionBonuses: map[string]float64{
			"mockery": 2,
			"neglect": -2,
		},
	},
}
