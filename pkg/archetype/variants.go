package archetype

// evolvedForms holds the positive alternate form for each base archetype,
// keyed by evolved ID.
var evolvedForms = map[string]*EvolvedArchetype{
	"LEGEND": {
		ID:          "LEGEND",
		Name:        "The Legend",
		Icon:        "🏆",
		Origin:      "HERO",
		Description: "A hero whose deeds have outgrown their name. Courage has mellowed into quiet certainty.",
		Traits:      []string{"serene", "magnanimous", "inspiring", "humble"},
		Behavior:    "No longer needs to prove anything. Protects without fanfare, forgives without weakness, and lifts others into their own heroism.",
	},
	"SOVEREIGN": {
		ID:          "SOVEREIGN",
		Name:        "The Sovereign",
		Icon:        "🏛️",
		Origin:      "RULER",
		Description: "A ruler whose authority rests on earned trust rather than enforced obedience.",
		Traits:      []string{"just", "wise", "magnanimous", "steady"},
		Behavior:    "Rules with an open hand. Seeks counsel widely, shares credit freely, and treats power as stewardship for those who cannot hold it.",
	},
	"VIRTUOSO": {
		ID:          "VIRTUOSO",
		Name:        "The Virtuoso",
		Icon:        "🌟",
		Origin:      "CREATOR",
		Description: "A creator at peace with imperfection, whose work now flows instead of fights.",
		Traits:      []string{"masterful", "generous", "playful", "assured"},
		Behavior:    "Creates effortlessly and teaches eagerly. Finds more joy in another's breakthrough than in their own applause.",
	},
	"TRAILBLAZER": {
		ID:          "TRAILBLAZER",
		Name:        "The Trailblazer",
		Icon:        "🌄",
		Origin:      "EXPLORER",
		Description: "An explorer whose wandering has found its purpose: opening paths for others to follow.",
		Traits:      []string{"purposeful", "grounded", "generous", "bold"},
		Behavior:    "Still first over the ridge, but now leaves markers. Returns for the stragglers. The horizon is a gift to be shared.",
	},
	"REVOLUTIONARY": {
		ID:          "REVOLUTIONARY",
		Name:        "The Revolutionary",
		Icon:        "⚡",
		Origin:      "REBEL",
		Description: "A rebel whose fire has found its forge: tearing down only to build better.",
		Traits:      []string{"principled", "strategic", "charismatic", "disciplined"},
		Behavior:    "Channels outrage into change that lasts. Knows which walls to break and which to leave standing, and can tell the difference.",
	},
	"DEVOTED": {
		ID:          "DEVOTED",
		Name:        "The Devoted",
		Icon:        "💞",
		Origin:      "LOVER",
		Description: "A lover whose passion has deepened into devotion that asks nothing back.",
		Traits:      []string{"steadfast", "open-hearted", "secure", "radiant"},
		Behavior:    "Loves without grasping. Their presence steadies others; jealousy has burned away, leaving only warmth.",
	},
	"SAINT": {
		ID:          "SAINT",
		Name:        "The Saint",
		Icon:        "😇",
		Origin:      "INNOCENT",
		Description: "An innocent whose faith survived the proof of the world's cruelty, and was transfigured by it.",
		Traits:      []string{"luminous", "forgiving", "fearless", "gentle"},
		Behavior:    "Trusts with open eyes. Has seen the worst and chooses goodness anyway, which unsettles the wicked more than any sword.",
	},
	"ORACLE": {
		ID:          "ORACLE",
		Name:        "The Oracle",
		Icon:        "🔮",
		Origin:      "SAGE",
		Description: "A sage whose knowledge has ripened into wisdom, held lightly and given freely.",
		Traits:      []string{"insightful", "humble", "patient", "kind"},
		Behavior:    "Answers the question beneath the question. No longer needs to be right, which is precisely why they usually are.",
	},
	"VISIONARY": {
		ID:          "VISIONARY",
		Name:        "The Visionary",
		Icon:        "🌌",
		Origin:      "MAGICIAN",
		Description: "A magician who stopped performing and started transforming, openly and for everyone.",
		Traits:      []string{"transcendent", "transparent", "catalytic", "calm"},
		Behavior:    "Works wonders in plain sight and explains them afterward. Power shared is the only trick left worth doing.",
	},
	"PEACEMAKER": {
		ID:          "PEACEMAKER",
		Name:        "The Peacemaker",
		Icon:        "☮️",
		Origin:      "EVERYMAN",
		Description: "An everyman whose gift for common ground has become a quiet kind of greatness.",
		Traits:      []string{"unifying", "courageous", "warm", "unshakable"},
		Behavior:    "Stands between enemies without flinching. Ordinary decency, practiced long enough, turned out to be extraordinary.",
	},
	"GUARDIAN": {
		ID:          "GUARDIAN",
		Name:        "The Guardian",
		Icon:        "🛡️",
		Origin:      "CAREGIVER",
		Description: "A caregiver who learned that real care includes boundaries, and themselves.",
		Traits:      []string{"protective", "wise", "balanced", "enduring"},
		Behavior:    "Protects without smothering and gives without emptying. Teaches the protected to stand, then stands beside them.",
	},
	"WISE_FOOL": {
		ID:          "WISE_FOOL",
		Name:        "The Wise Fool",
		Icon:        "🃏",
		Origin:      "JESTER",
		Description: "A jester whose laughter became a lantern: the only one permitted to tell the king the truth.",
		Traits:      []string{"profound", "joyful", "fearless", "beloved"},
		Behavior:    "Jokes that heal, timed to the heartbeat of the room. The mask is off; the laughter was the truth all along.",
	},
}

// shadowForms holds the negative alternate form for each base archetype,
// keyed by shadow ID. Shadow is the only recoverable alternate state.
var shadowForms = map[string]*ShadowArchetype{
	"DESTROYER": {
		ID:             "DESTROYER",
		Name:           "The Destroyer",
		Icon:           "💀",
		Origin:         "HERO",
		Description:    "A hero who stopped protecting and started punishing. The strength remains; the cause is gone.",
		Traits:         []string{"wrathful", "bitter", "relentless", "hollow"},
		Behavior:       "Seeks battles for their own sake. Answers every slight with escalation and calls the wreckage justice.",
		RedemptionPath: "Someone worth protecting must need them again, and they must choose to shield rather than strike.",
	},
	"TYRANT": {
		ID:             "TYRANT",
		Name:           "The Tyrant",
		Icon:           "⛓️",
		Origin:         "RULER",
		Description:    "A ruler who confused control with order. The throne is secure; the realm is a prison.",
		Traits:         []string{"paranoid", "cruel", "grasping", "isolated"},
		Behavior:       "Rules by fear and audits loyalty hourly. Every empty corridor is proof of conspiracy.",
		RedemptionPath: "An act of mercy that costs them real power, chosen freely when cruelty would have been easier.",
	},
	"PERFECTIONIST": {
		ID:             "PERFECTIONIST",
		Name:           "The Perfectionist",
		Icon:           "🕸️",
		Origin:         "CREATOR",
		Description:    "A creator who can no longer finish anything, strangling every work in revision.",
		Traits:         []string{"obsessive", "scornful", "paralyzed", "envious"},
		Behavior:       "Destroys drafts, derides others' finished work, and calls the paralysis high standards.",
		RedemptionPath: "Releasing one imperfect work into the world and surviving its reception.",
	},
	"WANDERER": {
		ID:             "WANDERER",
		Name:           "The Wanderer",
		Icon:           "🌫️",
		Origin:         "EXPLORER",
		Description:    "An explorer with no destination left, moving because stopping would mean feeling.",
		Traits:         []string{"rootless", "numb", "evasive", "lonely"},
		Behavior:       "Leaves before dawn, before goodbyes, before anything can matter. The road is an anesthetic now.",
		RedemptionPath: "Staying. One place, one person, one season, long enough to be known.",
	},
	"ANARCHIST": {
		ID:             "ANARCHIST",
		Name:           "The Anarchist",
		Icon:           "🧨",
		Origin:         "REBEL",
		Description:    "A rebel whose cause burned away, leaving only the appetite for ruin.",
		Traits:         []string{"nihilistic", "destructive", "reckless", "untrusting"},
		Behavior:       "Breaks things to feel something. No demands, no terms, no after. The fire is the point.",
		RedemptionPath: "Finding one thing worth building and defending it against their own hands.",
	},
	"OBSESSIVE": {
		ID:             "OBSESSIVE",
		Name:           "The Obsessive",
		Icon:           "🥀",
		Origin:         "LOVER",
		Description:    "A lover who turned devotion into surveillance. What they cannot keep, they will not release.",
		Traits:         []string{"possessive", "jealous", "desperate", "suffocating"},
		Behavior:       "Counts glances, reads silences as betrayals, and mistakes control for closeness.",
		RedemptionPath: "Letting a beloved walk away freely, and discovering love that survives the open door.",
	},
	"VICTIM": {
		ID:             "VICTIM",
		Name:           "The Victim",
		Icon:           "💔",
		Origin:         "INNOCENT",
		Description:    "An innocent whose trust was punished until hoping itself began to feel dangerous.",
		Traits:         []string{"helpless", "fearful", "resigned", "clinging"},
		Behavior:       "Expects betrayal, apologizes for existing, and waits for rescue it no longer believes in.",
		RedemptionPath: "One small act of self-defense that works, proving the world can be pushed back.",
	},
	"DOGMATIST": {
		ID:             "DOGMATIST",
		Name:           "The Dogmatist",
		Icon:           "📕",
		Origin:         "SAGE",
		Description:    "A sage who closed the book. Certainty replaced curiosity, and the questions stopped.",
		Traits:         []string{"rigid", "condescending", "defensive", "bitter"},
		Behavior:       "Lectures instead of listens. Treats every challenge to their doctrine as a personal attack.",
		RedemptionPath: "Being wrong about something that matters, in public, and saying so.",
	},
	"MANIPULATOR": {
		ID:             "MANIPULATOR",
		Name:           "The Manipulator",
		Icon:           "🕳️",
		Origin:         "MAGICIAN",
		Description:    "A magician who began transforming people without their consent. Everyone is now a lever.",
		Traits:         []string{"scheming", "cold", "charming", "empty"},
		Behavior:       "Maintains webs of influence for their own sake. Honesty feels like nakedness; they have forgotten how.",
		RedemptionPath: "Telling one whole truth at their own expense, with nothing to gain from it.",
	},
	"CONFORMIST": {
		ID:             "CONFORMIST",
		Name:           "The Conformist",
		Icon:           "🐑",
		Origin:         "EVERYMAN",
		Description:    "An everyman who traded their voice for a seat at the table, any table.",
		Traits:         []string{"passive", "anxious", "invisible", "complicit"},
		Behavior:       "Agrees with the last speaker. Stands in the crowd at every stoning, never throwing, never objecting.",
		RedemptionPath: "Saying no, out loud, in front of the group whose approval they most fear losing.",
	},
	"MARTYR": {
		ID:             "MARTYR",
		Name:           "The Martyr",
		Icon:           "⚰️",
		Origin:         "CAREGIVER",
		Description:    "A caregiver who bleeds on schedule and keeps the receipts. Care became a ledger of grievance.",
		Traits:         []string{"resentful", "guilt-wielding", "exhausted", "controlling"},
		Behavior:       "Gives ostentatiously and suffers audibly. Help arrives wrapped in obligation.",
		RedemptionPath: "Accepting care from another without apology, repayment, or account-keeping.",
	},
	"MOCKER": {
		ID:             "MOCKER",
		Name:           "The Mocker",
		Icon:           "🗡️",
		Origin:         "JESTER",
		Description:    "A jester whose humor turned predatory. The laughter is still there; the kindness is not.",
		Traits:         []string{"cruel", "cynical", "defensive", "isolated"},
		Behavior:       "Finds the soft spot in every person and presses. Jokes are preemptive strikes now.",
		RedemptionPath: "Making someone laugh at nothing and no one's expense, and finding it still works.",
	},
}
