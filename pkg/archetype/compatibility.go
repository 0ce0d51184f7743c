package archetype

// compatibilityMatrix scores the affinity between two base archetypes on a
// -2..2 scale. Entries are stored in both directions by convention; lookups
// use the stored direction only, with 0 as the default for unlisted pairs.
var compatibilityMatrix = map[string]map[string]int{
	"HERO": {
		"HERO": 0, "CAREGIVER": 2, "INNOCENT": 2,
		"RULER": 1, "SAGE": 1, "EVERYMAN": 1, "LOVER": 1,
		"REBEL": -1, "MAGICIAN": -1,
	},
	"RULER": {
		"SAGE": 2, "CAREGIVER": 1, "HERO": 1, "EVERYMAN": 1,
		"REBEL": -2, "JESTER": -1, "EXPLORER": -1,
	},
	"CREATOR": {
		"MAGICIAN": 2, "EXPLORER": 1, "JESTER": 1, "SAGE": 1, "INNOCENT": 1,
	},
	"EXPLORER": {
		"CREATOR": 1, "REBEL": 1, "MAGICIAN": 1, "JESTER": 1,
		"RULER": -1, "CAREGIVER": -1,
	},
	"REBEL": {
		"RULER": -2, "EXPLORER": 1, "JESTER": 1, "MAGICIAN": 1,
		"INNOCENT": -1, "HERO": -1, "EVERYMAN": -1, "SAGE": -1, "CAREGIVER": -1,
	},
	"LOVER": {
		"CAREGIVER": 2, "EVERYMAN": 1, "INNOCENT": 1, "JESTER": 1, "HERO": 1,
		"SAGE": -1, "MAGICIAN": -1,
	},
	"INNOCENT": {
		"CAREGIVER": 2, "HERO": 2,
		"EVERYMAN": 1, "LOVER": 1, "SAGE": 1, "CREATOR": 1,
		"REBEL": -1, "MAGICIAN": -1,
	},
	"SAGE": {
		"RULER": 2, "MAGICIAN": 1, "CREATOR": 1, "HERO": 1, "INNOCENT": 1,
		"JESTER": -1, "LOVER": -1, "REBEL": -1,
	},
	"MAGICIAN": {
		"CREATOR": 2, "SAGE": 1, "EXPLORER": 1, "REBEL": 1,
		"HERO": -1, "INNOCENT": -1, "LOVER": -1, "EVERYMAN": -1,
	},
	"EVERYMAN": {
		"CAREGIVER": 1, "LOVER": 1, "INNOCENT": 1, "HERO": 1, "JESTER": 1, "RULER": 1,
		"REBEL": -1, "MAGICIAN": -1,
	},
	"CAREGIVER": {
		"LOVER": 2, "INNOCENT": 2, "HERO": 2,
		"EVERYMAN": 1, "RULER": 1,
		"EXPLORER": -1, "REBEL": -1,
	},
	"JESTER": {
		"EXPLORER": 1, "REBEL": 1, "CREATOR": 1, "LOVER": 1, "EVERYMAN": 1,
		"RULER": -1, "SAGE": -1,
	},
}

// Compatibility returns the affinity score between two archetypes.
// Unknown archetypes and unlisted pairs score 0.
func Compatibility(a, b string) int {
	row, ok := compatibilityMatrix[a]
	if !ok {
		return 0
	}
	return row[b]
}
