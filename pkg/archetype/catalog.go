package archetype

import (
	"fmt"
	"math/rand"
	"sort"
)

// Get returns the base archetype with the given uppercase ID, or nil when
// unknown. Callers must nil-check.
func Get(id string) *Definition {
	return definitions[id]
}

// GetEvolved returns the evolved form with the given ID, or nil.
func GetEvolved(id string) *EvolvedArchetype {
	return evolvedForms[id]
}

// GetShadow returns the shadow form with the given ID, or nil.
func GetShadow(id string) *ShadowArchetype {
	return shadowForms[id]
}

// All returns the twelve base archetypes in stable ID order.
func All() []*Definition {
	ids := make([]string, 0, len(definitions))
	for id := range definitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	defs := make([]*Definition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, definitions[id])
	}
	return defs
}

// Random draws a uniformly random base archetype using the supplied source.
// When category is non-empty, the draw is restricted to that category's
// subset. Returns nil for an unknown or empty category.
func Random(r *rand.Rand, category Category) *Definition {
	pool := All()
	if category != "" {
		filtered := pool[:0]
		for _, d := range pool {
			if d.Category == category {
				filtered = append(filtered, d)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[r.Intn(len(pool))]
}

// Validate checks the internal consistency of the static tables: every
// archetype's evolution targets must resolve to a variant originating from
// it, every interaction bonus key must resolve in the vocabulary, and every
// compatibility reference must name a known archetype. Run by the test
// suite and the validate command.
func Validate() error {
	if len(definitions) != 12 {
		return fmt.Errorf("expected 12 base archetypes, found %d", len(definitions))
	}

	for id, d := range definitions {
		if id != d.ID {
			return fmt.Errorf("archetype %q keyed under %q", d.ID, id)
		}
		ev := GetEvolved(d.Evolution.Positive)
		if ev == nil {
			return fmt.Errorf("archetype %s: evolved form %q not found", id, d.Evolution.Positive)
		}
		if ev.Origin != id {
			return fmt.Errorf("evolved form %s: origin %q, expected %s", ev.ID, ev.Origin, id)
		}
		sh := GetShadow(d.Evolution.Negative)
		if sh == nil {
			return fmt.Errorf("archetype %s: shadow form %q not found", id, d.Evolution.Negative)
		}
		if sh.Origin != id {
			return fmt.Errorf("shadow form %s: origin %q, expected %s", sh.ID, sh.Origin, id)
		}
		switch d.Category {
		case CategoryEgo, CategorySoul, CategorySelf, CategorySocial:
		default:
			return fmt.Errorf("archetype %s: unknown category %q", id, d.Category)
		}
		for tag := range d.InteractionBonuses {
			if _, ok := Vocabulary[tag]; !ok {
				return fmt.Errorf("archetype %s: bonus tag %q not in vocabulary", id, tag)
			}
		}
	}

	for a, row := range compatibilityMatrix {
		if Get(a) == nil {
			return fmt.Errorf("compatibility row for unknown archetype %q", a)
		}
		for b, score := range row {
			if Get(b) == nil {
				return fmt.Errorf("compatibility entry %s -> unknown archetype %q", a, b)
			}
			if score < -2 || score > 2 {
				return fmt.Errorf("compatibility %s -> %s: score %d out of range", a, b, score)
			}
		}
	}

	return nil
}
