package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// validate checks the built-in archetype catalog for internal
// consistency, and optionally validates exported session state files
// passed as arguments.
func main() {
	if err := archetype.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Catalog validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Archetype catalog is valid!")

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateSavedState(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

func validateSavedState(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var saved evolution.SavedState
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&saved); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	var errs []string
	if saved.Version != evolution.SavedStateVersion {
		errs = append(errs, fmt.Sprintf("unsupported version %d (expected %d)", saved.Version, evolution.SavedStateVersion))
	}

	for id, snap := range saved.Characters {
		if snap.CharacterID != "" && snap.CharacterID != id {
			errs = append(errs, fmt.Sprintf("character %q: snapshot character_id %q does not match map key", id, snap.CharacterID))
		}
		if snap.Archetype != "" && archetype.Get(snap.Archetype) == nil {
			errs = append(errs, fmt.Sprintf("character %q: unknown archetype %q", id, snap.Archetype))
		}
		if snap.Points < evolution.MinPoints || snap.Points > evolution.MaxPoints {
			errs = append(errs, fmt.Sprintf("character %q: evolution points %.1f outside [%.0f, %.0f]", id, snap.Points, evolution.MinPoints, evolution.MaxPoints))
		}
		switch snap.State {
		case evolution.StateBase, evolution.StateEvolved, evolution.StateShadow, "":
		default:
			errs = append(errs, fmt.Sprintf("character %q: unknown state %q", id, snap.State))
		}
		for i, rec := range snap.Interactions {
			if _, ok := archetype.GetInteraction(rec.Type); !ok {
				errs = append(errs, fmt.Sprintf("character %q: interaction %d has unknown type %q", id, i, rec.Type))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(errs, "\n"))
	}
	return nil
}
