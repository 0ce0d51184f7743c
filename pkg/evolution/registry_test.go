package evolution

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRegistryGetManager(t *testing.T) {
	r := NewRegistry()

	if r.Has("elena") {
		t.Fatal("empty registry claims to track elena")
	}

	m := r.GetManager("elena")
	if m == nil {
		t.Fatal("GetManager returned nil")
	}
	if m.CharacterID() != "elena" {
		t.Errorf("character id = %q, want elena", m.CharacterID())
	}
	if m.Archetype() != "" {
		t.Errorf("lazily created manager has archetype %q", m.Archetype())
	}

	if r.GetManager("elena") != m {
		t.Error("second access returned a different manager")
	}
	if !r.Has("elena") {
		t.Error("registry does not report tracked character")
	}
}

func TestRegistryRemoveAndClear(t *testing.T) {
	r := NewRegistry()
	r.GetManager("elena").SetArchetype("HERO")
	r.GetManager("marcus").SetArchetype("SAGE")

	r.RemoveManager("elena")
	if r.Has("elena") {
		t.Error("elena still tracked after removal")
	}
	if !r.Has("marcus") {
		t.Error("removal dropped an unrelated manager")
	}

	r.Clear()
	if len(r.CharacterIDs()) != 0 {
		t.Errorf("cleared registry tracks %v", r.CharacterIDs())
	}
}

func TestRegistryCharacterIDs(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"zara", "elena", "marcus"} {
		r.GetManager(id)
	}
	got := r.CharacterIDs()
	want := []string{"elena", "marcus", "zara"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CharacterIDs() = %v, want %v", got, want)
	}
}

func TestRegistryExportImportRoundTrip(t *testing.T) {
	r := NewRegistry()
	elena := r.GetManager("elena")
	elena.SetArchetype("LOVER")
	elena.RecordInteraction("affection", 1, "reunion")
	marcus := r.GetManager("marcus")
	marcus.SetArchetype("REBEL")
	for marcus.State() == StateBase {
		marcus.RecordInteraction("betrayal", 2, "")
	}

	exported := r.ExportAll()
	if exported.Version != SavedStateVersion {
		t.Errorf("blob version = %d, want %d", exported.Version, SavedStateVersion)
	}

	// Persistence boundary: the blob must survive JSON serialization.
	data, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded SavedState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := NewRegistry()
	restored.LoadFromSaved(&decoded)

	if !reflect.DeepEqual(restored.CharacterIDs(), r.CharacterIDs()) {
		t.Fatalf("restored ids %v, want %v", restored.CharacterIDs(), r.CharacterIDs())
	}
	if got := restored.GetManager("marcus").State(); got != StateShadow {
		t.Errorf("marcus state = %s, want shadow", got)
	}
	if got := restored.GetManager("elena").Archetype(); got != "LOVER" {
		t.Errorf("elena archetype = %q, want LOVER", got)
	}

	// Compare serialized forms: JSON strips the monotonic clock reading
	// from timestamps, so struct equality is not meaningful here.
	reData, err := json.Marshal(restored.ExportAll())
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(reData) != string(data) {
		t.Error("export -> load -> export is not idempotent")
	}
}

func TestRegistryLoadReplacesContent(t *testing.T) {
	r := NewRegistry()
	r.GetManager("ghost").SetArchetype("HERO")

	other := NewRegistry()
	other.GetManager("elena").SetArchetype("SAGE")

	r.LoadFromSaved(other.ExportAll())
	if r.Has("ghost") {
		t.Error("load kept a manager not present in the blob")
	}
	if !r.Has("elena") {
		t.Error("load dropped a manager present in the blob")
	}

	r.LoadFromSaved(nil)
	if len(r.CharacterIDs()) != 0 {
		t.Errorf("nil blob left %v tracked", r.CharacterIDs())
	}
}
