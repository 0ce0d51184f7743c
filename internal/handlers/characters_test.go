package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

func doJSON(handler *SessionHandler, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestSessionHandler_SetArchetype(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/aldric"

	rr := doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"hero"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var status evolution.Status
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}
	if status.Archetype != "HERO" {
		t.Errorf("Expected HERO, got %s", status.Archetype)
	}
	if status.Points != 0 {
		t.Errorf("Expected 0 points on assignment, got %.1f", status.Points)
	}
}

func TestSessionHandler_SetArchetypeUnknown(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)

	rr := doJSON(handler, http.MethodPut,
		"/v1/sessions/"+s.ID.String()+"/characters/aldric/archetype",
		`{"archetype":"NOBODY"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionHandler_RecordInteraction(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/aldric"

	doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"HERO"}`)

	rr := doJSON(handler, http.MethodPost, base+"/interactions",
		`{"type":"sacrifice","context":"held the gate"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result evolution.InteractionResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.Impact != 7 {
		t.Errorf("Expected impact 7 (base 5 + bonus 2), got %.1f", result.Impact)
	}
	if result.Points != 7 {
		t.Errorf("Expected 7 points, got %.1f", result.Points)
	}
}

func TestSessionHandler_RecordInteractionModifier(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/aldric"
	doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"SAGE"}`)

	rr := doJSON(handler, http.MethodPost, base+"/interactions",
		`{"type":"kindness","modifier":2.0}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var result evolution.InteractionResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if result.Impact != 6 {
		t.Errorf("Expected impact 6 (base 3 x2), got %.1f", result.Impact)
	}
}

func TestSessionHandler_RecordInteractionFailures(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/aldric"

	tests := []struct {
		name           string
		body           string
		setArchetype   bool
		expectedStatus int
	}{
		{"no archetype assigned", `{"type":"kindness"}`, false, http.StatusUnprocessableEntity},
		{"unknown interaction type", `{"type":"tickling"}`, true, http.StatusUnprocessableEntity},
		{"missing type", `{}`, true, http.StatusBadRequest},
		{"negative modifier", `{"type":"kindness","modifier":-1}`, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setArchetype {
				doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"HERO"}`)
			}
			rr := doJSON(handler, http.MethodPost, base+"/interactions", tt.body)
			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestSessionHandler_InteractionPersistsAcrossRequests(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/elena"

	doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"LOVER"}`)
	doJSON(handler, http.MethodPost, base+"/interactions", `{"type":"affection"}`)
	doJSON(handler, http.MethodPost, base+"/interactions", `{"type":"affection"}`)

	rr := doJSON(handler, http.MethodGet, base, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp CharacterResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// affection: base 3 + LOVER bonus 3 = 6 per interaction
	if resp.Status.Points != 12 {
		t.Errorf("Expected 12 points after two interactions, got %.1f", resp.Status.Points)
	}
	if resp.Status.TotalInteractions != 2 {
		t.Errorf("Expected 2 total interactions, got %d", resp.Status.TotalInteractions)
	}
	if len(resp.RecentInteractions) != 2 {
		t.Errorf("Expected 2 recent interactions, got %d", len(resp.RecentInteractions))
	}
}

func TestSessionHandler_EvolutionThroughAPI(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/aldric"

	doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"HERO"}`)

	// sacrifice lands 7 points per hit; the 15th crosses 100
	var result evolution.InteractionResult
	for i := 0; i < 15; i++ {
		rr := doJSON(handler, http.MethodPost, base+"/interactions", `{"type":"sacrifice"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("Interaction %d failed with status %d", i, rr.Code)
		}
		if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode result: %v", err)
		}
	}

	if result.Transition == nil {
		t.Fatal("Expected a transition on the final interaction")
	}
	if result.Transition.Name != "The Legend" {
		t.Errorf("Expected evolution to The Legend, got %s", result.Transition.Name)
	}

	rr := doJSON(handler, http.MethodGet, base, "")
	var resp CharacterResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status.State != evolution.StateEvolved {
		t.Errorf("Expected evolved state, got %s", resp.Status.State)
	}
}

func TestSessionHandler_RedemptionThroughAPI(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)
	base := "/v1/sessions/" + s.ID.String() + "/characters/marcus"

	doJSON(handler, http.MethodPut, base+"/archetype", `{"archetype":"REBEL"}`)

	// Redemption in base state fails with a structured result.
	rr := doJSON(handler, http.MethodPost, base+"/redemption", "")
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422 for base-state redemption, got %d", rr.Code)
	}

	// Drive into shadow: betrayal lands -8 per hit for the REBEL.
	for i := 0; i < 13; i++ {
		doJSON(handler, http.MethodPost, base+"/interactions", `{"type":"betrayal"}`)
	}
	rr = doJSON(handler, http.MethodGet, base, "")
	var resp CharacterResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status.State != evolution.StateShadow {
		t.Fatalf("Expected shadow state, got %s", resp.Status.State)
	}

	// Climb back above the redemption threshold.
	for resp.Status.Points < evolution.RedemptionThreshold {
		doJSON(handler, http.MethodPost, base+"/interactions", `{"type":"forgiveness"}`)
		rr = doJSON(handler, http.MethodGet, base, "")
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}

	rr = doJSON(handler, http.MethodPost, base+"/redemption", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for redemption, got %d: %s", rr.Code, rr.Body.String())
	}
	var redemption evolution.RedemptionResult
	if err := json.NewDecoder(rr.Body).Decode(&redemption); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if !redemption.Success {
		t.Fatalf("Expected redemption success, got %q", redemption.Error)
	}

	rr = doJSON(handler, http.MethodGet, base, "")
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status.State != evolution.StateBase {
		t.Errorf("Expected base state after redemption, got %s", resp.Status.State)
	}
	if resp.Status.Points != 0 {
		t.Errorf("Expected points reset to 0 after redemption, got %.1f", resp.Status.Points)
	}
}

func TestSessionHandler_CharacterStatusNotFound(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{}`)

	rr := doJSON(handler, http.MethodGet, "/v1/sessions/"+s.ID.String()+"/characters/ghost", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown character, got %d", rr.Code)
	}
}
