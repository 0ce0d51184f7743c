package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SpicyMarinara/rpg-companion/pkg/prompts"
)

func TestCompatibilityHandler(t *testing.T) {
	handler := NewCompatibilityHandler(testLogger())

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedScore  int
	}{
		{"synergy pair", "/v1/compatibility?a=CAREGIVER&b=LOVER", http.StatusOK, 2},
		{"conflict pair", "/v1/compatibility?a=rebel&b=ruler", http.StatusOK, -2},
		{"missing param", "/v1/compatibility?a=HERO", http.StatusBadRequest, 0},
		{"unknown archetype", "/v1/compatibility?a=HERO&b=NOBODY", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var d prompts.RelationshipDynamics
			if err := json.NewDecoder(rr.Body).Decode(&d); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if d.Score != tt.expectedScore {
				t.Errorf("Expected score %d, got %d", tt.expectedScore, d.Score)
			}
			if d.Description == "" {
				t.Error("Expected a description")
			}
		})
	}
}

func TestCompatibilityHandler_MethodNotAllowed(t *testing.T) {
	handler := NewCompatibilityHandler(testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/compatibility?a=HERO&b=SAGE", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}
