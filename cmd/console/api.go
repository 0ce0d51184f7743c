package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// ArchetypeListItem mirrors the API's catalog list response.
type ArchetypeListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

func listArchetypes(client *http.Client, baseURL string) ([]ArchetypeListItem, error) {
	resp, err := client.Get(baseURL + "/v1/archetypes")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to list archetypes")
	}

	var items []ArchetypeListItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse archetype list: %w", err)
	}
	return items, nil
}

// CreateSessionRequest mirrors the API request structure
type CreateSessionRequest struct {
	Name  string                `json:"name,omitempty"`
	State *evolution.SavedState `json:"state,omitempty"`
}

func createSession(client *http.Client, baseURL, name string, saved *evolution.SavedState) (*session.Session, error) {
	jsonData, err := json.Marshal(CreateSessionRequest{Name: name, State: saved})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(baseURL+"/v1/sessions", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp.StatusCode, body, "failed to create session")
	}

	var s session.Session
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &s, nil
}

func getSession(client *http.Client, baseURL string, id uuid.UUID) (*session.Session, error) {
	resp, err := client.Get(fmt.Sprintf("%s/v1/sessions/%s", baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to get session")
	}

	var s session.Session
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &s, nil
}

// SetArchetypeRequest mirrors the API request structure
type SetArchetypeRequest struct {
	Archetype string `json:"archetype"`
}

func setArchetype(client *http.Client, baseURL string, sessionID uuid.UUID, characterID, archetypeID string) (*evolution.Status, error) {
	jsonData, err := json.Marshal(SetArchetypeRequest{Archetype: archetypeID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/characters/%s/archetype", baseURL, sessionID, characterID)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to set archetype")
	}

	var status evolution.Status
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}
	return &status, nil
}

// InteractionRequest mirrors the API request structure
type InteractionRequest struct {
	Type     string   `json:"type"`
	Modifier *float64 `json:"modifier,omitempty"`
	Context  string   `json:"context,omitempty"`
}

func recordInteraction(client *http.Client, baseURL string, sessionID uuid.UUID, characterID string, req InteractionRequest) (*evolution.InteractionResult, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/sessions/%s/characters/%s/interactions", baseURL, sessionID, characterID)
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// 422 carries a structured failure result, not an error envelope
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnprocessableEntity {
		return nil, apiError(resp.StatusCode, body, "failed to record interaction")
	}

	var result evolution.InteractionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse interaction response: %w", err)
	}
	return &result, nil
}

func attemptRedemption(client *http.Client, baseURL string, sessionID uuid.UUID, characterID string) (*evolution.RedemptionResult, error) {
	url := fmt.Sprintf("%s/v1/sessions/%s/characters/%s/redemption", baseURL, sessionID, characterID)
	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnprocessableEntity {
		return nil, apiError(resp.StatusCode, body, "failed to attempt redemption")
	}

	var result evolution.RedemptionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse redemption response: %w", err)
	}
	return &result, nil
}

// CharacterResponse mirrors the API's per-character view.
type CharacterResponse struct {
	Status             *evolution.Status             `json:"status"`
	PromptModifiers    []string                      `json:"prompt_modifiers,omitempty"`
	RecentInteractions []evolution.InteractionRecord `json:"recent_interactions,omitempty"`
	Stats              *evolution.InteractionStats   `json:"stats,omitempty"`
}

func getCharacter(client *http.Client, baseURL string, sessionID uuid.UUID, characterID string) (*CharacterResponse, error) {
	url := fmt.Sprintf("%s/v1/sessions/%s/characters/%s", baseURL, sessionID, characterID)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body, "failed to get character")
	}

	var cr CharacterResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to parse character response: %w", err)
	}
	return &cr, nil
}

func apiError(status int, body []byte, context string) error {
	var errorResp ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
		return fmt.Errorf("API returned status %d: %s", status, string(body))
	}
	return fmt.Errorf("%s: %s", context, errorResp.Error)
}
