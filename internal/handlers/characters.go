package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// SetArchetypeRequest defines the request body for assigning an archetype.
type SetArchetypeRequest struct {
	Archetype string `json:"archetype"`
}

// InteractionRequest defines the request body for recording an interaction.
// Modifier defaults to 1.0 when omitted.
type InteractionRequest struct {
	Type     string   `json:"type"`
	Modifier *float64 `json:"modifier,omitempty"`
	Context  string   `json:"context,omitempty"`
}

// CharacterResponse is the full per-character view: current status plus
// prompt guidance and recent history.
type CharacterResponse struct {
	Status             *evolution.Status             `json:"status"`
	PromptModifiers    []string                      `json:"prompt_modifiers,omitempty"`
	RecentInteractions []evolution.InteractionRecord `json:"recent_interactions,omitempty"`
	Stats              *evolution.InteractionStats   `json:"stats,omitempty"`
}

func (h *SessionHandler) handleSetArchetype(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, characterID string) {
	var req SetArchetypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	id := strings.ToUpper(req.Archetype)
	if archetype.Get(id) == nil {
		h.logger.Warn("Unknown archetype", "archetype", req.Archetype)
		writeError(w, h.logger, http.StatusBadRequest, "Unknown archetype: "+req.Archetype)
		return
	}

	s, err := h.loadSession(w, r, sessionID)
	if s == nil || err != nil {
		return
	}

	reg := s.Registry()
	m := reg.GetManager(characterID)
	m.SetArchetype(id)
	s.Capture(reg)

	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", sessionID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	h.logger.Debug("Archetype assigned", "session", sessionID.String(), "character", characterID, "archetype", id)
	writeJSON(w, h.logger, http.StatusOK, m.Status())
}

func (h *SessionHandler) handleInteraction(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, characterID string) {
	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Type == "" {
		writeError(w, h.logger, http.StatusBadRequest, "type field is required")
		return
	}

	modifier := 1.0
	if req.Modifier != nil {
		if *req.Modifier <= 0 {
			writeError(w, h.logger, http.StatusBadRequest, "modifier must be positive")
			return
		}
		modifier = *req.Modifier
	}

	s, err := h.loadSession(w, r, sessionID)
	if s == nil || err != nil {
		return
	}

	reg := s.Registry()
	m := reg.GetManager(characterID)
	result := m.RecordInteraction(req.Type, modifier, req.Context)
	if !result.Success {
		h.logger.Warn("Interaction rejected", "session", sessionID.String(), "character", characterID, "reason", result.Error)
		writeJSON(w, h.logger, http.StatusUnprocessableEntity, result)
		return
	}

	s.Capture(reg)
	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", sessionID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	if result.Transition != nil {
		h.logger.Info("Character transitioned",
			"session", sessionID.String(),
			"character", characterID,
			"type", result.Transition.Type,
			"to", result.Transition.To)
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *SessionHandler) handleRedemption(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, characterID string) {
	s, err := h.loadSession(w, r, sessionID)
	if s == nil || err != nil {
		return
	}

	reg := s.Registry()
	m := reg.GetManager(characterID)
	result := m.AttemptRedemption()
	if !result.Success {
		h.logger.Debug("Redemption rejected", "session", sessionID.String(), "character", characterID, "reason", result.Error)
		writeJSON(w, h.logger, http.StatusUnprocessableEntity, result)
		return
	}

	s.Capture(reg)
	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save session", "error", err, "id", sessionID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	h.logger.Info("Character redeemed", "session", sessionID.String(), "character", characterID)
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *SessionHandler) handleCharacterStatus(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID, characterID string) {
	s, err := h.loadSession(w, r, sessionID)
	if s == nil || err != nil {
		return
	}

	reg := s.Registry()
	if !reg.Has(characterID) {
		h.logger.Warn("Character not found", "session", sessionID.String(), "character", characterID)
		writeError(w, h.logger, http.StatusNotFound, "Character not found: "+characterID)
		return
	}

	m := reg.GetManager(characterID)
	resp := CharacterResponse{
		Status:             m.Status(),
		PromptModifiers:    m.PromptModifiers(),
		RecentInteractions: m.RecentInteractions(10),
		Stats:              m.InteractionStats(),
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}
