package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/internal/storage"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

type SessionHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewSessionHandler(logger *slog.Logger, storage storage.Storage) *SessionHandler {
	return &SessionHandler{
		storage: storage,
		logger:  logger,
	}
}

// CreateSessionRequest defines the request body for creating a session.
// State is optional; when present it imports a previously exported blob.
type CreateSessionRequest struct {
	Name  string                `json:"name,omitempty"`
	State *evolution.SavedState `json:"state,omitempty"`
}

// ServeHTTP handles session and character operations.
// Routes:
// POST   /v1/sessions                                        - Create session (optionally importing state)
// GET    /v1/sessions                                        - List session IDs
// GET    /v1/sessions/{id}                                   - Read session
// DELETE /v1/sessions/{id}                                   - Delete session
// GET    /v1/sessions/{id}/characters/{char}                 - Character status
// PUT    /v1/sessions/{id}/characters/{char}/archetype       - Assign archetype
// POST   /v1/sessions/{id}/characters/{char}/interactions    - Record interaction
// POST   /v1/sessions/{id}/characters/{char}/redemption      - Attempt redemption
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")
	if path == "" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreate(w, r)
		case http.MethodGet:
			h.handleList(w, r)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET")
		}
		return
	}

	parts := strings.Split(path, "/")
	sessionID, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			h.handleRead(w, r, sessionID)
		case http.MethodDelete:
			h.handleDelete(w, r, sessionID)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
		}
		return
	}

	// Nested character routes
	if parts[1] != "characters" || len(parts) < 3 || parts[2] == "" {
		writeError(w, h.logger, http.StatusNotFound, "Not found")
		return
	}
	characterID := parts[2]

	switch {
	case len(parts) == 3 && r.Method == http.MethodGet:
		h.handleCharacterStatus(w, r, sessionID, characterID)
	case len(parts) == 4 && parts[3] == "archetype" && r.Method == http.MethodPut:
		h.handleSetArchetype(w, r, sessionID, characterID)
	case len(parts) == 4 && parts[3] == "interactions" && r.Method == http.MethodPost:
		h.handleInteraction(w, r, sessionID, characterID)
	case len(parts) == 4 && parts[3] == "redemption" && r.Method == http.MethodPost:
		h.handleRedemption(w, r, sessionID, characterID)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Not found")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("Invalid JSON in request body", "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
			return
		}
	}

	s := session.New(req.Name)
	if req.State != nil {
		// Round-trip through the registry so malformed snapshots are
		// normalized before the session is stored.
		reg := evolution.NewRegistry()
		reg.LoadFromSaved(req.State)
		s.Capture(reg)
	}

	if err := h.storage.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save new session", "error", err, "id", s.ID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Debug("Session created", "id", s.ID.String())
	writeJSON(w, h.logger, http.StatusCreated, s)
}

func (h *SessionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListSessions(r.Context())
	if err != nil {
		h.logger.Error("Failed to list sessions", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list sessions")
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	writeJSON(w, h.logger, http.StatusOK, ids)
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	s, err := h.loadSession(w, r, id)
	if s == nil || err != nil {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, s)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	h.logger.Debug("Session deleted", "id", id.String())
	w.WriteHeader(http.StatusNoContent)
}

// loadSession fetches a session and writes the error response itself when
// the session is missing or storage fails. Callers bail out on nil.
func (h *SessionHandler) loadSession(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*session.Session, error) {
	s, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return nil, err
	}
	if s == nil {
		h.logger.Warn("Session not found", "id", id.String())
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return nil, nil
	}
	return s, nil
}
