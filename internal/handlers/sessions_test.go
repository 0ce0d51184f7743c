package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/internal/storage"
	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
	"github.com/SpicyMarinara/rpg-companion/pkg/session"
)

func newSessionHandler() (*SessionHandler, *storage.MockStorage) {
	mock := storage.NewMockStorage()
	return NewSessionHandler(testLogger(), mock), mock
}

func createSession(t *testing.T, handler *SessionHandler, body string) *session.Session {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBufferString("")
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", reader)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var s session.Session
	if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	return &s
}

func TestSessionHandler_Create(t *testing.T) {
	handler, _ := newSessionHandler()

	s := createSession(t, handler, `{"name":"tavern night"}`)
	if s.ID == uuid.Nil {
		t.Error("Expected a session ID")
	}
	if s.Name != "tavern night" {
		t.Errorf("Expected name 'tavern night', got %q", s.Name)
	}
}

func TestSessionHandler_CreateEmptyBody(t *testing.T) {
	handler, _ := newSessionHandler()

	s := createSession(t, handler, "")
	if s.ID == uuid.Nil {
		t.Error("Expected a session ID")
	}
}

func TestSessionHandler_CreateWithImportedState(t *testing.T) {
	handler, _ := newSessionHandler()

	// Build an export blob the way a client would.
	reg := evolution.NewRegistry()
	m := reg.GetManager("marcus")
	if !m.SetArchetype("REBEL") {
		t.Fatal("failed to assign archetype")
	}
	m.RecordInteraction("honesty", 1.0, "")
	saved := reg.ExportAll()

	body, err := json.Marshal(CreateSessionRequest{Name: "imported", State: saved})
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	s := createSession(t, handler, string(body))
	if s.State == nil {
		t.Fatal("Expected imported state")
	}
	restored := s.Registry().GetManager("marcus")
	if restored.Archetype() != "REBEL" {
		t.Errorf("Expected REBEL after import, got %s", restored.Archetype())
	}
	if restored.Points() != 4 {
		t.Errorf("Expected 4 points after import, got %.1f", restored.Points())
	}
}

func TestSessionHandler_CreateInvalidJSON(t *testing.T) {
	handler, _ := newSessionHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionHandler_ReadAndDelete(t *testing.T) {
	handler, _ := newSessionHandler()
	s := createSession(t, handler, `{"name":"test"}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+s.ID.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+s.ID.String(), nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/"+s.ID.String(), nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", rr.Code)
	}
}

func TestSessionHandler_List(t *testing.T) {
	handler, _ := newSessionHandler()
	createSession(t, handler, `{}`)
	createSession(t, handler, `{}`)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var ids []uuid.UUID
	if err := json.NewDecoder(rr.Body).Decode(&ids); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 sessions, got %d", len(ids))
	}
}

func TestSessionHandler_InvalidID(t *testing.T) {
	handler, _ := newSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestSessionHandler_NotFound(t *testing.T) {
	handler, _ := newSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.New().String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
