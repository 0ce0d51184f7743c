package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestArchetypeHandler_List(t *testing.T) {
	handler := NewArchetypeHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/archetypes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var items []ArchetypeListItem
	if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(items) != 12 {
		t.Errorf("Expected 12 archetypes, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "" || item.Name == "" || item.Summary == "" {
			t.Errorf("Incomplete list item: %+v", item)
		}
	}
}

func TestArchetypeHandler_Read(t *testing.T) {
	handler := NewArchetypeHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/archetypes/hero", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var detail ArchetypeDetail
	if err := json.NewDecoder(rr.Body).Decode(&detail); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if detail.ID != "HERO" {
		t.Errorf("Expected HERO, got %s", detail.ID)
	}
	if detail.Evolved == nil || detail.Evolved.Name != "The Legend" {
		t.Error("Expected evolved variant The Legend")
	}
	if detail.Shadow == nil || detail.Shadow.Name != "The Destroyer" {
		t.Error("Expected shadow variant The Destroyer")
	}
}

func TestArchetypeHandler_NotFound(t *testing.T) {
	handler := NewArchetypeHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/archetypes/NOBODY", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestArchetypeHandler_MethodNotAllowed(t *testing.T) {
	handler := NewArchetypeHandler(testLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/archetypes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
}
