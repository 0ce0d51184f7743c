package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/archetype"
	"github.com/SpicyMarinara/rpg-companion/pkg/prompts"
)

// ArchetypeHandler serves the read-only archetype catalog.
type ArchetypeHandler struct {
	logger *slog.Logger
}

func NewArchetypeHandler(logger *slog.Logger) *ArchetypeHandler {
	return &ArchetypeHandler{logger: logger}
}

// ArchetypeListItem is the compact list representation of an archetype.
type ArchetypeListItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// ArchetypeDetail is the full representation, including both variants.
type ArchetypeDetail struct {
	*archetype.Definition
	Evolved *archetype.EvolvedArchetype `json:"evolved,omitempty"`
	Shadow  *archetype.ShadowArchetype  `json:"shadow,omitempty"`
}

// ServeHTTP handles archetype catalog requests.
// Routes:
// GET /v1/archetypes      - List all archetypes
// GET /v1/archetypes/{id} - Read one archetype with its variants
func (h *ArchetypeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for archetype endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/archetypes"), "/")
	if path == "" {
		h.handleList(w)
		return
	}
	h.handleRead(w, strings.ToUpper(path))
}

func (h *ArchetypeHandler) handleList(w http.ResponseWriter) {
	defs := archetype.All()
	items := make([]ArchetypeListItem, 0, len(defs))
	for _, def := range defs {
		items = append(items, ArchetypeListItem{
			ID:       def.ID,
			Name:     def.Name,
			Icon:     def.Icon,
			Category: string(def.Category),
			Summary:  prompts.GetArchetypeSummary(def.ID),
		})
	}
	writeJSON(w, h.logger, http.StatusOK, items)
}

func (h *ArchetypeHandler) handleRead(w http.ResponseWriter, id string) {
	def := archetype.Get(id)
	if def == nil {
		h.logger.Warn("Archetype not found", "id", id)
		writeError(w, h.logger, http.StatusNotFound, "Archetype not found: "+id)
		return
	}

	detail := ArchetypeDetail{
		Definition: def,
		Evolved:    archetype.GetEvolved(def.Evolution.Positive),
		Shadow:     archetype.GetShadow(def.Evolution.Negative),
	}
	writeJSON(w, h.logger, http.StatusOK, detail)
}
