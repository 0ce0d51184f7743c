package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SpicyMarinara/rpg-companion/pkg/prompts"
)

// CompatibilityHandler answers pairwise archetype compatibility queries.
type CompatibilityHandler struct {
	logger *slog.Logger
}

func NewCompatibilityHandler(logger *slog.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{logger: logger}
}

// ServeHTTP handles compatibility requests.
// Routes:
// GET /v1/compatibility?a={id}&b={id} - Relationship dynamics for a pair
func (h *CompatibilityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for compatibility endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	a := strings.ToUpper(r.URL.Query().Get("a"))
	b := strings.ToUpper(r.URL.Query().Get("b"))
	if a == "" || b == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Query parameters a and b are required")
		return
	}

	d := prompts.GetRelationshipDynamics(a, b)
	if d == nil {
		h.logger.Warn("Compatibility requested for unknown archetype", "a", a, "b", b)
		writeError(w, h.logger, http.StatusNotFound, "Unknown archetype in pair")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, d)
}
