package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/SpicyMarinara/rpg-companion/pkg/evolution"
)

// Session is a persistent roleplay session: a named collection of
// characters and their evolution state, addressable by UUID.
type Session struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name,omitempty"`
	State     *evolution.SavedState `json:"state,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func New(name string) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Registry reconstructs the in-memory character registry from the
// session's saved state. An empty session yields an empty registry.
func (s *Session) Registry() *evolution.Registry {
	r := evolution.NewRegistry()
	if s.State != nil {
		r.LoadFromSaved(s.State)
	}
	return r
}

// Capture replaces the session's saved state with the registry's
// current contents and bumps the update timestamp.
func (s *Session) Capture(r *evolution.Registry) {
	s.State = r.ExportAll()
	s.UpdatedAt = time.Now()
}
