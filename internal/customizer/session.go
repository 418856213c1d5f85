package customizer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"watch-atelier-backend/internal/models"
)

// DefaultSessionTTL bounds how long an abandoned session is kept before
// the store drops it. In-progress selections are never persisted.
const DefaultSessionTTL = 2 * time.Hour

// Session is one customer's customization in progress. Bound to a
// single case at creation: switching cases means a new session, so
// selections can never leak across cases. Owned by exactly one customer
// and driven by user-triggered events only, so access is not locked.
type Session struct {
	ID        uuid.UUID
	Case      *models.WatchCase
	Parts     map[models.PartCategory][]models.WatchPart
	Selection *Selection
	Sequencer *Sequencer
	OrderID   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession builds a session from a case and its resolved compatible
// parts: steps are computed, the default color is picked, and every
// selectable category gets its list head selected so no category step
// is ever rendered without a selection.
func NewSession(watchCase *models.WatchCase, parts map[models.PartCategory][]models.WatchPart) *Session {
	selection := NewSelection(watchCase)
	selection.AutoPopulate(parts)

	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Case:      watchCase,
		Parts:     parts,
		Selection: selection,
		Sequencer: NewSequencer(ComputeSteps(watchCase, parts)),
		CreatedAt: now,
		ExpiresAt: now.Add(DefaultSessionTTL),
	}
}

// Expired reports whether the session has passed its TTL.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SelectColor activates a color variant. The variant must exist on the
// session's case.
func (s *Session) SelectColor(name string) error {
	for _, color := range s.Case.Colors {
		if color.Name == name {
			s.Selection.SetColor(name)
			return nil
		}
	}
	return &NotFoundError{Resource: "color", Key: name}
}

// SelectPart records a part choice. The part must be in the session's
// compatible set for the category, which also yields the display name.
func (s *Session) SelectPart(category models.PartCategory, partID string) error {
	if !category.Valid() {
		return &ValidationError{Field: "category", Message: "unknown part category"}
	}
	for _, part := range s.Parts[category] {
		if part.ID.String() == partID {
			s.Selection.SetPart(category, partID, part.Name)
			return nil
		}
	}
	return &NotFoundError{Resource: "part", Key: partID}
}

// Total recomputes the order total for the current selection.
func (s *Session) Total() int {
	return ComputeTotal(s.Case, s.Selection, s.Parts)
}

// Layers recomposes the preview stack for the current selection.
func (s *Session) Layers() []Layer {
	return ComposeLayers(s.Case, s.Selection, s.Parts)
}

// SessionStore holds live sessions in memory. Each session belongs to
// one customer; the mutex only guards the map itself.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*Session)}
}

// Put registers a session.
func (st *SessionStore) Put(session *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session
}

// Get returns a live session. Expired sessions are dropped on access.
func (st *SessionStore) Get(id uuid.UUID) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, &NotFoundError{Resource: "session", Key: id.String()}
	}
	if session.Expired() {
		delete(st.sessions, id)
		return nil, &NotFoundError{Resource: "session", Key: id.String()}
	}
	return session, nil
}

// Delete removes a session, if present.
func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
