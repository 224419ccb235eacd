package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionHeader carries the session ID on API requests. A `session` query
// parameter works as a fallback for clients that cannot set headers.
const sessionHeader = "X-Session-ID"

// SessionStore keeps per-session state in memory. Sessions expire lazily:
// stale entries are swept on the next access instead of by a background
// goroutine, since nothing here outlives the process anyway.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session around a loaded dataset
func (s *SessionStore) Create(ds *Dataset) *Session {
	now := time.Now()
	session := &Session{
		ID:           uuid.New().String(),
		Dataset:      ds,
		Conversation: []ChatEntry{},
		CreatedAt:    now,
		LastSeen:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepExpired(now)
	s.sessions[session.ID] = session
	return session
}

// Get returns a live session and refreshes its last-seen time
func (s *SessionStore) Get(id string) (*Session, bool) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepExpired(now)
	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	session.LastSeen = now
	return session, true
}

// Delete removes a session, reporting whether it existed
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// AppendChat adds one entry to a session's conversation log
func (s *SessionStore) AppendChat(id string, entry ChatEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return
	}
	session.Conversation = append(session.Conversation, entry)
	session.LastSeen = time.Now()
}

// History returns a copy of a session's conversation log
func (s *SessionStore) History(id string) []ChatEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return []ChatEntry{}
	}
	history := make([]ChatEntry, len(session.Conversation))
	copy(history, session.Conversation)
	return history
}

// Info builds the API representation of a session
func (s *SessionStore) Info(id string) (SessionInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return SessionInfo{}, false
	}

	info := SessionInfo{
		ID:        session.ID,
		Questions: len(session.Conversation),
		CreatedAt: session.CreatedAt,
		LastSeen:  session.LastSeen,
	}
	if session.Dataset != nil {
		info.FileName = session.Dataset.FileName
		info.RecordCount = len(session.Dataset.Records)
	}
	return info, true
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sweepExpired drops sessions idle past the TTL. Callers hold the write lock.
func (s *SessionStore) sweepExpired(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, session := range s.sessions {
		if now.Sub(session.LastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// requestSessionID pulls the session ID off a request, header first
func requestSessionID(c *gin.Context) string {
	if id := c.GetHeader(sessionHeader); id != "" {
		return id
	}
	return c.Query("session")
}

// sessionFromRequest resolves the request's session or answers 404
func sessionFromRequest(c *gin.Context) (*Session, bool) {
	id := requestSessionID(c)
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found. Pass the X-Session-ID header from your upload."})
		return nil, false
	}
	session, ok := sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return nil, false
	}
	return session, true
}

// datasetFromRequest picks the record set a request operates on: the
// session's dataset when a session ID is given, the server's default
// dataset otherwise. Answers 404 when neither exists.
func datasetFromRequest(c *gin.Context) (*Dataset, bool) {
	if id := requestSessionID(c); id != "" {
		session, ok := sessions.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return nil, false
		}
		return session.Dataset, true
	}

	if defaultDataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No timesheet data loaded. Upload a CSV first."})
		return nil, false
	}
	return defaultDataset, true
}

// sessionForChat resolves the chat session, creating one around the
// default dataset when the client has not uploaded anything yet
func sessionForChat(c *gin.Context) (*Session, bool) {
	if id := requestSessionID(c); id != "" {
		session, ok := sessions.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
			return nil, false
		}
		return session, true
	}

	if defaultDataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No timesheet data loaded. Upload a CSV first."})
		return nil, false
	}
	return sessions.Create(defaultDataset), true
}

// @Summary Open a session on the server's default dataset
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionInfo "Created session"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/sessions [post]
func createSession(c *gin.Context) {
	if defaultDataset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No timesheet data loaded. Upload a CSV first."})
		return
	}

	session := sessions.Create(defaultDataset)
	info, _ := sessions.Info(session.ID)
	c.JSON(http.StatusCreated, info)
}

// @Summary Get session details
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionInfo "Session details"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/sessions/{id} [get]
func getSession(c *gin.Context) {
	info, ok := sessions.Info(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary Close a session and discard its data
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session deleted successfully"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/sessions/{id} [delete]
func deleteSession(c *gin.Context) {
	if !sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
