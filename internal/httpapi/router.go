// Package httpapi exposes the pipeline over REST.
package httpapi

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
	"github.com/opsdesk/support-agent-pipeline/internal/core"
	"github.com/opsdesk/support-agent-pipeline/internal/session"
)

// API holds the shared pipeline and the session registry behind the routes.
type API struct {
	coord    *coordinator.Coordinator
	sessions session.Store

	// One turn at a time. The pipeline is a per-session sequence of map
	// lookups; a single lock is enough for a demo workload.
	mu sync.Mutex
}

func NewRouter(coord *coordinator.Coordinator, sessions session.Store) *gin.Engine {
	api := &API{coord: coord, sessions: sessions}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/messages", api.ProcessMessage)
	v1.GET("/examples", api.Examples)
	v1.GET("/sessions/:id/analytics", api.Analytics)
	v1.GET("/sessions/:id/history", api.History)
	v1.GET("/sessions/:id/export", api.Export)
	v1.DELETE("/sessions/:id", api.ClearSession)

	return r
}

type MessageRequest struct {
	// SessionID is optional; a fresh session is allocated when absent.
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type MessageResponse struct {
	SessionID string `json:"session_id"`
	core.Result
}

// ProcessMessage runs one turn through the pipeline. Any text, including the
// empty string, produces a well-formed result.
func (a *API) ProcessMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.sessions.Get(c, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		state = coordinator.NewState(sessionID)
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	result := a.coord.Process(state, req.Text)

	if err := a.sessions.Save(c, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{SessionID: sessionID, Result: result})
}

// Analytics returns the session's counter snapshot.
func (a *API) Analytics(c *gin.Context) {
	state, ok := a.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, state.Analytics.Snapshot())
}

// History returns the stored conversation log, capped at 50 entries by the
// memory itself.
func (a *API) History(c *gin.Context) {
	state, ok := a.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": state.SessionID,
		"messages":   state.Memory.Messages,
	})
}

// Export serves the session dump as a timestamped JSON download.
func (a *API) Export(c *gin.Context) {
	state, ok := a.loadSession(c)
	if !ok {
		return
	}

	doc := coordinator.Export(state)
	c.Header("Content-Disposition", `attachment; filename="`+coordinator.ExportFilename(doc.Timestamp)+`"`)
	c.IndentedJSON(http.StatusOK, doc)
}

// ClearSession drops the session; the next message starts a fresh one.
func (a *API) ClearSession(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.sessions.Delete(c, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (a *API) loadSession(c *gin.Context) (*coordinator.State, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.sessions.Get(c, c.Param("id"))
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return nil, false
	}
	return state, true
}
