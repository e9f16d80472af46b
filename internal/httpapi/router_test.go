package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
	"github.com/opsdesk/support-agent-pipeline/internal/core"
	"github.com/opsdesk/support-agent-pipeline/internal/session"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(coordinator.New(core.DefaultRuleSet()), session.NewMemoryStore())
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessMessageAllocatesSession(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"text":"I want a refund"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "refund", resp.Intent)
	assert.Equal(t, core.PriorityHigh, resp.Priority)
	assert.False(t, resp.Escalated)
	assert.Nil(t, resp.EscalationReason)
}

func TestProcessMessageEscalationScenario(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/messages",
		`{"session_id":"s1","text":"I want to cancel my subscription. I'm user123."}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "cancellation", resp.Intent)
	assert.Equal(t, core.TierPremium, resp.CustomerTier)
	assert.True(t, resp.Escalated)
	assert.Equal(t, core.EscalationReply, resp.Reply)
}

func TestProcessMessageRejectsBadJSON(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsEndpoint(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"this is ridiculous"}`)
	doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"where is my order"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/s1/analytics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var report struct {
		TotalInteractions int     `json:"total_interactions"`
		Escalations       int     `json:"escalations"`
		EscalationRate    float64 `json:"escalation_rate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.TotalInteractions)
	assert.Equal(t, 2, report.Escalations) // second turn escalates via sticky rule
	assert.Equal(t, 100.0, report.EscalationRate)
}

func TestAnalyticsUnknownSessionIs404(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/nope/analytics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryEndpoint(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"hello there"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/s1/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"session_id"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Role)
	assert.Equal(t, "agent", resp.Messages[1].Role)
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"I want a refund"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions/s1/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `attachment; filename="analytics_\d{8}_\d{6}\.json"`,
		w.Header().Get("Content-Disposition"))

	var doc struct {
		Timestamp           string          `json:"timestamp"`
		Analytics           json.RawMessage `json:"analytics"`
		ConversationHistory json.RawMessage `json:"conversation_history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc.Timestamp)
	assert.NotEmpty(t, doc.Analytics)
	assert.NotEmpty(t, doc.ConversationHistory)
}

func TestClearSessionStartsFresh(t *testing.T) {
	r := newTestRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"this is ridiculous"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/sessions/s1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// After the clear the sticky escalation is gone.
	w = doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":"where is my order"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Escalated)
}

func TestExamplesEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/examples", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Examples []Example `json:"examples"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Examples, 6)
}

func TestEmptyTextIsStillProcessed(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/messages", `{"session_id":"s1","text":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, core.IntentGeneral, resp.Intent)
	assert.Equal(t, core.GenericReply, resp.Reply)
}
