package coordinator

import (
	"time"

	"github.com/opsdesk/support-agent-pipeline/internal/analytics"
	"github.com/opsdesk/support-agent-pipeline/internal/core"
	"github.com/opsdesk/support-agent-pipeline/internal/memory"
)

// ExportDocument is the on-demand session dump offered for download.
type ExportDocument struct {
	Timestamp           time.Time          `json:"timestamp"`
	Analytics           analytics.Recorder `json:"analytics"`
	ConversationHistory []memory.Entry     `json:"conversation_history"`
}

// Export snapshots a session for download.
func Export(state *State) ExportDocument {
	history := make([]memory.Entry, len(state.Memory.Messages))
	copy(history, state.Memory.Messages)

	return ExportDocument{
		Timestamp:           time.Now(),
		Analytics:           state.Analytics.Snapshot(),
		ConversationHistory: history,
	}
}

// ExportFilename builds the timestamped download name for an export taken at
// t, e.g. analytics_20250519_143002.json.
func ExportFilename(t time.Time) string {
	return "analytics_" + t.Format("20060102_150405") + ".json"
}

func recentSentiments(entries []memory.Entry) []core.Sentiment {
	if len(entries) == 0 {
		return nil
	}
	out := make([]core.Sentiment, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Metadata.Sentiment)
	}
	return out
}
