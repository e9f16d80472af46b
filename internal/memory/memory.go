// Package memory holds the bounded per-session conversation log plus the
// derived customer profile and escalation records. A Memory is owned by
// exactly one coordinator session and is not safe for concurrent use.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsdesk/support-agent-pipeline/internal/core"
)

// DefaultMaxHistory caps the stored message log; the oldest entries are
// dropped first.
const DefaultMaxHistory = 50

// Entry is one stored conversation turn.
type Entry struct {
	Role     string        `json:"role"`
	Content  string        `json:"content"`
	Time     time.Time     `json:"time"`
	Metadata core.Metadata `json:"metadata"`
}

// Escalation is one recorded hand-off decision.
type Escalation struct {
	Time   time.Time `json:"time"`
	Reason string    `json:"reason"`
	Agent  string    `json:"agent"`
}

// Memory is the session state the pipeline reads and appends to. Fields are
// exported so session stores can round-trip it through JSON.
type Memory struct {
	Messages          []Entry           `json:"messages"`
	CustomerProfile   map[string]string `json:"customer_profile"`
	EscalationHistory []Escalation      `json:"escalation_history"`
	MaxHistory        int               `json:"max_history"`
}

func New() *Memory {
	return &Memory{
		CustomerProfile: make(map[string]string),
		MaxHistory:      DefaultMaxHistory,
	}
}

// Add appends a message entry. After any Add the log holds at most
// MaxHistory entries, oldest dropped first.
func (m *Memory) Add(role, content string, metadata core.Metadata) {
	m.Messages = append(m.Messages, Entry{
		Role:     role,
		Content:  content,
		Time:     time.Now(),
		Metadata: metadata,
	})

	max := m.MaxHistory
	if max <= 0 {
		max = DefaultMaxHistory
	}
	if len(m.Messages) > max {
		m.Messages = m.Messages[len(m.Messages)-max:]
	}
}

// Len returns the number of stored messages.
func (m *Memory) Len() int {
	return len(m.Messages)
}

// Tail returns up to the last n entries, oldest first.
func (m *Memory) Tail(n int) []Entry {
	if n <= 0 || len(m.Messages) == 0 {
		return nil
	}
	if n > len(m.Messages) {
		n = len(m.Messages)
	}
	return m.Messages[len(m.Messages)-n:]
}

// Recent renders the last n turns as a plain "role: content" transcript.
func (m *Memory) Recent(n int) string {
	var sb strings.Builder
	for _, e := range m.Tail(n) {
		fmt.Fprintf(&sb, "%s: %s\n", e.Role, e.Content)
	}
	return sb.String()
}

// UpdateProfile sets one customer profile attribute.
func (m *Memory) UpdateProfile(key, value string) {
	if m.CustomerProfile == nil {
		m.CustomerProfile = make(map[string]string)
	}
	m.CustomerProfile[key] = value
}

// RecordEscalation appends to the escalation history. A non-empty history
// feeds the sticky-escalation rule on every later turn.
func (m *Memory) RecordEscalation(reason, agent string) {
	m.EscalationHistory = append(m.EscalationHistory, Escalation{
		Time:   time.Now(),
		Reason: reason,
		Agent:  agent,
	})
}
