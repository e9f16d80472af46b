package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/support-agent-pipeline/internal/core"
)

func TestAddCapsHistoryAtFifty(t *testing.T) {
	m := New()

	for i := 0; i < 51; i++ {
		m.Add("user", fmt.Sprintf("message-%d", i), core.Metadata{})
		assert.LessOrEqual(t, m.Len(), DefaultMaxHistory)
	}

	require.Equal(t, DefaultMaxHistory, m.Len())
	// The oldest entry is gone, the second-oldest is now first.
	assert.Equal(t, "message-1", m.Messages[0].Content)
	assert.Equal(t, "message-50", m.Messages[len(m.Messages)-1].Content)
}

func TestAddStoresMetadataAndTime(t *testing.T) {
	m := New()

	md := core.Metadata{
		Intent:    "refund",
		Priority:  core.PriorityHigh,
		Sentiment: core.SentimentAngry,
		Escalated: true,
	}
	m.Add("user", "give me a refund", md)

	require.Equal(t, 1, m.Len())
	entry := m.Messages[0]
	assert.Equal(t, "user", entry.Role)
	assert.Equal(t, md, entry.Metadata)
	assert.False(t, entry.Time.IsZero())
}

func TestTail(t *testing.T) {
	m := New()
	for i := 0; i < 8; i++ {
		m.Add("user", fmt.Sprintf("m%d", i), core.Metadata{})
	}

	tail := m.Tail(5)
	require.Len(t, tail, 5)
	assert.Equal(t, "m3", tail[0].Content)
	assert.Equal(t, "m7", tail[4].Content)

	assert.Len(t, m.Tail(100), 8)
	assert.Nil(t, m.Tail(0))
	assert.Nil(t, New().Tail(5))
}

func TestRecentTranscript(t *testing.T) {
	m := New()
	m.Add("user", "hello", core.Metadata{})
	m.Add("agent", "hi there", core.Metadata{})

	assert.Equal(t, "user: hello\nagent: hi there\n", m.Recent(5))
}

func TestRecordEscalation(t *testing.T) {
	m := New()
	assert.Empty(t, m.EscalationHistory)

	m.RecordEscalation("Customer shows extreme dissatisfaction", "coordinator")

	require.Len(t, m.EscalationHistory, 1)
	rec := m.EscalationHistory[0]
	assert.Equal(t, "Customer shows extreme dissatisfaction", rec.Reason)
	assert.Equal(t, "coordinator", rec.Agent)
	assert.False(t, rec.Time.IsZero())
}

func TestUpdateProfile(t *testing.T) {
	m := New()
	m.UpdateProfile("name", "John Doe")
	m.UpdateProfile("tier", "premium")

	assert.Equal(t, "John Doe", m.CustomerProfile["name"])
	assert.Equal(t, "premium", m.CustomerProfile["tier"])

	// Works on a zero-value Memory too (e.g. after JSON round-trip).
	var z Memory
	z.UpdateProfile("k", "v")
	assert.Equal(t, "v", z.CustomerProfile["k"])
}
