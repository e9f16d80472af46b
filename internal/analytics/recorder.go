// Package analytics keeps running counters over processed interactions.
package analytics

import "github.com/opsdesk/support-agent-pipeline/internal/core"

// Recorder accumulates interaction counters for one session. Fields are
// exported so session stores can round-trip it through JSON; mutate only
// through RecordInteraction.
type Recorder struct {
	TotalInteractions     int            `json:"total_interactions"`
	IntentDistribution    map[string]int `json:"intent_distribution"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	EscalationRate        float64        `json:"escalation_rate"`
	Escalations           int            `json:"escalations"`
}

func NewRecorder() *Recorder {
	return &Recorder{
		IntentDistribution:    make(map[string]int),
		SentimentDistribution: make(map[string]int),
	}
}

// RecordInteraction counts one processed turn and recomputes the escalation
// rate. The rate is escalations/total*100 and 0 while total is 0.
func (r *Recorder) RecordInteraction(intent string, sentiment core.Sentiment, escalated bool) {
	if r.IntentDistribution == nil {
		r.IntentDistribution = make(map[string]int)
	}
	if r.SentimentDistribution == nil {
		r.SentimentDistribution = make(map[string]int)
	}

	r.TotalInteractions++
	r.IntentDistribution[intent]++
	r.SentimentDistribution[string(sentiment)]++

	if escalated {
		r.Escalations++
	}
	if r.TotalInteractions > 0 {
		r.EscalationRate = float64(r.Escalations) / float64(r.TotalInteractions) * 100
	}
}

// Snapshot returns a copy safe to hand out while the recorder keeps counting.
func (r *Recorder) Snapshot() Recorder {
	out := *r
	out.IntentDistribution = make(map[string]int, len(r.IntentDistribution))
	for k, v := range r.IntentDistribution {
		out.IntentDistribution[k] = v
	}
	out.SentimentDistribution = make(map[string]int, len(r.SentimentDistribution))
	for k, v := range r.SentimentDistribution {
		out.SentimentDistribution[k] = v
	}
	return out
}
