// Package coordinator sequences the rule agents over per-session state.
package coordinator

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opsdesk/support-agent-pipeline/internal/analytics"
	"github.com/opsdesk/support-agent-pipeline/internal/core"
	"github.com/opsdesk/support-agent-pipeline/internal/memory"
)

// AgentName is recorded on escalation history entries.
const AgentName = "coordinator"

// recentWindow is how many stored messages the escalation decider looks back
// over.
const recentWindow = 5

// State is the mutable session context. It is owned by one caller at a time;
// the coordinator itself holds no per-session data and can be shared.
type State struct {
	SessionID string              `json:"session_id"`
	Memory    *memory.Memory      `json:"memory"`
	Analytics *analytics.Recorder `json:"analytics"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewState(sessionID string) *State {
	now := time.Now()
	return &State{
		SessionID: sessionID,
		Memory:    memory.New(),
		Analytics: analytics.NewRecorder(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Coordinator wires the five agents into a linear pipeline.
type Coordinator struct {
	intents    *core.IntentClassifier
	sentiment  *core.SentimentAnalyzer
	enricher   *core.ContextEnricher
	escalation *core.EscalationDecider
	replies    *core.ReplyGenerator
}

func New(rules core.RuleSet) *Coordinator {
	return &Coordinator{
		intents:    core.NewIntentClassifier(rules.Intents, rules.Priorities),
		sentiment:  core.NewSentimentAnalyzer(rules.Lexicon),
		enricher:   core.NewContextEnricher(rules.Customers),
		escalation: core.NewEscalationDecider(),
		replies:    core.NewReplyGenerator(rules.Templates),
	}
}

// Process runs one turn: enrich -> classify -> analyze -> decide -> reply,
// then appends the user and agent entries, records any escalation and updates
// the analytics counters. Every stage is total; any input, including the
// empty string, yields a well-formed low-priority result.
func (c *Coordinator) Process(state *State, text string) core.Result {
	ctx := c.enricher.Enrich(state.Memory.Len(), text)
	intent, priority := c.intents.Classify(text)
	sentiment := c.sentiment.Analyze(text)

	escalated, reason := c.escalation.Decide(core.EscalationInput{
		Sentiment:        sentiment,
		Priority:         priority,
		CustomerTier:     ctx.CustomerTier,
		RecentSentiments: recentSentiments(state.Memory.Tail(recentWindow)),
		PriorEscalations: len(state.Memory.EscalationHistory),
	})

	reply := c.replies.Build(intent, sentiment, escalated, ctx.CustomerTier)

	md := core.Metadata{
		Intent:    intent,
		Priority:  priority,
		Sentiment: sentiment,
		Escalated: escalated,
	}
	state.Memory.Add("user", text, md)
	state.Memory.Add("agent", reply, md)

	if ctx.CustomerName != "" {
		state.Memory.UpdateProfile("name", ctx.CustomerName)
		state.Memory.UpdateProfile("tier", ctx.CustomerTier)
	}
	if escalated {
		state.Memory.RecordEscalation(reason, AgentName)
	}

	state.Analytics.RecordInteraction(intent, sentiment, escalated)
	state.UpdatedAt = time.Now()

	result := core.Result{
		Intent:       intent,
		Priority:     priority,
		Sentiment:    sentiment,
		CustomerTier: ctx.CustomerTier,
		Escalated:    escalated,
		Reply:        reply,
		Context:      ctx,
	}
	if escalated {
		result.EscalationReason = &reason
	}

	log.Debug().
		Str("session", state.SessionID).
		Str("intent", intent).
		Str("priority", string(priority)).
		Str("sentiment", string(sentiment)).
		Bool("escalated", escalated).
		Msg("processed message")
	if escalated {
		log.Warn().
			Str("session", state.SessionID).
			Str("reason", reason).
			Msg("escalation triggered")
	}

	return result
}
