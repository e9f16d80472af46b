package core

// Priority is the static urgency bucket attached to an intent.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Sentiment is the coarse emotional tone of a single message.
type Sentiment string

const (
	SentimentAngry      Sentiment = "angry"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentNeutral    Sentiment = "neutral"
	SentimentSatisfied  Sentiment = "satisfied"
)

// Customer value segments.
const (
	TierBasic   = "basic"
	TierPremium = "premium"
)

// IntentGeneral is returned when no keyword table entry matches.
const IntentGeneral = "general"

// Metadata tags a stored message with the pipeline verdicts for that turn.
type Metadata struct {
	Intent    string    `json:"intent"`
	Priority  Priority  `json:"priority"`
	Sentiment Sentiment `json:"sentiment"`
	Escalated bool      `json:"escalated"`
}

// Context is what the enricher knows about the customer behind a message.
type Context struct {
	CustomerTier     string `json:"customer_tier"`
	InteractionCount int    `json:"interaction_count"`
	LifetimeValue    string `json:"customer_lifetime_value"`
	CustomerName     string `json:"customer_name,omitempty"`
	OrderCount       int    `json:"order_count,omitempty"`
}

// Result is the full pipeline verdict for one processed message.
type Result struct {
	Intent           string    `json:"intent"`
	Priority         Priority  `json:"priority"`
	Sentiment        Sentiment `json:"sentiment"`
	CustomerTier     string    `json:"customer_tier"`
	Escalated        bool      `json:"escalated"`
	EscalationReason *string   `json:"escalation_reason"`
	Reply            string    `json:"reply"`
	Context          Context   `json:"context"`
}

// IntentPattern binds one intent to the phrases that select it. Order in the
// table matters: the first intent with any matching phrase wins.
type IntentPattern struct {
	Intent   string   `json:"intent" yaml:"intent"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Lexicon holds the sentiment keyword lists.
type Lexicon struct {
	Angry      []string `json:"angry" yaml:"angry"`
	Frustrated []string `json:"frustrated" yaml:"frustrated"`
	Positive   []string `json:"positive" yaml:"positive"`
}

// CustomerRecord is one row of the static customer directory.
type CustomerRecord struct {
	Name   string `json:"name" yaml:"name"`
	Tier   string `json:"tier" yaml:"tier"`
	Orders int    `json:"orders" yaml:"orders"`
}

// RuleSet bundles every static table the agents match against. A RuleSet is
// read-only once the agents are built; overriding entries is a config-time
// concern, not a runtime one.
type RuleSet struct {
	Intents    []IntentPattern                 `yaml:"intents"`
	Priorities map[string]Priority             `yaml:"priorities"`
	Lexicon    Lexicon                         `yaml:"lexicon"`
	Customers  map[string]CustomerRecord       `yaml:"customers"`
	Templates  map[string]map[Sentiment]string `yaml:"templates"`
}
