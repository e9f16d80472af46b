package core

// Fixed replies outside the template table.
const (
	EscalationReply = "I'm connecting you with a senior specialist who can provide immediate assistance. They'll have full context of your situation."

	GenericAngryReply = "I sincerely apologize for your experience. I want to help resolve this immediately. Could you provide more details?"
	GenericReply      = "Thank you for reaching out. I'm here to help. Could you please provide more details?"

	PremiumPrefix = "As one of our valued premium members, "
)

// ReplyGenerator picks a canned reply from a two-level (intent, sentiment)
// template table with an ordered fallback chain.
type ReplyGenerator struct {
	templates map[string]map[Sentiment]string
}

func NewReplyGenerator(templates map[string]map[Sentiment]string) *ReplyGenerator {
	return &ReplyGenerator{templates: templates}
}

// Build resolves the reply for a turn. Escalated turns always get the
// specialist hand-off message. Otherwise lookup order is exact
// (intent, sentiment), then (intent, neutral), then a generic template keyed
// only on anger. Premium customers get a prefix on non-escalated replies.
func (g *ReplyGenerator) Build(intent string, sentiment Sentiment, escalated bool, customerTier string) string {
	if escalated {
		return EscalationReply
	}

	reply := ""
	if byIntent, ok := g.templates[intent]; ok {
		reply = byIntent[sentiment]
		if reply == "" {
			reply = byIntent[SentimentNeutral]
		}
	}
	if reply == "" {
		if sentiment == SentimentAngry {
			reply = GenericAngryReply
		} else {
			reply = GenericReply
		}
	}

	if customerTier == TierPremium {
		reply = PremiumPrefix + reply
	}

	return reply
}
