package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideNoRuleFires(t *testing.T) {
	d := NewEscalationDecider()

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:    SentimentNeutral,
		Priority:     PriorityLow,
		CustomerTier: TierBasic,
	})
	assert.False(t, escalated)
	assert.Equal(t, NoEscalationReason, reason)
}

func TestDecideAngryCustomer(t *testing.T) {
	d := NewEscalationDecider()

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:    SentimentAngry,
		Priority:     PriorityLow,
		CustomerTier: TierBasic,
	})
	assert.True(t, escalated)
	assert.Equal(t, ReasonAngryCustomer, reason)
}

func TestDecideRepeatedFrictionNeedsHighPriority(t *testing.T) {
	d := NewEscalationDecider()

	recent := []Sentiment{SentimentFrustrated, SentimentNeutral, SentimentAngry}

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:        SentimentNeutral,
		Priority:         PriorityHigh,
		CustomerTier:     TierBasic,
		RecentSentiments: recent,
	})
	assert.True(t, escalated)
	assert.Equal(t, ReasonRepeatedFriction, reason)

	// Same history at medium priority does not fire the rule.
	escalated, _ = d.Decide(EscalationInput{
		Sentiment:        SentimentNeutral,
		Priority:         PriorityMedium,
		CustomerTier:     TierBasic,
		RecentSentiments: recent,
	})
	assert.False(t, escalated)

	// A single heated message is not enough.
	escalated, _ = d.Decide(EscalationInput{
		Sentiment:        SentimentNeutral,
		Priority:         PriorityHigh,
		CustomerTier:     TierBasic,
		RecentSentiments: []Sentiment{SentimentFrustrated, SentimentNeutral},
	})
	assert.False(t, escalated)
}

func TestDecidePremiumNonLowPriority(t *testing.T) {
	d := NewEscalationDecider()

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:    SentimentNeutral,
		Priority:     PriorityMedium,
		CustomerTier: TierPremium,
	})
	assert.True(t, escalated)
	assert.Equal(t, ReasonPremiumPriority, reason)

	// Premium at low priority stays unescalated.
	escalated, _ = d.Decide(EscalationInput{
		Sentiment:    SentimentNeutral,
		Priority:     PriorityLow,
		CustomerTier: TierPremium,
	})
	assert.False(t, escalated)
}

// Any prior escalation escalates every later turn, forever. This is the
// shipped behavior; the test pins it so a change is deliberate.
func TestDecidePriorEscalationSticksForever(t *testing.T) {
	d := NewEscalationDecider()

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:        SentimentSatisfied,
		Priority:         PriorityLow,
		CustomerTier:     TierBasic,
		PriorEscalations: 1,
	})
	assert.True(t, escalated)
	assert.Equal(t, ReasonPriorEscalation, reason)
}

func TestDecideJoinsMultipleReasons(t *testing.T) {
	d := NewEscalationDecider()

	escalated, reason := d.Decide(EscalationInput{
		Sentiment:        SentimentAngry,
		Priority:         PriorityHigh,
		CustomerTier:     TierPremium,
		RecentSentiments: []Sentiment{SentimentAngry, SentimentFrustrated},
		PriorEscalations: 2,
	})
	assert.True(t, escalated)
	assert.Equal(t,
		ReasonAngryCustomer+"; "+ReasonRepeatedFriction+"; "+ReasonPremiumPriority+"; "+ReasonPriorEscalation,
		reason)
}
