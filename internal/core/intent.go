package core

import "strings"

// IntentClassifier matches a message against an ordered keyword table.
type IntentClassifier struct {
	patterns   []IntentPattern
	priorities map[string]Priority
}

func NewIntentClassifier(patterns []IntentPattern, priorities map[string]Priority) *IntentClassifier {
	return &IntentClassifier{
		patterns:   patterns,
		priorities: priorities,
	}
}

// Classify lowercases the message and returns the first intent with any
// keyword contained in the text, plus its priority bucket. Unmatched messages
// fall back to the general intent at low priority; Classify never fails.
func (c *IntentClassifier) Classify(message string) (string, Priority) {
	text := strings.ToLower(message)

	for _, pattern := range c.patterns {
		for _, kw := range pattern.Keywords {
			if strings.Contains(text, kw) {
				return pattern.Intent, c.priorityFor(pattern.Intent)
			}
		}
	}

	return IntentGeneral, PriorityLow
}

func (c *IntentClassifier) priorityFor(intent string) Priority {
	if p, ok := c.priorities[intent]; ok {
		return p
	}
	return PriorityLow
}
