package core

import (
	"sort"
	"strings"
)

// ContextEnricher resolves a message to a customer record by scanning for
// known customer ids in the text.
type ContextEnricher struct {
	directory map[string]CustomerRecord
	ids       []string
}

func NewContextEnricher(directory map[string]CustomerRecord) *ContextEnricher {
	ids := make([]string, 0, len(directory))
	for id := range directory {
		ids = append(ids, id)
	}
	// Deterministic scan order when a message names more than one id.
	sort.Strings(ids)

	return &ContextEnricher{directory: directory, ids: ids}
}

// Enrich returns the customer context for a message. Unknown customers get
// the basic tier and a standard lifetime value; interactions is the current
// session memory length and is reported either way.
func (e *ContextEnricher) Enrich(interactions int, message string) Context {
	ctx := Context{
		CustomerTier:     TierBasic,
		InteractionCount: interactions,
		LifetimeValue:    "standard",
	}

	id := e.extractCustomerID(message)
	if id == "" {
		return ctx
	}

	record := e.directory[id]
	ctx.CustomerTier = record.Tier
	ctx.CustomerName = record.Name
	ctx.OrderCount = record.Orders
	if record.Orders > 10 {
		ctx.LifetimeValue = "high"
	}

	return ctx
}

func (e *ContextEnricher) extractCustomerID(message string) string {
	text := strings.ToLower(message)
	for _, id := range e.ids {
		if strings.Contains(text, id) {
			return id
		}
	}
	return ""
}
