package core

// DefaultRuleSet returns the built-in keyword tables, customer directory and
// reply templates. Config files overlay individual sections; anything not
// overridden keeps these values.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Intents: []IntentPattern{
			{Intent: "refund", Keywords: []string{"refund", "money back", "return money", "get my money"}},
			{Intent: "cancellation", Keywords: []string{"cancel", "stop subscription", "end service", "discontinue"}},
			{Intent: "billing", Keywords: []string{"invoice", "charge", "bill", "payment", "wrong amount", "overcharged"}},
			{Intent: "technical_support", Keywords: []string{"not working", "broken", "error", "bug", "crash", "issue"}},
			{Intent: "account_access", Keywords: []string{"can't login", "forgot password", "locked out", "reset"}},
			{Intent: "product_inquiry", Keywords: []string{"how does", "what is", "explain", "feature"}},
			{Intent: "complaint", Keywords: []string{"disappointed", "terrible", "worst", "never again"}},
			{Intent: "upgrade", Keywords: []string{"upgrade", "premium", "pro version", "better plan"}},
			{Intent: "shipping", Keywords: []string{"delivery", "tracking", "shipment", "hasn't arrived"}},
			{Intent: "general_help", Keywords: []string{"help", "question", "need assistance"}},
		},
		Priorities: map[string]Priority{
			"refund":            PriorityHigh,
			"complaint":         PriorityHigh,
			"account_access":    PriorityHigh,
			"billing":           PriorityMedium,
			"cancellation":      PriorityMedium,
			"technical_support": PriorityMedium,
		},
		Lexicon: Lexicon{
			Angry:      []string{"angry", "furious", "outraged", "terrible", "worst", "pathetic", "ridiculous"},
			Frustrated: []string{"frustrated", "annoyed", "disappointed", "upset", "still waiting"},
			Positive:   []string{"thank", "great", "appreciate", "perfect", "excellent"},
		},
		Customers: map[string]CustomerRecord{
			"user123": {Name: "John Doe", Tier: TierPremium, Orders: 15},
			"user456": {Name: "Jane Smith", Tier: TierBasic, Orders: 2},
			"user789": {Name: "Bob Johnson", Tier: TierPremium, Orders: 47},
		},
		Templates: map[string]map[Sentiment]string{
			"refund": {
				SentimentAngry:      "I completely understand your frustration, and I sincerely apologize. I'm prioritizing your refund request right now. Please provide your order ID, and I'll process this immediately.",
				SentimentFrustrated: "I'm sorry to hear about this issue. I'll help you get your refund processed quickly. Could you please share your order ID?",
				SentimentNeutral:    "I can help you with a refund. Please provide your order ID so I can look into this for you.",
			},
			"cancellation": {
				SentimentAngry:      "I understand you want to cancel, and I'll make this as smooth as possible. Before I proceed, is there anything specific that led to this decision?",
				SentimentFrustrated: "I can assist with canceling your subscription. May I ask what prompted this decision?",
				SentimentNeutral:    "I can help you cancel your subscription. Please provide your registered email address.",
			},
			"billing": {
				SentimentAngry:      "I sincerely apologize for any billing errors. This is unacceptable, and I'm going to review your account immediately. Please share your invoice number.",
				SentimentFrustrated: "I'm sorry about the billing issue. Let me investigate this right away. Could you provide your invoice number?",
				SentimentNeutral:    "I'll help you resolve this billing matter. Please share your invoice number for verification.",
			},
			"technical_support": {
				SentimentAngry:      "I'm very sorry you're experiencing technical difficulties. Let me get our technical team on this immediately. What specific issue are you encountering?",
				SentimentFrustrated: "I apologize for the technical trouble. Let me help you resolve this. Can you describe what's happening?",
				SentimentNeutral:    "I'm here to help with your technical issue. Could you describe the problem you're experiencing?",
			},
			"account_access": {
				SentimentAngry:   "I understand how frustrating being locked out is. I'm going to help you regain access right now. What's your registered email?",
				SentimentNeutral: "I can help you regain access. Please provide your registered email address for verification.",
			},
			"complaint": {
				SentimentAngry:      "I'm truly sorry to hear about your experience. Your feedback is extremely important. I want to make this right. Can you tell me more?",
				SentimentFrustrated: "I apologize that we didn't meet your expectations. Could you share more details?",
			},
			"upgrade": {
				SentimentNeutral: "Great! I'd be happy to help you upgrade. Let me walk you through our premium options.",
			},
			"shipping": {
				SentimentFrustrated: "I apologize for the delay. Let me track your order right away. Please provide your order number.",
				SentimentNeutral:    "I'll help you track your shipment. Could you provide your order number?",
			},
		},
	}
}
