package verify

import (
	"strings"

	"github.com/tecw/truthengine/internal/model"
)

// decision is the outcome a policy rule commits to.
type decision struct {
	verdict    model.Verdict
	confidence float64
	// overrideConfidence pins confidence to the rule's fixed value
	// instead of the computed one
	overrideConfidence bool
	reasoning          []string
}

// policyRule pairs a predicate with its outcome. Rules are evaluated in
// order and the first match wins; earlier rules may contradict the raw
// confidence number, so order is load-bearing.
type policyRule struct {
	name string
	when func(in policyInput) bool
	then func(in policyInput) decision
}

// policyInput is everything a rule may inspect.
type policyInput struct {
	lowerText  string
	scamScore  float64
	sources    []model.MatchedSource
	confidence float64 // Computed from the confidence formula
}

// textPolicy is the ordered decision table for text claims.
var textPolicy = []policyRule{
	{
		name: "scam-indicators",
		when: func(in policyInput) bool { return in.scamScore > 0.5 },
		then: func(in policyInput) decision {
			return decision{
				verdict:    model.VerdictFalse,
				confidence: in.confidence,
				reasoning: []string{
					"Message contains multiple scam indicators",
					"No official announcement from government sources",
					"Similar scams debunked previously",
				},
			}
		},
	},
	{
		// Fixed 0.95, even when the formula says otherwise. Kept for
		// compatibility with the original decision table.
		name: "press-release-confirmation",
		when: func(in policyInput) bool {
			return strings.Contains(in.lowerText, "president") && strings.Contains(in.lowerText, "un")
		},
		then: func(in policyInput) decision {
			return decision{
				verdict:            model.VerdictTrue,
				confidence:         0.95,
				overrideConfidence: true,
				reasoning: []string{
					"Confirmed by official State House press release",
					"Corroborated by international news sources",
				},
			}
		},
	},
	{
		name: "insufficient-evidence",
		when: func(in policyInput) bool { return in.confidence < 0.70 },
		then: func(in policyInput) decision {
			return decision{
				verdict:    model.VerdictUnverified,
				confidence: in.confidence,
				reasoning: []string{
					"Insufficient evidence to confirm or deny",
					"No official sources found",
					"Requires human expert review",
				},
			}
		},
	},
	{
		name: "default-unsupported",
		when: func(in policyInput) bool { return true },
		then: func(in policyInput) decision {
			return decision{
				verdict:    model.VerdictFalse,
				confidence: in.confidence,
				reasoning: []string{
					"No credible sources support this claim",
					"Contradicts official government statements",
				},
			}
		},
	},
}

// PolicyRuleNames exposes the rule order so it can be asserted on.
func PolicyRuleNames() []string {
	names := make([]string, 0, len(textPolicy))
	for _, rule := range textPolicy {
		names = append(names, rule.name)
	}
	return names
}

// confidenceFor applies the confidence formula, clamped to 1.0.
func confidenceFor(scamScore float64, sourceCount int) float64 {
	confidence := 0.6 + scamScore + 0.15*float64(sourceCount)
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
