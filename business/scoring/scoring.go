package scoring

import (
	"customerRenewal/domain"
)

const (
	MinScore = 5
	MaxScore = 95
)

// Rule adds Delta to the raw score when Applies holds.
type Rule struct {
	Name    string
	Delta   int
	Applies func(r domain.FeatureRecord) bool
}

// Rules are evaluated independently; their order only affects Breakdown output.
var Rules = []Rule{
	// positive factors
	{Name: "current_customer", Delta: 20, Applies: func(r domain.FeatureRecord) bool { return r.CurrentCustomer() }},
	{Name: "tenure_over_12_months", Delta: 15, Applies: func(r domain.FeatureRecord) bool { return r.TenureMonths > 12 }},
	{Name: "opened_over_5_emails", Delta: 15, Applies: func(r domain.FeatureRecord) bool { return r.EmailsOpenedLast30d > 5 }},
	{Name: "past_positive_replies", Delta: 10, Applies: func(r domain.FeatureRecord) bool { return r.PastPositiveReplies > 0 }},
	{Name: "high_priority_tag", Delta: 10, Applies: func(r domain.FeatureRecord) bool { return r.HighPriority() }},

	// negative factors
	{Name: "slow_response_time", Delta: -15, Applies: func(r domain.FeatureRecord) bool { return r.AvgResponseTimeHours > 24 }},
	{Name: "stale_last_interaction", Delta: -20, Applies: func(r domain.FeatureRecord) bool { return r.LastInteractionDaysAgo > 20 }},
	{Name: "high_ticket_volume", Delta: -10, Applies: func(r domain.FeatureRecord) bool { return r.TotalTicketsLast6mo > 5 }},
}

// Score returns the renewal likelihood percentage for r, always in [MinScore, MaxScore].
func Score(r domain.FeatureRecord) int {
	return Breakdown(r).Score
}

func Breakdown(r domain.FeatureRecord) domain.ScoreBreakdown {
	raw := 0
	contributions := make([]domain.ScoreContribution, 0, len(Rules))
	for _, rule := range Rules {
		if !rule.Applies(r) {
			continue
		}
		raw += rule.Delta
		contributions = append(contributions, domain.ScoreContribution{
			Rule:  rule.Name,
			Delta: rule.Delta,
		})
	}

	return domain.ScoreBreakdown{
		Raw:           raw,
		Score:         clamp(raw),
		Contributions: contributions,
	}
}

// Confidence maps a score to the label shown next to it.
func Confidence(score int) string {
	switch {
	case score >= 70:
		return domain.ConfidenceHigh
	case score >= 40:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func clamp(raw int) int {
	return max(MinScore, min(raw, MaxScore))
}
