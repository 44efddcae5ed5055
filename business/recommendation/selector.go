package recommendation

import (
	"customerRenewal/domain"
)

// Recommend returns the advisory texts for a record and its local score.
func Recommend(r domain.FeatureRecord, score int) []string {
	detailed := RecommendDetailed(r, score)

	out := make([]string, 0, len(detailed))
	for _, rec := range detailed {
		out = append(out, rec.Text)
	}
	return out
}

// RecommendDetailed is Recommend with the rule id and group of every text.
// The outcome tier group always fires, so the result is never empty.
func RecommendDetailed(r domain.FeatureRecord, score int) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, 8)
	for _, g := range Groups {
		out = append(out, g.evaluate(r, score)...)
	}
	return out
}

func (g Group) evaluate(r domain.FeatureRecord, score int) []domain.Recommendation {
	var out []domain.Recommendation
	for _, rule := range g.Rules {
		if !rule.Applies(r, score) {
			continue
		}
		out = append(out, domain.Recommendation{
			RuleID: rule.ID,
			Group:  g.Name,
			Text:   rule.Text,
		})
		if g.Exclusive {
			break
		}
	}
	return out
}
