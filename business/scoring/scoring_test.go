package scoring

import (
	"customerRenewal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecord() domain.FeatureRecord {
	return domain.FeatureRecord{
		Industry:               domain.IndustryRetail,
		Region:                 domain.RegionWest,
		Channel:                domain.ChannelEmail,
		CompanySize:            domain.CompanySizeMedium,
		TenureMonths:           6,
		TotalTicketsLast6mo:    2,
		AvgResponseTimeHours:   3.5,
		EmailsSentLast30d:      10,
		EmailsOpenedLast30d:    4,
		EmailsClickedLast30d:   1,
		LastInteractionDaysAgo: 10,
	}
}

func TestScore_ScenarioA(t *testing.T) {
	r := baseRecord()
	r.IsCurrentCustomer = 1
	r.TenureMonths = 15
	r.EmailsOpenedLast30d = 8
	r.PastPositiveReplies = 2
	r.TagHighPriority = 1
	r.AvgResponseTimeHours = 3
	r.LastInteractionDaysAgo = 5
	r.TotalTicketsLast6mo = 1

	b := Breakdown(r)
	assert.Equal(t, 70, b.Raw)
	assert.Equal(t, 70, b.Score)
	assert.Equal(t, 70, Score(r))
	assert.Equal(t, domain.ConfidenceHigh, Confidence(b.Score))
	assert.Len(t, b.Contributions, 5)
}

func TestScore_ScenarioB(t *testing.T) {
	r := baseRecord()
	r.IsCurrentCustomer = 0
	r.TenureMonths = 2
	r.EmailsOpenedLast30d = 0
	r.PastPositiveReplies = 0
	r.TagHighPriority = 0
	r.AvgResponseTimeHours = 30
	r.LastInteractionDaysAgo = 25
	r.TotalTicketsLast6mo = 8

	b := Breakdown(r)
	assert.Equal(t, -45, b.Raw)
	assert.Equal(t, MinScore, b.Score)
	assert.Equal(t, domain.ConfidenceLow, Confidence(b.Score))
	assert.Equal(t, []domain.ScoreContribution{
		{Rule: "slow_response_time", Delta: -15},
		{Rule: "stale_last_interaction", Delta: -20},
		{Rule: "high_ticket_volume", Delta: -10},
	}, b.Contributions)
}

func TestScore_Clamp(t *testing.T) {
	// positive deltas sum to 70, so no record reaches the upper bound
	r := baseRecord()
	r.IsCurrentCustomer = 1
	r.TenureMonths = 40
	r.EmailsOpenedLast30d = 30
	r.PastPositiveReplies = 5
	r.TagHighPriority = 1

	assert.Equal(t, 70, Score(r))
	assert.Equal(t, 95, clamp(120))
	assert.Equal(t, 5, clamp(-100))
	assert.Equal(t, 5, clamp(5))
	assert.Equal(t, 95, clamp(95))
}

func TestScore_ThresholdsAreStrict(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.FeatureRecord)
		want   int
	}{
		{"tenure exactly 12", func(r *domain.FeatureRecord) { r.TenureMonths = 12 }, 0},
		{"tenure 13", func(r *domain.FeatureRecord) { r.TenureMonths = 13 }, 15},
		{"opened exactly 5", func(r *domain.FeatureRecord) { r.EmailsOpenedLast30d = 5 }, 0},
		{"opened 6", func(r *domain.FeatureRecord) { r.EmailsOpenedLast30d = 6 }, 15},
		{"response exactly 24h", func(r *domain.FeatureRecord) { r.AvgResponseTimeHours = 24 }, 0},
		{"response 24.5h", func(r *domain.FeatureRecord) { r.AvgResponseTimeHours = 24.5 }, -15},
		{"interaction exactly 20 days", func(r *domain.FeatureRecord) { r.LastInteractionDaysAgo = 20 }, 0},
		{"interaction 21 days", func(r *domain.FeatureRecord) { r.LastInteractionDaysAgo = 21 }, -20},
		{"tickets exactly 5", func(r *domain.FeatureRecord) { r.TotalTicketsLast6mo = 5 }, 0},
		{"tickets 6", func(r *domain.FeatureRecord) { r.TotalTicketsLast6mo = 6 }, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := baseRecord()
			tt.mutate(&r)
			assert.Equal(t, tt.want, Breakdown(r).Raw)
		})
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	for mask := 0; mask < 1<<len(Rules); mask++ {
		r := recordForMask(mask)
		s := Score(r)
		require.GreaterOrEqual(t, s, MinScore, "mask %b", mask)
		require.LessOrEqual(t, s, MaxScore, "mask %b", mask)
		require.Equal(t, s, Score(r), "score must be deterministic")
	}
}

func TestScore_Monotonic(t *testing.T) {
	for mask := 0; mask < 1<<len(Rules); mask++ {
		for i, rule := range Rules {
			if mask&(1<<i) != 0 {
				continue
			}
			without := Score(recordForMask(mask))
			with := Score(recordForMask(mask | 1<<i))
			if rule.Delta > 0 {
				assert.GreaterOrEqual(t, with, without, "rule %s mask %b", rule.Name, mask)
			} else {
				assert.LessOrEqual(t, with, without, "rule %s mask %b", rule.Name, mask)
			}
		}
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, domain.ConfidenceLow, Confidence(39))
	assert.Equal(t, domain.ConfidenceMedium, Confidence(40))
	assert.Equal(t, domain.ConfidenceMedium, Confidence(69))
	assert.Equal(t, domain.ConfidenceHigh, Confidence(70))
}

// recordForMask builds a record where rule i fires iff bit i of mask is set.
func recordForMask(mask int) domain.FeatureRecord {
	r := baseRecord()
	on := func(i int) bool { return mask&(1<<i) != 0 }

	if on(0) {
		r.IsCurrentCustomer = 1
	}
	if on(1) {
		r.TenureMonths = 24
	}
	if on(2) {
		r.EmailsOpenedLast30d = 9
	}
	if on(3) {
		r.PastPositiveReplies = 1
	}
	if on(4) {
		r.TagHighPriority = 1
	}
	if on(5) {
		r.AvgResponseTimeHours = 48
	}
	if on(6) {
		r.LastInteractionDaysAgo = 30
	}
	if on(7) {
		r.TotalTicketsLast6mo = 9
	}
	return r
}
