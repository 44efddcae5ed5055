package utils

import (
	"customerRenewal/domain"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullRecord = `{
	"industry": "Healthcare",
	"region": "Midwest",
	"channel": "email",
	"company_size": "Small",
	"tenure_months": 15,
	"is_current_customer": 1,
	"total_tickets_last_6mo": 1,
	"avg_response_time_hours": 3,
	"emails_sent_last_30d": 12,
	"emails_opened_last_30d": 8,
	"emails_clicked_last_30d": 2,
	"past_positive_replies": 2,
	"last_interaction_days_ago": 5,
	"tag_high_priority": 1,
	"tag_new_lead": 0
}`

func TestDecodeFeatureRecord(t *testing.T) {
	record, err := DecodeFeatureRecord(strings.NewReader(fullRecord), validator.New())
	require.NoError(t, err)

	assert.Equal(t, domain.IndustryHealthcare, record.Industry)
	assert.Equal(t, 15, record.TenureMonths)
	assert.True(t, record.CurrentCustomer())
	assert.Equal(t, 3.0, record.AvgResponseTimeHours)
	assert.Equal(t, 0, record.TagNewLead)
}

func TestDecodeFeatureRecord_ExplicitZerosAccepted(t *testing.T) {
	body := strings.NewReplacer(
		`"tenure_months": 15`, `"tenure_months": 0`,
		`"is_current_customer": 1`, `"is_current_customer": 0`,
		`"avg_response_time_hours": 3`, `"avg_response_time_hours": 0`,
	).Replace(fullRecord)

	record, err := DecodeFeatureRecord(strings.NewReader(body), validator.New())
	require.NoError(t, err)
	assert.Zero(t, record.TenureMonths)
	assert.False(t, record.CurrentCustomer())
	assert.Zero(t, record.AvgResponseTimeHours)
}

func TestDecodeFeatureRecord_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{`, "failed to parse record"},
		{"empty body", ``, "failed to parse record"},
		{"misspelled key", strings.Replace(fullRecord, `"tenure_months"`, `"tenure_month"`, 1), "failed to parse record"},
		{"missing numeric key", strings.Replace(fullRecord, `"is_current_customer": 1,`, ``, 1), "invalid record"},
		{"missing float key", strings.Replace(fullRecord, `"avg_response_time_hours": 3,`, ``, 1), "invalid record"},
		{"missing flag key", strings.Replace(fullRecord, `,
	"tag_new_lead": 0`, ``, 1), "invalid record"},
		{"null numeric", strings.Replace(fullRecord, `"tenure_months": 15`, `"tenure_months": null`, 1), "invalid record"},
		{"negative count", strings.Replace(fullRecord, `"tenure_months": 15`, `"tenure_months": -1`, 1), "invalid record"},
		{"flag out of range", strings.Replace(fullRecord, `"tag_high_priority": 1`, `"tag_high_priority": 2`, 1), "invalid record"},
		{"unknown industry", strings.Replace(fullRecord, `"Healthcare"`, `"Mining"`, 1), "invalid record"},
		{"trailing record", fullRecord + fullRecord, "failed to parse record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFeatureRecord(strings.NewReader(tt.body), validator.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
