package domain

type Industry string

const (
	IndustryConstruction Industry = "Construction"
	IndustryHealthcare   Industry = "Healthcare"
	IndustryRetail       Industry = "Retail"
	IndustryFinance      Industry = "Finance"
	IndustryTech         Industry = "Tech"
)

type Region string

const (
	RegionSouth     Region = "South"
	RegionWest      Region = "West"
	RegionMidwest   Region = "Midwest"
	RegionNortheast Region = "Northeast"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type CompanySize string

const (
	CompanySizeSmall      CompanySize = "Small"
	CompanySizeMedium     CompanySize = "Medium"
	CompanySizeEnterprise CompanySize = "Enterprise"
)

// Industries lists every industry in display order.
var Industries = []Industry{
	IndustryConstruction,
	IndustryHealthcare,
	IndustryRetail,
	IndustryFinance,
	IndustryTech,
}

// FeatureRecord is one customer's attributes for a single evaluation.
// Flags are encoded as 0/1 to match the classifier's training data.
type FeatureRecord struct {
	Industry    Industry    `json:"industry" validate:"required,oneof=Construction Healthcare Retail Finance Tech"`
	Region      Region      `json:"region" validate:"required,oneof=South West Midwest Northeast"`
	Channel     Channel     `json:"channel" validate:"required,oneof=email sms"`
	CompanySize CompanySize `json:"company_size" validate:"required,oneof=Small Medium Enterprise"`

	TenureMonths           int     `json:"tenure_months" validate:"gte=0"`
	IsCurrentCustomer      int     `json:"is_current_customer" validate:"oneof=0 1"`
	TotalTicketsLast6mo    int     `json:"total_tickets_last_6mo" validate:"gte=0"`
	AvgResponseTimeHours   float64 `json:"avg_response_time_hours" validate:"gte=0"`
	EmailsSentLast30d      int     `json:"emails_sent_last_30d" validate:"gte=0"`
	EmailsOpenedLast30d    int     `json:"emails_opened_last_30d" validate:"gte=0"`
	EmailsClickedLast30d   int     `json:"emails_clicked_last_30d" validate:"gte=0"`
	PastPositiveReplies    int     `json:"past_positive_replies" validate:"gte=0"`
	LastInteractionDaysAgo int     `json:"last_interaction_days_ago" validate:"gte=0"`

	TagHighPriority int `json:"tag_high_priority" validate:"oneof=0 1"`
	TagNewLead      int `json:"tag_new_lead" validate:"oneof=0 1"`
}

func (r FeatureRecord) CurrentCustomer() bool { return r.IsCurrentCustomer == 1 }
func (r FeatureRecord) HighPriority() bool    { return r.TagHighPriority == 1 }
func (r FeatureRecord) NewLead() bool         { return r.TagNewLead == 1 }

// FeatureRecordInput is the submitted form of a FeatureRecord. Numeric and
// flag fields are pointers so an absent attribute fails validation instead of
// reading as zero.
type FeatureRecordInput struct {
	Industry    Industry    `json:"industry" validate:"required,oneof=Construction Healthcare Retail Finance Tech"`
	Region      Region      `json:"region" validate:"required,oneof=South West Midwest Northeast"`
	Channel     Channel     `json:"channel" validate:"required,oneof=email sms"`
	CompanySize CompanySize `json:"company_size" validate:"required,oneof=Small Medium Enterprise"`

	TenureMonths           *int     `json:"tenure_months" validate:"required,gte=0"`
	IsCurrentCustomer      *int     `json:"is_current_customer" validate:"required,oneof=0 1"`
	TotalTicketsLast6mo    *int     `json:"total_tickets_last_6mo" validate:"required,gte=0"`
	AvgResponseTimeHours   *float64 `json:"avg_response_time_hours" validate:"required,gte=0"`
	EmailsSentLast30d      *int     `json:"emails_sent_last_30d" validate:"required,gte=0"`
	EmailsOpenedLast30d    *int     `json:"emails_opened_last_30d" validate:"required,gte=0"`
	EmailsClickedLast30d   *int     `json:"emails_clicked_last_30d" validate:"required,gte=0"`
	PastPositiveReplies    *int     `json:"past_positive_replies" validate:"required,gte=0"`
	LastInteractionDaysAgo *int     `json:"last_interaction_days_ago" validate:"required,gte=0"`

	TagHighPriority *int `json:"tag_high_priority" validate:"required,oneof=0 1"`
	TagNewLead      *int `json:"tag_new_lead" validate:"required,oneof=0 1"`
}

// Record converts a validated input. It must only be called after validation
// has confirmed every pointer is set.
func (in FeatureRecordInput) Record() FeatureRecord {
	return FeatureRecord{
		Industry:               in.Industry,
		Region:                 in.Region,
		Channel:                in.Channel,
		CompanySize:            in.CompanySize,
		TenureMonths:           *in.TenureMonths,
		IsCurrentCustomer:      *in.IsCurrentCustomer,
		TotalTicketsLast6mo:    *in.TotalTicketsLast6mo,
		AvgResponseTimeHours:   *in.AvgResponseTimeHours,
		EmailsSentLast30d:      *in.EmailsSentLast30d,
		EmailsOpenedLast30d:    *in.EmailsOpenedLast30d,
		EmailsClickedLast30d:   *in.EmailsClickedLast30d,
		PastPositiveReplies:    *in.PastPositiveReplies,
		LastInteractionDaysAgo: *in.LastInteractionDaysAgo,
		TagHighPriority:        *in.TagHighPriority,
		TagNewLead:             *in.TagNewLead,
	}
}
