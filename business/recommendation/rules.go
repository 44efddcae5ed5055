package recommendation

import (
	"customerRenewal/domain"
)

const (
	GroupIndustry        = "industry"
	GroupEmailBehavior   = "email_behavior"
	GroupTenure          = "relationship_tenure"
	GroupSupportTickets  = "support_tickets"
	GroupResponseTime    = "response_time"
	GroupLastInteraction = "last_interaction"
	GroupTags            = "tags"
	GroupOutcomeTier     = "outcome_tier"
)

// Rule contributes Text when Applies holds for the record and local score.
type Rule struct {
	ID      string
	Text    string
	Applies func(r domain.FeatureRecord, score int) bool
}

// Group is an ordered set of rules. In an exclusive group only the first
// matching rule fires; otherwise every matching rule fires in order.
type Group struct {
	Name      string
	Exclusive bool
	Rules     []Rule
}

func isIndustry(ind domain.Industry) func(domain.FeatureRecord, int) bool {
	return func(r domain.FeatureRecord, _ int) bool { return r.Industry == ind }
}

var industryGroup = Group{
	Name: GroupIndustry,
	Rules: []Rule{
		{
			ID:      "industry.construction.messaging",
			Applies: isIndustry(domain.IndustryConstruction),
			Text: "Construction clients respond best to straightforward, problem-solving communication. " +
				"Use a StoryBrand-style message that focuses on reducing downtime, improving workflow, " +
				"and helping **their crews succeed on the jobsite**.",
		},
		{
			ID:      "industry.construction.content",
			Applies: isIndustry(domain.IndustryConstruction),
			Text: "Offer a short 'toolbox talk' style training video — educational content builds authority " +
				"and aligns with Chet Holmes' 'education-based marketing' strategy.",
		},
		{
			ID:      "industry.healthcare.messaging",
			Applies: isIndustry(domain.IndustryHealthcare),
			Text: "Healthcare clients value compliance, reliability, and patient-impact messaging. Frame your outreach " +
				"as helping them **protect patient outcomes and reduce operational risk**.",
		},
		{
			ID:      "industry.healthcare.content",
			Applies: isIndustry(domain.IndustryHealthcare),
			Text: "According to Chet Holmes, becoming a 'trusted advisor' is essential. Send a short guide on " +
				"workflow efficiency or regulatory updates to build credibility.",
		},
		{
			ID:      "industry.retail.messaging",
			Applies: isIndustry(domain.IndustryRetail),
			Text: "Retail clients respond to messaging about driving customer engagement and increasing conversion rates. " +
				"Use StoryBrand principles to highlight how your solution boosts **sales speed and customer satisfaction**.",
		},
		{
			ID:      "industry.retail.content",
			Applies: isIndustry(domain.IndustryRetail),
			Text:    "Offer them a simple A/B test idea — retailers love quick-win experiments that drive revenue.",
		},
		{
			ID:      "industry.finance.messaging",
			Applies: isIndustry(domain.IndustryFinance),
			Text: "Finance clients gravitate to risk reduction, automation, and compliance messaging. " +
				"Clarify your value proposition using StoryBrand's framework: **help them avoid errors, speed audits, and reduce risk**.",
		},
		{
			ID:      "industry.finance.content",
			Applies: isIndustry(domain.IndustryFinance),
			Text:    "Send a concise, numbers-driven ROI breakdown — decision-makers in finance prefer logic and metrics.",
		},
		{
			ID:      "industry.tech.messaging",
			Applies: isIndustry(domain.IndustryTech),
			Text: "Tech clients appreciate speed, innovation, and efficiency. Position your offering as a way to help them " +
				"**scale faster with fewer bottlenecks**.",
		},
		{
			ID:      "industry.tech.content",
			Applies: isIndustry(domain.IndustryTech),
			Text:    "Use social proof — Jeb Blount emphasizes using high-frequency, high-quality touches. Share a case study from a similar tech stack.",
		},
	},
}

var emailVolumeGroup = Group{
	Name:      GroupEmailBehavior,
	Exclusive: true,
	Rules: []Rule{
		{
			ID: "email.overwhelmed",
			Applies: func(r domain.FeatureRecord, _ int) bool {
				return r.EmailsSentLast30d > 20 && r.EmailsOpenedLast30d < 5
			},
			Text: "High volume + low opens → the customer is overwhelmed. Reduce frequency temporarily and apply StoryBrand: " +
				"clarify the message so it focuses on THEIR survival and wins. Then follow with a personal call.",
		},
		{
			ID:      "email.very_low_engagement",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.EmailsOpenedLast30d < 3 },
			Text:    "Very low engagement. Use Jeb Blount’s multi-channel approach: add SMS or a short voicemail drop to break through.",
		},
	},
}

var emailActionGroup = Group{
	Name: GroupEmailBehavior,
	Rules: []Rule{
		{
			ID: "email.opening_not_acting",
			Applies: func(r domain.FeatureRecord, _ int) bool {
				return r.EmailsClickedLast30d == 0 && r.EmailsOpenedLast30d > 10
			},
			Text: "They're opening emails but not acting. Apply 'The Ultimate Sales Machine': offer a free micro-education " +
				"resource (checklist, mini-guide) to create movement.",
		},
	},
}

var tenureGroup = Group{
	Name:      GroupTenure,
	Exclusive: true,
	Rules: []Rule{
		{
			ID:      "tenure.early_stage",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.TenureMonths < 4 },
			Text: "Early-stage customer → follow Mike Weinberg’s principle: 'Own the sales story.' " +
				"Deliver a simple, confident message about how you help them achieve a specific win in the first 30 days.",
		},
		{
			ID:      "tenure.long_term",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.TenureMonths > 24 },
			Text: "Long-term customers respond extremely well to loyalty touches. Send a personalized thank-you + invite them " +
				"to an exclusive strategy call. Chet Holmes calls this the 'Dream 100 nurturing play.'",
		},
	},
}

var supportTicketsGroup = Group{
	Name: GroupSupportTickets,
	Rules: []Rule{
		{
			ID:      "support.friction",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.TotalTicketsLast6mo > 5 },
			Text: "High ticket volume → Friction! Fix outstanding issues fast. Then follow with a value message reinforcing " +
				"how your support helps them avoid future headaches (StoryBrand: remove pain points).",
		},
	},
}

var responseTimeGroup = Group{
	Name: GroupResponseTime,
	Rules: []Rule{
		{
			ID:      "response.slow",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.AvgResponseTimeHours > 24 },
			Text: "Slow responses weaken trust. Improve response speed, then send a brief ‘we’re tightening support’ message. " +
				"Blount emphasizes responsiveness as a key competitive advantage.",
		},
	},
}

var lastInteractionGroup = Group{
	Name: GroupLastInteraction,
	Rules: []Rule{
		{
			ID:      "interaction.reengage",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.LastInteractionDaysAgo > 20 },
			Text: "Re-engage immediately using a **personalized video message**. Jeb Blount notes that video dramatically " +
				"improves reconnect rates because it adds warmth and credibility.",
		},
	},
}

var tagsGroup = Group{
	Name: GroupTags,
	Rules: []Rule{
		{
			ID:      "tag.high_priority",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.HighPriority() },
			Text: "High-priority customer → Use a **Chet Holmes Dream 100** play: assign a top rep, schedule a proactive call, " +
				"and deliver an educational resource tailored to their role.",
		},
		{
			ID:      "tag.new_lead",
			Applies: func(r domain.FeatureRecord, _ int) bool { return r.NewLead() },
			Text:    "New lead → follow StoryBrand: make THEM the hero. Present a simple plan to get their first quick win in 15 minutes.",
		},
	},
}

var outcomeTierGroup = Group{
	Name:      GroupOutcomeTier,
	Exclusive: true,
	Rules: []Rule{
		{
			ID:      "tier.low",
			Applies: func(_ domain.FeatureRecord, score int) bool { return score < 40 },
			Text: "Renewal likelihood is low — escalate to a senior rep and use a multi-channel cadence (email + call + SMS). " +
				"This aligns with Fanatical Prospecting’s 'balanced attack' strategy.",
		},
		{
			ID:      "tier.medium",
			Applies: func(_ domain.FeatureRecord, score int) bool { return score >= 40 && score < 70 },
			Text: "Medium likelihood — focus on delivering trust-building, education-based content (Chet Holmes) and reconnect " +
				"with a friendly, low-pressure outreach sequence.",
		},
		{
			ID:      "tier.high",
			Applies: func(_ domain.FeatureRecord, _ int) bool { return true },
			Text: "High likelihood — reinforce good momentum. Offer a personalized roadmap or optional upgrade conversation " +
				"to deepen the relationship.",
		},
	},
}

// Groups is the full rule set in evaluation order.
var Groups = []Group{
	industryGroup,
	emailVolumeGroup,
	emailActionGroup,
	tenureGroup,
	supportTicketsGroup,
	responseTimeGroup,
	lastInteractionGroup,
	tagsGroup,
	outcomeTierGroup,
}
