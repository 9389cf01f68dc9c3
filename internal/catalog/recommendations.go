// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// RiskRecommendation fires when at least MinCount risks of Level are
// found. Template takes the count and a plural suffix.
type RiskRecommendation struct {
	Level    string
	MinCount int
	Template string
}

// RiskRecommendations in evaluation order.
var RiskRecommendations = []RiskRecommendation{
	{Level: "high", MinCount: 1, Template: "⚠️ %d high-risk item%s identified. Consider consulting with a legal professional."},
	{Level: "medium", MinCount: 4, Template: "📋 %d medium-risk item%s found. Review each carefully before proceeding."},
	{Level: "low", MinCount: 10, Template: "ℹ️ %d low-risk item%s detected. Consider a general review of terms."},
}

// ClauseRecommendations is keyed by clause type.
var ClauseRecommendations = map[string]string{
	"non_compete":           "🚫 Non-compete clause detected. Negotiate scope, duration, and geographic limitations.",
	"intellectual_property": "💡 IP assignment clause found. Clarify rights for personal projects and prior work.",
	"penalty":               "💰 Penalty clauses identified. Understand all potential financial consequences.",
	"termination":           "📅 Review termination conditions and notice requirements carefully.",
	"confidentiality":       "🤐 Confidentiality clauses present. Understand scope and duration of obligations.",
	"liability":             "⚖️ Liability clauses found. Review limitations and indemnification terms.",
	"dispute_resolution":    "🏛️ Arbitration clause detected. Understand dispute resolution procedures.",
	"force_majeure":         "🌪️ Force majeure clause present. Review covered events and procedures.",
}

// DocumentTypeRecommendations is keyed by document type.
var DocumentTypeRecommendations = map[string][]string{
	"employment": {
		"💼 Verify compensation details including base salary, bonuses, and benefits",
		"📝 Understand probationary period terms and performance expectations",
		"🏠 Check if remote work or flexible arrangements are addressed",
		"📊 Review performance evaluation criteria and advancement opportunities",
		"🎯 Clarify job responsibilities and reporting structure",
		"⏰ Understand overtime policies and work schedule requirements",
	},
	"lease": {
		"🏠 Inspect property thoroughly before signing",
		"💵 Understand all fees including security deposit, pet fees, and utilities",
		"📋 Review maintenance responsibilities and repair procedures",
		"🚪 Check move-in and move-out procedures and requirements",
		"📞 Verify contact information for property management",
		"🔧 Understand appliance and fixture responsibilities",
	},
	"loan": {
		"💳 Review interest rates and payment schedules carefully",
		"📊 Understand all fees including origination, processing, and late fees",
		"💰 Clarify prepayment penalties and early payoff options",
		"📈 Review variable vs. fixed rate implications",
		"🏦 Understand default consequences and remedies",
		"📱 Set up payment reminders and automatic payments",
	},
	"contract": {
		"📋 Review all deliverables and acceptance criteria",
		"💼 Understand change order and scope modification procedures",
		"💰 Clarify payment terms, milestones, and invoicing",
		"📅 Review all deadlines and delivery schedules",
		"🤝 Understand subcontracting and assignment rights",
		"📊 Review performance metrics and quality standards",
	},
	"insurance": {
		"🛡️ Understand coverage limits and deductibles",
		"📋 Review exclusions and limitations carefully",
		"💸 Understand premium payment schedules and grace periods",
		"📞 Know claims procedures and required documentation",
		"🔄 Review renewal terms and cancellation policies",
		"📊 Compare coverage with other policies to avoid gaps",
	},
	"healthcare": {
		"🏥 Understand covered services and treatment options",
		"💊 Review prescription drug coverage and formulary",
		"🏥 Check network providers and referral requirements",
		"💰 Understand copayments, deductibles, and out-of-pocket maximums",
		"📋 Review pre-authorization requirements for procedures",
		"📱 Understand telehealth and virtual care options",
	},
}

// GeneralRecommendations apply to every document.
var GeneralRecommendations = []string{
	"📄 Keep copies of all signed documents in a secure location",
	"⏰ Add all important deadlines and dates to your calendar",
	"❓ Ask questions about any unclear terms before signing",
	"👥 Consider having a trusted advisor review important sections",
	"🔍 Read the entire document, not just the summary",
	"📱 Take photos or screenshots of key pages for quick reference",
}

// Financial recommendation thresholds and templates.
const (
	HighAmountThreshold     = 10000.0
	HighAmountTemplate      = "💰 Significant financial amounts detected ($%s). Consider professional financial review."
	MultipleAmountsMin      = 5
	MultipleAmountsTemplate = "📊 Multiple financial obligations identified. Create a comprehensive budget plan."
	PaymentScheduleTemplate = "📅 Payment schedule detected. Set up automated reminders and payments."
)

// PaymentScheduleKeywords mark recurring payment obligations.
var PaymentScheduleKeywords = []string{"monthly", "quarterly", "annual", "installment"}

// RecommendationPriorityOrder ranks recommendations by their leading
// emoji; unknown prefixes sort last.
var RecommendationPriorityOrder = []string{"⚠️", "💰", "🚫", "💡", "⚖️", "📋", "💼", "🏠", "📄"}
