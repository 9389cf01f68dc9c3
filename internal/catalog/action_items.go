// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// actionTemplates holds canned action items per document type.
var actionTemplates = map[string][]ActionTemplate{
	"employment": {
		{
			ID:          "emp_1",
			Task:        "Review and sign employment contract",
			DaysOffset:  7,
			Priority:    "high",
			Description: "Carefully review all terms before signing",
			Category:    "legal",
		},
		{
			ID:          "emp_2",
			Task:        "Set up direct deposit and benefits",
			DaysOffset:  14,
			Priority:    "medium",
			Description: "Provide banking information and select benefits",
			Category:    "administrative",
		},
		{
			ID:          "emp_3",
			Task:        "Review non-compete and IP assignment clauses",
			DaysOffset:  3,
			Priority:    "high",
			Description: "Understand restrictions on future employment and intellectual property",
			Category:    "legal",
		},
		{
			ID:          "emp_4",
			Task:        "Confirm probationary period terms",
			DaysOffset:  5,
			Priority:    "medium",
			Description: "Clarify performance expectations and evaluation criteria",
			Category:    "administrative",
		},
	},
	"lease": {
		{
			ID:          "lease_1",
			Task:        "Schedule property inspection",
			DaysOffset:  3,
			Priority:    "high",
			Description: "Document any existing damages before move-in",
			Category:    "property",
		},
		{
			ID:          "lease_2",
			Task:        "Review security deposit terms",
			DaysOffset:  5,
			Priority:    "medium",
			Description: "Understand conditions for deposit return",
			Category:    "financial",
		},
		{
			ID:          "lease_3",
			Task:        "Confirm utilities and services setup",
			DaysOffset:  7,
			Priority:    "medium",
			Description: "Arrange for electricity, gas, water, internet services",
			Category:    "administrative",
		},
	},
	"loan": {
		{
			ID:          "loan_1",
			Task:        "Review loan terms and interest rates",
			DaysOffset:  5,
			Priority:    "high",
			Description: "Understand all fees, rates, and payment schedules",
			Category:    "financial",
		},
		{
			ID:          "loan_2",
			Task:        "Set up automatic payments",
			DaysOffset:  10,
			Priority:    "medium",
			Description: "Arrange automatic deductions to avoid late fees",
			Category:    "administrative",
		},
	},
	"contract": {
		{
			ID:          "contract_1",
			Task:        "Review deliverables and timelines",
			DaysOffset:  3,
			Priority:    "high",
			Description: "Confirm all project requirements and deadlines",
			Category:    "project",
		},
		{
			ID:          "contract_2",
			Task:        "Clarify payment terms and schedule",
			DaysOffset:  5,
			Priority:    "high",
			Description: "Understand payment milestones and methods",
			Category:    "financial",
		},
	},
	"general": {
		{
			ID:          "general_1",
			Task:        "Review key terms and conditions",
			DaysOffset:  7,
			Priority:    "medium",
			Description: "Ensure understanding of all important clauses",
			Category:    "legal",
		},
		{
			ID:          "general_2",
			Task:        "Identify required signatures and dates",
			DaysOffset:  3,
			Priority:    "high",
			Description: "Complete all necessary documentation",
			Category:    "administrative",
		},
	},
}

// deadlinePatterns extract obligation deadlines phrased as counts of
// days, weeks, or months.
var deadlinePatterns = []DeadlinePattern{
	{
		Pattern:  `(?:must|shall|required).*?(?:within|by)\s*(\d+)\s*(days?|weeks?|months?)`,
		Priority: "high",
		Category: "compliance",
	},
	{
		Pattern:  `deadline.*?(\d+)\s*(days?|weeks?|months?)`,
		Priority: "medium",
		Category: "deadline",
	},
	{
		Pattern:  `(?:submit|provide|deliver).*?(?:within|by)\s*(\d+)\s*(days?|weeks?|months?)`,
		Priority: "medium",
		Category: "submission",
	},
	{
		Pattern:  `(?:expires?|expiration).*?(\d+)\s*(days?|weeks?|months?)`,
		Priority: "high",
		Category: "expiration",
	},
	{
		Pattern:  `(?:notice|notification).*?(\d+)\s*(days?|weeks?|months?)`,
		Priority: "medium",
		Category: "notice",
	},
}

// riskActionTemplates turn risk findings into follow-up tasks.
var riskActionTemplates = map[string]RiskActionTemplate{
	"high": {
		TaskPrefix:        "Address high-risk item",
		DaysOffset:        5,
		Priority:          "high",
		Category:          "risk_mitigation",
		DescriptionPrefix: "Review and mitigate",
	},
	"medium": {
		TaskPrefix:        "Review medium-risk item",
		DaysOffset:        10,
		Priority:          "medium",
		Category:          "risk_review",
		DescriptionPrefix: "Evaluate and address",
	},
	"low": {
		TaskPrefix:        "Monitor low-risk item",
		DaysOffset:        30,
		Priority:          "low",
		Category:          "monitoring",
		DescriptionPrefix: "Keep track of",
	},
}
