// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// compliancePatterns is keyed by compliance category.
var compliancePatterns = map[string][]CompliancePattern{
	"regulatory": {
		{
			Category:         "regulatory",
			Pattern:          `(?:must comply|compliance|regulatory|regulation).*?(?:law|statute|code|rule)`,
			Description:      "Regulatory compliance requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "regulatory",
			Pattern:          `(?:federal|state|local).*?(?:requirement|regulation|law)`,
			Description:      "Government regulation compliance",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "regulatory",
			Pattern:          `(?:SEC|FDA|EPA|OSHA|FTC).*?(?:compliance|requirement|regulation)`,
			Description:      "Federal agency compliance requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "regulatory",
			Pattern:          `(?:GDPR|CCPA|HIPAA|SOX).*?(?:compliance|requirement)`,
			Description:      "Data protection and privacy compliance",
			RequirementLevel: "mandatory",
		},
	},
	"reporting": {
		{
			Category:         "reporting",
			Pattern:          `(?:report|notify|disclosure).*?(?:required|mandatory|must)`,
			Description:      "Reporting requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "reporting",
			Pattern:          `(?:annual|monthly|quarterly).*?(?:report|filing|submission)`,
			Description:      "Periodic reporting requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "reporting",
			Pattern:          `(?:tax|financial).*?(?:report|filing|return)`,
			Description:      "Tax and financial reporting",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "reporting",
			Pattern:          `(?:audit|examination).*?(?:required|mandatory|annual)`,
			Description:      "Audit requirement",
			RequirementLevel: "mandatory",
		},
	},
	"certification": {
		{
			Category:         "certification",
			Pattern:          `(?:certify|certification|certificate).*?(?:required|needed|must)`,
			Description:      "Certification requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "certification",
			Pattern:          `(?:license|permit|authorization).*?(?:required|valid|current)`,
			Description:      "Licensing requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "certification",
			Pattern:          `(?:professional|industry).*?(?:certification|license)`,
			Description:      "Professional certification requirement",
			RequirementLevel: "recommended",
		},
		{
			Category:         "certification",
			Pattern:          `(?:ISO|SOC|PCI).*?(?:certification|compliance|certified)`,
			Description:      "Industry standard certification",
			RequirementLevel: "recommended",
		},
	},
	"training": {
		{
			Category:         "training",
			Pattern:          `(?:training|education).*?(?:required|mandatory|must)`,
			Description:      "Training requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "training",
			Pattern:          `(?:continuing education|professional development).*?(?:required|hours)`,
			Description:      "Continuing education requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "training",
			Pattern:          `(?:safety|security).*?(?:training|certification).*?(?:required|annual)`,
			Description:      "Safety or security training requirement",
			RequirementLevel: "mandatory",
		},
	},
	"documentation": {
		{
			Category:         "documentation",
			Pattern:          `(?:document|record|maintain).*?(?:required|must|shall)`,
			Description:      "Documentation requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "documentation",
			Pattern:          `(?:retain|preserve).*?(?:records|documents).*?(?:\d+)\s*(?:years?|months?)`,
			Description:      "Record retention requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "documentation",
			Pattern:          `(?:written|documented).*?(?:policy|procedure).*?(?:required|must)`,
			Description:      "Written policy requirement",
			RequirementLevel: "mandatory",
		},
	},
	"insurance": {
		{
			Category:         "insurance",
			Pattern:          `(?:insurance|coverage).*?(?:required|mandatory|must)`,
			Description:      "Insurance requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "insurance",
			Pattern:          `(?:liability|professional).*?(?:insurance|coverage)`,
			Description:      "Liability insurance requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "insurance",
			Pattern:          `(?:minimum|coverage).*?(?:\$[\d,]+|\d+\s*(?:million|thousand))`,
			Description:      "Minimum insurance coverage requirement",
			RequirementLevel: "mandatory",
		},
	},
	"security": {
		{
			Category:         "security",
			Pattern:          `(?:security|cybersecurity).*?(?:requirement|standard|compliance)`,
			Description:      "Security requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "security",
			Pattern:          `(?:background check|security clearance).*?(?:required|must)`,
			Description:      "Security clearance requirement",
			RequirementLevel: "mandatory",
		},
		{
			Category:         "security",
			Pattern:          `(?:encryption|secure).*?(?:required|must|shall)`,
			Description:      "Data security requirement",
			RequirementLevel: "mandatory",
		},
	},
}

// documentCompliance maps document types to the compliance categories
// that apply to them.
var documentCompliance = map[string][]string{
	"employment": {"regulatory", "training", "documentation", "insurance"},
	"lease":      {"regulatory", "insurance", "documentation"},
	"loan":       {"regulatory", "reporting", "documentation"},
	"contract":   {"regulatory", "certification", "documentation", "insurance"},
	"healthcare": {"regulatory", "certification", "training", "documentation", "security"},
	"financial":  {"regulatory", "reporting", "certification", "documentation", "security"},
	"general":    {"regulatory", "documentation"},
}
