// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// General risk patterns organized by severity tier.

var criticalRisks = []RiskPattern{
	{
		Pattern:        `unlimited\s+liability`,
		Title:          "Unlimited Liability Exposure",
		Description:    "No cap on potential financial responsibility - could result in catastrophic financial loss",
		Category:       "financial",
		SeverityScore:  10,
		Mitigation:     "Negotiate liability caps or limitation clauses",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `personal\s+guarantee`,
		Title:          "Personal Guarantee Required",
		Description:    "Personal assets may be at risk if business defaults",
		Category:       "financial",
		SeverityScore:  9,
		Mitigation:     "Consider corporate guarantees or liability limitations",
		ApplicableDocs: []string{"loan", "lease", "service", "credit"},
	},
	{
		Pattern:        `cross[\s-]default`,
		Title:          "Cross-Default Clause",
		Description:    "Default on one obligation triggers default on all related obligations",
		Category:       "financial",
		SeverityScore:  10,
		Mitigation:     "Negotiate removal or narrowing of cross-default provisions",
		ApplicableDocs: []string{"loan", "credit", "bond"},
	},
	{
		Pattern:        `acceleration\s+clause`,
		Title:          "Acceleration Clause",
		Description:    "Entire debt becomes due immediately upon default",
		Category:       "financial",
		SeverityScore:  9,
		Mitigation:     "Negotiate grace periods and cure rights",
		ApplicableDocs: []string{"loan", "mortgage", "credit"},
	},
	{
		Pattern:        `liquidated\s+damages.*?\$[\d,]+(?:\.\d{2})?`,
		Title:          "High Liquidated Damages",
		Description:    "Predetermined penalties that could be substantial",
		Category:       "financial",
		SeverityScore:  8,
		Mitigation:     "Negotiate reasonable damage amounts and triggers",
		ApplicableDocs: []string{"service", "construction", "employment"},
	},
	{
		Pattern:        `penalties.*?(?:triple|treble)\s+damages`,
		Title:          "Treble Damages",
		Description:    "Damages multiplied by three for violations",
		Category:       "financial",
		SeverityScore:  9,
		Mitigation:     "Negotiate standard damages only",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `non-compete.*?(?:\d+)\s*(?:years?)`,
		Title:          "Long-term Non-Compete",
		Description:    "Extended non-compete period may severely limit future employment",
		Category:       "employment",
		SeverityScore:  9,
		Mitigation:     "Negotiate shorter duration and narrower scope",
		ApplicableDocs: []string{"employment", "consulting"},
	},
	{
		Pattern:        `all\s+intellectual\s+property.*?assign`,
		Title:          "Broad IP Assignment",
		Description:    "All intellectual property rights assigned to employer",
		Category:       "employment",
		SeverityScore:  8,
		Mitigation:     "Negotiate exceptions for personal projects",
		ApplicableDocs: []string{"employment", "consulting", "development"},
	},
	{
		Pattern:        `work\s+for\s+hire.*?(?:all|any)\s+work`,
		Title:          "Broad Work for Hire",
		Description:    "All work product belongs to employer, including personal time",
		Category:       "employment",
		SeverityScore:  8,
		Mitigation:     "Limit scope to work-related activities only",
		ApplicableDocs: []string{"employment", "consulting", "freelance"},
	},
	{
		Pattern:        `waiver\s+of\s+jury\s+trial`,
		Title:          "Jury Trial Waiver",
		Description:    "Waives constitutional right to jury trial",
		Category:       "legal",
		SeverityScore:  8,
		Mitigation:     "Consider retaining jury trial rights",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `irrevocable.*?power\s+of\s+attorney`,
		Title:          "Irrevocable Power of Attorney",
		Description:    "Grants permanent legal authority that cannot be revoked",
		Category:       "legal",
		SeverityScore:  10,
		Mitigation:     "Avoid or limit scope and duration",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `confession\s+of\s+judgment`,
		Title:          "Confession of Judgment",
		Description:    "Pre-authorized court judgment without trial",
		Category:       "legal",
		SeverityScore:  10,
		Mitigation:     "Remove this clause entirely",
		ApplicableDocs: []string{"loan", "credit", "commercial"},
	},
}

var highRisks = []RiskPattern{
	{
		Pattern:        `penalty.*?\$[\d,]+`,
		Title:          "Monetary Penalties",
		Description:    "Financial penalties specified for various violations",
		Category:       "financial",
		SeverityScore:  7,
		Mitigation:     "Review penalty triggers and negotiate amounts",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `interest.*?rate.*?(\d+(?:\.\d+)?)%`,
		Title:          "High Interest Rate",
		Description:    "Interest charges that may be above market rates",
		Category:       "financial",
		SeverityScore:  6,
		Mitigation:     "Compare rates and negotiate if necessary",
		ApplicableDocs: []string{"loan", "credit", "financing"},
	},
	{
		Pattern:        `variable\s+(?:interest\s+)?rate`,
		Title:          "Variable Interest Rate",
		Description:    "Interest rate can change, potentially increasing costs",
		Category:       "financial",
		SeverityScore:  6,
		Mitigation:     "Negotiate rate caps or conversion options",
		ApplicableDocs: []string{"loan", "credit", "mortgage"},
	},
	{
		Pattern:        `prepayment\s+penalty`,
		Title:          "Prepayment Penalty",
		Description:    "Penalty for paying off debt early",
		Category:       "financial",
		SeverityScore:  6,
		Mitigation:     "Negotiate removal or step-down provisions",
		ApplicableDocs: []string{"loan", "mortgage", "credit"},
	},
	{
		Pattern:        `joint\s+and\s+several\s+liability`,
		Title:          "Joint and Several Liability",
		Description:    "Each party responsible for full obligation amount",
		Category:       "financial",
		SeverityScore:  7,
		Mitigation:     "Negotiate several liability only",
		ApplicableDocs: []string{"lease", "partnership", "loan"},
	},
	{
		Pattern:        `(?:security\s+interest|collateral).*?(?:all|substantially\s+all)`,
		Title:          "Blanket Security Interest",
		Description:    "Creditor has claim on all or substantially all assets",
		Category:       "financial",
		SeverityScore:  7,
		Mitigation:     "Limit collateral to specific assets",
		ApplicableDocs: []string{"loan", "credit", "financing"},
	},
	{
		Pattern:        `terminate.*?(?:without\s+cause|at\s+will)`,
		Title:          "At-Will Termination",
		Description:    "Employment or contract can be terminated without cause",
		Category:       "employment",
		SeverityScore:  7,
		Mitigation:     "Negotiate severance packages or notice periods",
		ApplicableDocs: []string{"employment", "consulting"},
	},
	{
		Pattern:        `no\s+severance|without\s+severance`,
		Title:          "No Severance Pay",
		Description:    "No compensation upon termination",
		Category:       "employment",
		SeverityScore:  6,
		Mitigation:     "Negotiate severance package",
		ApplicableDocs: []string{"employment"},
	},
	{
		Pattern:        `(?:overtime|comp\s+time).*?exempt`,
		Title:          "Overtime Exemption",
		Description:    "Position may be exempt from overtime pay requirements",
		Category:       "employment",
		SeverityScore:  6,
		Mitigation:     "Verify exemption status and negotiate base salary accordingly",
		ApplicableDocs: []string{"employment"},
	},
	{
		Pattern:        `non-solicitation.*?(?:customers?|clients?|employees?)`,
		Title:          "Non-Solicitation Clause",
		Description:    "Restrictions on soliciting customers, clients, or employees",
		Category:       "employment",
		SeverityScore:  6,
		Mitigation:     "Negotiate reasonable scope and duration",
		ApplicableDocs: []string{"employment", "consulting", "partnership"},
	},
	{
		Pattern:        `indemnif.*?(?:all|any).*?(?:claims|damages)`,
		Title:          "Broad Indemnification",
		Description:    "Requirement to indemnify against broad range of claims",
		Category:       "legal",
		SeverityScore:  7,
		Mitigation:     "Limit indemnification scope and add carve-outs",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `hold\s+harmless`,
		Title:          "Hold Harmless Clause",
		Description:    "Agreement to absorb liability for other party's actions",
		Category:       "legal",
		SeverityScore:  7,
		Mitigation:     "Negotiate mutual hold harmless or limitations",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `waiver.*?(?:claims|rights|defenses)`,
		Title:          "Rights Waiver",
		Description:    "Waiver of legal rights or defenses",
		Category:       "legal",
		SeverityScore:  7,
		Mitigation:     "Retain important legal rights and defenses",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `attorneys?[\s']fees.*?(?:prevailing|successful)\s+party`,
		Title:          "Attorney Fees - Prevailing Party",
		Description:    "Winner of legal dispute gets attorney fees paid",
		Category:       "legal",
		SeverityScore:  6,
		Mitigation:     "Ensure reciprocal fee shifting or removal",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `automatic\s+renewal`,
		Title:          "Automatic Renewal Clause",
		Description:    "Contract automatically renews without explicit consent",
		Category:       "contractual",
		SeverityScore:  6,
		Mitigation:     "Set calendar reminders for renewal dates",
		ApplicableDocs: []string{"service", "lease", "subscription"},
	},
	{
		Pattern:        `confidential.*?perpetual`,
		Title:          "Perpetual Confidentiality",
		Description:    "Confidentiality obligations last indefinitely",
		Category:       "confidentiality",
		SeverityScore:  6,
		Mitigation:     "Negotiate time limits on confidentiality",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `exclusive\s+(?:dealing|relationship|agreement)`,
		Title:          "Exclusivity Clause",
		Description:    "Restricts ability to work with competitors or alternatives",
		Category:       "contractual",
		SeverityScore:  6,
		Mitigation:     "Negotiate exceptions or shorter exclusivity periods",
		ApplicableDocs: []string{"service", "distribution", "partnership"},
	},
}

var mediumRisks = []RiskPattern{
	{
		Pattern:        `late\s+(?:fee|charge|penalty)`,
		Title:          "Late Payment Fees",
		Description:    "Additional charges apply for late payments",
		Category:       "financial",
		SeverityScore:  4,
		Mitigation:     "Understand fee structure and payment deadlines",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `security\s+deposit.*?\$[\d,]+`,
		Title:          "Security Deposit Required",
		Description:    "Upfront deposit required, may be forfeited",
		Category:       "financial",
		SeverityScore:  4,
		Mitigation:     "Understand conditions for deposit return",
		ApplicableDocs: []string{"lease", "service", "rental"},
	},
	{
		Pattern:        `minimum\s+payment.*?\$[\d,]+`,
		Title:          "Minimum Payment Requirements",
		Description:    "Required minimum payments regardless of usage",
		Category:       "financial",
		SeverityScore:  4,
		Mitigation:     "Negotiate usage-based or lower minimums",
		ApplicableDocs: []string{"service", "credit", "subscription"},
	},
	{
		Pattern:        `credit\s+check|credit\s+report`,
		Title:          "Credit Check Required",
		Description:    "Authorization for credit checks may impact credit score",
		Category:       "financial",
		SeverityScore:  3,
		Mitigation:     "Understand when and how credit will be checked",
		ApplicableDocs: []string{"lease", "credit", "financing"},
	},
	{
		Pattern:        `guarantor|co-signer`,
		Title:          "Guarantor Required",
		Description:    "Third party must guarantee obligations",
		Category:       "financial",
		SeverityScore:  5,
		Mitigation:     "Consider alternatives or limit guarantor exposure",
		ApplicableDocs: []string{"lease", "loan", "credit"},
	},
	{
		Pattern:        `dispute.*?arbitration`,
		Title:          "Mandatory Arbitration",
		Description:    "Disputes must be resolved through arbitration, not courts",
		Category:       "legal",
		SeverityScore:  5,
		Mitigation:     "Understand arbitration process and costs",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `governing\s+law.*?(?:state|jurisdiction)`,
		Title:          "Governing Law Clause",
		Description:    "Contract governed by laws of specific jurisdiction",
		Category:       "legal",
		SeverityScore:  3,
		Mitigation:     "Understand implications of governing law",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `venue.*?(?:jurisdiction|court)`,
		Title:          "Venue Selection",
		Description:    "Legal disputes must be filed in specific location",
		Category:       "legal",
		SeverityScore:  4,
		Mitigation:     "Consider convenience and cost of specified venue",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `statute\s+of\s+limitations.*?(?:waive|extend)`,
		Title:          "Statute of Limitations Modification",
		Description:    "Changes to time limits for legal claims",
		Category:       "legal",
		SeverityScore:  4,
		Mitigation:     "Understand impact on legal remedy timeframes",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `notice.*?(\d+)\s*days?`,
		Title:          "Notice Period Required",
		Description:    "Advance notice required for termination or changes",
		Category:       "contractual",
		SeverityScore:  3,
		Mitigation:     "Calendar notice deadlines",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `assignment.*?(?:consent|approval)`,
		Title:          "Assignment Restrictions",
		Description:    "Limitations on transferring contract rights",
		Category:       "contractual",
		SeverityScore:  4,
		Mitigation:     "Understand when consent is required",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `modification.*?(?:writing|written)`,
		Title:          "Written Modification Required",
		Description:    "Changes must be documented in writing",
		Category:       "contractual",
		SeverityScore:  3,
		Mitigation:     "Ensure all changes are properly documented",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `time\s+is\s+of\s+the\s+essence`,
		Title:          "Time is of the Essence",
		Description:    "Strict adherence to deadlines is required",
		Category:       "contractual",
		SeverityScore:  4,
		Mitigation:     "Carefully manage all deadlines and deliverables",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `material\s+adverse\s+(?:change|effect)`,
		Title:          "Material Adverse Change",
		Description:    "Contract may be affected by significant negative changes",
		Category:       "contractual",
		SeverityScore:  5,
		Mitigation:     "Understand what constitutes material adverse change",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `performance\s+bond`,
		Title:          "Performance Bond Required",
		Description:    "Bond required to guarantee performance",
		Category:       "performance",
		SeverityScore:  4,
		Mitigation:     "Factor bond costs into pricing",
		ApplicableDocs: []string{"construction", "service", "government"},
	},
	{
		Pattern:        `(?:service\s+level|performance)\s+(?:agreement|standards)`,
		Title:          "Service Level Requirements",
		Description:    "Specific performance standards must be met",
		Category:       "performance",
		SeverityScore:  4,
		Mitigation:     "Ensure SLA targets are achievable",
		ApplicableDocs: []string{"service", "technology", "outsourcing"},
	},
	{
		Pattern:        `key\s+(?:man|person)\s+(?:insurance|clause)`,
		Title:          "Key Person Requirements",
		Description:    "Specific individuals must remain involved",
		Category:       "performance",
		SeverityScore:  4,
		Mitigation:     "Plan for key person transitions",
		ApplicableDocs: []string{"service", "consulting", "partnership"},
	},
}

var lowRisks = []RiskPattern{
	{
		Pattern:        `entire\s+agreement`,
		Title:          "Entire Agreement Clause",
		Description:    "Contract represents complete agreement between parties",
		Category:       "contractual",
		SeverityScore:  2,
		Mitigation:     "Ensure all important terms are in writing",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `severability`,
		Title:          "Severability Clause",
		Description:    "Invalid provisions don't void entire contract",
		Category:       "contractual",
		SeverityScore:  1,
		Mitigation:     "Generally favorable provision",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `force\s+majeure`,
		Title:          "Force Majeure Clause",
		Description:    "Protection for unforeseeable circumstances",
		Category:       "legal",
		SeverityScore:  1,
		Mitigation:     "Understand what events qualify",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `counterparts`,
		Title:          "Counterpart Execution",
		Description:    "Contract can be signed in separate copies",
		Category:       "contractual",
		SeverityScore:  1,
		Mitigation:     "Standard provision, no action needed",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `headings.*?(?:convenience|reference)`,
		Title:          "Headings Clause",
		Description:    "Contract headings are for reference only",
		Category:       "contractual",
		SeverityScore:  1,
		Mitigation:     "Standard provision, no action needed",
		ApplicableDocs: []string{"all"},
	},
	{
		Pattern:        `successors\s+and\s+assigns`,
		Title:          "Successors and Assigns",
		Description:    "Contract binds future owners/successors",
		Category:       "contractual",
		SeverityScore:  2,
		Mitigation:     "Understand binding nature on successors",
		ApplicableDocs: []string{"all"},
	},
}

// documentRisks holds risk patterns that only apply to one document type.
var documentRisks = map[string][]RiskPattern{
	"employment": {
		{
			Pattern:       `probation.*?period.*?(\d+)\s*(?:months?|days?)`,
			Title:         "Probationary Period",
			Description:   "Initial employment period with different terms",
			Category:      "employment",
			SeverityScore: 3,
			Mitigation:    "Understand probationary terms and timeline",
		},
		{
			Pattern:       `(?:bonus|commission).*?discretionary`,
			Title:         "Discretionary Compensation",
			Description:   "Bonus or commission payments at employer's discretion",
			Category:      "employment",
			SeverityScore: 5,
			Mitigation:    "Negotiate objective criteria for discretionary pay",
		},
		{
			Pattern:       `background\s+check`,
			Title:         "Background Check Required",
			Description:   "Employment contingent on background verification",
			Category:      "employment",
			SeverityScore: 3,
			Mitigation:    "Understand scope and timing of background checks",
		},
		{
			Pattern:       `drug\s+(?:test|screening)`,
			Title:         "Drug Testing Required",
			Description:   "Pre-employment or ongoing drug testing",
			Category:      "employment",
			SeverityScore: 3,
			Mitigation:    "Understand testing policy and procedures",
		},
	},
	"lease": {
		{
			Pattern:       `triple\s+net\s+lease|NNN`,
			Title:         "Triple Net Lease",
			Description:   "Tenant pays taxes, insurance, and maintenance",
			Category:      "real_estate",
			SeverityScore: 6,
			Mitigation:    "Budget for additional expenses beyond rent",
		},
		{
			Pattern:       `percentage\s+rent`,
			Title:         "Percentage Rent",
			Description:   "Rent based on percentage of gross sales",
			Category:      "real_estate",
			SeverityScore: 5,
			Mitigation:    "Negotiate reasonable percentage and breakpoints",
		},
		{
			Pattern:       `right\s+of\s+first\s+refusal`,
			Title:         "Right of First Refusal",
			Description:   "Landlord has right to match competing offers",
			Category:      "real_estate",
			SeverityScore: 4,
			Mitigation:    "Understand process and timing requirements",
		},
		{
			Pattern:       `(?:use|occupancy)\s+clause`,
			Title:         "Use Restrictions",
			Description:   "Limitations on how property can be used",
			Category:      "real_estate",
			SeverityScore: 4,
			Mitigation:    "Ensure use clause matches business needs",
		},
		{
			Pattern:       `co-tenancy\s+clause`,
			Title:         "Co-Tenancy Requirements",
			Description:   "Lease terms depend on other tenants",
			Category:      "real_estate",
			SeverityScore: 5,
			Mitigation:    "Understand impact of other tenant departures",
		},
	},
	"loan": {
		{
			Pattern:       `balloon\s+payment`,
			Title:         "Balloon Payment",
			Description:   "Large final payment at end of loan term",
			Category:      "financial",
			SeverityScore: 7,
			Mitigation:    "Plan for balloon payment or refinancing",
		},
		{
			Pattern:       `call\s+provision`,
			Title:         "Call Provision",
			Description:   "Lender can demand immediate repayment",
			Category:      "financial",
			SeverityScore: 8,
			Mitigation:    "Understand call triggers and negotiate protections",
		},
		{
			Pattern:       `debt[\s-]to[\s-]income\s+ratio`,
			Title:         "Debt-to-Income Covenant",
			Description:   "Must maintain specified debt-to-income ratio",
			Category:      "financial",
			SeverityScore: 6,
			Mitigation:    "Monitor ratio and plan for compliance",
		},
		{
			Pattern:       `negative\s+covenant`,
			Title:         "Negative Covenants",
			Description:   "Restrictions on business activities",
			Category:      "financial",
			SeverityScore: 5,
			Mitigation:    "Understand all prohibited activities",
		},
		{
			Pattern:       `material\s+adverse\s+(?:change|effect)`,
			Title:         "Material Adverse Change",
			Description:   "Lender can act on significant negative changes",
			Category:      "financial",
			SeverityScore: 6,
			Mitigation:    "Understand MAC definition and implications",
		},
	},
	"insurance": {
		{
			Pattern:       `exclusion.*?(?:act\s+of\s+god|war|nuclear)`,
			Title:         "Major Exclusions",
			Description:   "Significant events excluded from coverage",
			Category:      "insurance",
			SeverityScore: 6,
			Mitigation:    "Understand all policy exclusions",
		},
		{
			Pattern:       `deductible.*?\$[\d,]+`,
			Title:         "High Deductible",
			Description:   "Significant out-of-pocket expense before coverage",
			Category:      "insurance",
			SeverityScore: 4,
			Mitigation:    "Budget for deductible amounts",
		},
		{
			Pattern:       `co-insurance.*?(\d+)%`,
			Title:         "Co-Insurance Requirement",
			Description:   "Insured must pay percentage of covered losses",
			Category:      "insurance",
			SeverityScore: 4,
			Mitigation:    "Understand co-insurance percentages",
		},
		{
			Pattern:       `claims\s+made\s+basis`,
			Title:         "Claims-Made Coverage",
			Description:   "Coverage only for claims made during policy period",
			Category:      "insurance",
			SeverityScore: 5,
			Mitigation:    "Consider extended reporting period",
		},
	},
	"credit": {
		{
			Pattern:       `universal\s+default`,
			Title:         "Universal Default",
			Description:   "Default on other obligations affects this credit",
			Category:      "financial",
			SeverityScore: 8,
			Mitigation:    "Manage all credit obligations carefully",
		},
		{
			Pattern:       `credit\s+limit\s+decrease`,
			Title:         "Credit Limit Reduction",
			Description:   "Lender can reduce available credit",
			Category:      "financial",
			SeverityScore: 6,
			Mitigation:    "Understand conditions for limit changes",
		},
		{
			Pattern:       `cash\s+advance\s+fee`,
			Title:         "Cash Advance Fees",
			Description:   "Additional fees for cash advances",
			Category:      "financial",
			SeverityScore: 4,
			Mitigation:    "Avoid cash advances when possible",
		},
		{
			Pattern:       `over[\s-]limit\s+fee`,
			Title:         "Over-Limit Fees",
			Description:   "Penalties for exceeding credit limit",
			Category:      "financial",
			SeverityScore: 4,
			Mitigation:    "Monitor credit usage carefully",
		},
	},
	"construction": {
		{
			Pattern:       `mechanic[s']?\s+lien`,
			Title:         "Mechanic's Lien Rights",
			Description:   "Contractors can place liens on property",
			Category:      "construction",
			SeverityScore: 7,
			Mitigation:    "Ensure proper lien waivers and payments",
		},
		{
			Pattern:       `change\s+order`,
			Title:         "Change Order Process",
			Description:   "Procedures for modifying construction scope",
			Category:      "construction",
			SeverityScore: 4,
			Mitigation:    "Understand change order approval process",
		},
		{
			Pattern:       `substantial\s+completion`,
			Title:         "Substantial Completion",
			Description:   "Definition of project completion may be subjective",
			Category:      "construction",
			SeverityScore: 4,
			Mitigation:    "Define completion criteria clearly",
		},
		{
			Pattern:       `warranty.*?(?:one|1)\s+year`,
			Title:         "Limited Warranty Period",
			Description:   "Construction warranty may be limited",
			Category:      "construction",
			SeverityScore: 4,
			Mitigation:    "Understand warranty scope and duration",
		},
	},
}
