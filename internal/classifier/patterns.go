// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

// typePatterns holds the indicator sets for one document type.
// Strong indicators weigh 3, moderate 2, and each context word adds
// its occurrence count capped at 5.
type typePatterns struct {
	DocumentType string
	Strong       []string
	Moderate     []string
	ContextWords []string
}

// classificationPatterns is ordered so that classification is
// deterministic when two types tie.
var classificationPatterns = []typePatterns{
	{
		DocumentType: "employment",
		Strong: []string{
			`employment\s+(?:agreement|contract)`,
			`job\s+(?:description|duties|responsibilities)`,
			`salary\s+and\s+benefits`,
			`termination\s+of\s+employment`,
			`non-compete\s+(?:agreement|clause)`,
			`employee\s+handbook\s+acknowledgment`,
			`at-will\s+employment`,
		},
		Moderate: []string{
			`position\s+title`,
			`reporting\s+(?:to|structure)`,
			`work\s+schedule`,
			`probationary\s+period`,
			`vacation\s+(?:time|days|policy)`,
			`performance\s+review`,
		},
		ContextWords: []string{"employee", "employer", "job", "position", "work", "salary", "benefits", "compensation"},
	},
	{
		DocumentType: "invoice",
		Strong: []string{
			`invoice\s+(?:number|#)`,
			`bill\s+to`,
			`amount\s+due`,
			`payment\s+terms`,
			`invoice\s+date`,
			`due\s+date`,
			`subtotal`,
		},
		Moderate: []string{
			`quantity\s+(?:x|×)`,
			`unit\s+price`,
			`tax\s+(?:amount|rate)`,
			`total\s+amount`,
			`remit\s+to`,
			`payment\s+method`,
		},
		ContextWords: []string{"invoice", "bill", "payment", "amount", "due", "total", "tax", "services"},
	},
	{
		DocumentType: "student_fees_notice",
		Strong: []string{
			`tuition\s+(?:fees|charges)`,
			`student\s+fees`,
			`semester\s+charges`,
			`academic\s+fees`,
			`registration\s+fees`,
			`late\s+payment\s+fee`,
			`student\s+account`,
		},
		Moderate: []string{
			`course\s+fees`,
			`lab\s+fees`,
			`activity\s+fees`,
			`technology\s+fee`,
			`parking\s+permit`,
			`health\s+services\s+fee`,
		},
		ContextWords: []string{"student", "tuition", "fees", "semester", "academic", "registration", "university", "college"},
	},
	{
		DocumentType: "legal_notice",
		Strong: []string{
			`legal\s+notice`,
			`notice\s+of\s+(?:default|violation|breach)`,
			`formal\s+notice`,
			`statutory\s+notice`,
			`public\s+notice`,
			`notice\s+to\s+(?:quit|vacate|cure)`,
		},
		Moderate: []string{
			`notice\s+period`,
			`compliance\s+required`,
			`legal\s+action`,
			`cure\s+period`,
			`notice\s+date`,
		},
		ContextWords: []string{"notice", "legal", "compliance", "violation", "default", "remedy", "action"},
	},
	{
		DocumentType: "warning_letter",
		Strong: []string{
			`warning\s+letter`,
			`formal\s+warning`,
			`written\s+warning`,
			`disciplinary\s+warning`,
			`cease\s+and\s+desist`,
			`violation\s+notice`,
		},
		Moderate: []string{
			`corrective\s+action`,
			`immediate\s+attention`,
			`consequences`,
			`further\s+action`,
			`compliance\s+required`,
		},
		ContextWords: []string{"warning", "violation", "cease", "desist", "action", "consequences", "compliance"},
	},
	{
		DocumentType: "divorce_decree",
		Strong: []string{
			`divorce\s+decree`,
			`dissolution\s+of\s+marriage`,
			`final\s+judgment\s+of\s+divorce`,
			`marital\s+settlement`,
			`custody\s+arrangement`,
			`alimony\s+(?:award|order)`,
		},
		Moderate: []string{
			`property\s+division`,
			`child\s+support`,
			`visitation\s+schedule`,
			`spousal\s+support`,
			`irreconcilable\s+differences`,
		},
		ContextWords: []string{"divorce", "marriage", "spouse", "custody", "alimony", "settlement", "dissolution"},
	},
	{
		DocumentType: "custody_agreement",
		Strong: []string{
			`custody\s+agreement`,
			`parenting\s+plan`,
			`child\s+custody`,
			`visitation\s+schedule`,
			`joint\s+custody`,
			`sole\s+custody`,
		},
		Moderate: []string{
			`parenting\s+time`,
			`holiday\s+schedule`,
			`decision\s+making`,
			`residential\s+parent`,
			`supervised\s+visitation`,
		},
		ContextWords: []string{"custody", "parenting", "visitation", "child", "parent", "schedule", "residential"},
	},
	{
		DocumentType: "eviction_notice",
		Strong: []string{
			`eviction\s+notice`,
			`notice\s+to\s+quit`,
			`notice\s+to\s+vacate`,
			`unlawful\s+detainer`,
			`pay\s+or\s+quit`,
			`cure\s+or\s+quit`,
		},
		Moderate: []string{
			`rental\s+violation`,
			`lease\s+breach`,
			`unpaid\s+rent`,
			`possession\s+of\s+premises`,
			`sheriff\s+department`,
		},
		ContextWords: []string{"eviction", "quit", "vacate", "rent", "lease", "tenant", "landlord", "premises"},
	},
	{
		DocumentType: "demand_letter",
		Strong: []string{
			`demand\s+letter`,
			`formal\s+demand`,
			`payment\s+demand`,
			`demand\s+for\s+payment`,
			`final\s+demand`,
			`demand\s+notice`,
		},
		Moderate: []string{
			`amount\s+owed`,
			`collection\s+action`,
			`legal\s+proceedings`,
			`immediate\s+payment`,
			`default\s+on\s+payment`,
		},
		ContextWords: []string{"demand", "payment", "owed", "collection", "debt", "legal", "proceedings"},
	},
	{
		DocumentType: "lease",
		Strong: []string{
			`lease\s+(?:agreement|contract)`,
			`rental\s+agreement`,
			`landlord\s+and\s+tenant`,
			`premises\s+(?:located|description)`,
			`monthly\s+rent`,
			`security\s+deposit`,
		},
		Moderate: []string{
			`rent\s+due\s+date`,
			`lease\s+term`,
			`utilities\s+responsibility`,
			`pet\s+policy`,
			`maintenance\s+responsibilities`,
		},
		ContextWords: []string{"rent", "lease", "tenant", "landlord", "premises", "property", "monthly"},
	},
	{
		DocumentType: "service_agreement",
		Strong: []string{
			`service\s+(?:agreement|contract)`,
			`professional\s+services`,
			`scope\s+of\s+work`,
			`deliverables`,
			`statement\s+of\s+work`,
			`consulting\s+(?:agreement|services)`,
		},
		Moderate: []string{
			`project\s+(?:description|scope)`,
			`milestones`,
			`acceptance\s+criteria`,
			`service\s+level\s+agreement`,
			`performance\s+standards`,
		},
		ContextWords: []string{"services", "deliverables", "project", "consultant", "client", "scope", "work"},
	},
	{
		DocumentType: "nda",
		Strong: []string{
			`non-disclosure\s+agreement`,
			`confidentiality\s+agreement`,
			`mutual\s+non-disclosure`,
			`confidential\s+information`,
			`proprietary\s+information`,
		},
		Moderate: []string{
			`trade\s+secrets`,
			`confidential\s+(?:materials|data)`,
			`disclosing\s+party`,
			`receiving\s+party`,
		},
		ContextWords: []string{"confidential", "proprietary", "disclosure", "secret", "information", "trade"},
	},
	{
		DocumentType: "privacy_policy",
		Strong: []string{
			`privacy\s+policy`,
			`data\s+protection\s+policy`,
			`personal\s+information\s+collection`,
			`cookies\s+policy`,
			`gdpr\s+compliance`,
		},
		Moderate: []string{
			`data\s+processing`,
			`user\s+information`,
			`third\s+party\s+sharing`,
			`opt-out\s+rights`,
		},
		ContextWords: []string{"privacy", "data", "personal", "information", "cookies", "gdpr", "collection"},
	},
	{
		DocumentType: "terms_of_service",
		Strong: []string{
			`terms\s+of\s+(?:service|use)`,
			`user\s+agreement`,
			`website\s+terms`,
			`acceptable\s+use\s+policy`,
		},
		Moderate: []string{
			`user\s+obligations`,
			`prohibited\s+activities`,
			`account\s+termination`,
			`limitation\s+of\s+liability`,
		},
		ContextWords: []string{"user", "service", "website", "platform", "account", "terms", "use"},
	},
	{
		DocumentType: "insurance_policy",
		Strong: []string{
			`insurance\s+policy`,
			`coverage\s+(?:limits|details)`,
			`policyholder`,
			`premium\s+(?:amount|payment)`,
			`deductible`,
		},
		Moderate: []string{
			`claims\s+process`,
			`exclusions`,
			`beneficiary`,
			`policy\s+period`,
		},
		ContextWords: []string{"insurance", "policy", "coverage", "claim", "premium", "deductible", "insured"},
	},
	{
		DocumentType: "loan_agreement",
		Strong: []string{
			`loan\s+agreement`,
			`promissory\s+note`,
			`principal\s+amount`,
			`interest\s+rate`,
			`repayment\s+schedule`,
		},
		Moderate: []string{
			`borrower\s+and\s+lender`,
			`default\s+provisions`,
			`collateral`,
			`maturity\s+date`,
		},
		ContextWords: []string{"loan", "borrower", "lender", "principal", "interest", "payment", "repayment"},
	},
	{
		DocumentType: "court_order",
		Strong: []string{
			`court\s+order`,
			`judge\s+orders`,
			`the\s+court\s+(?:finds|orders|rules)`,
			`temporary\s+restraining\s+order`,
			`injunction`,
			`contempt\s+of\s+court`,
		},
		Moderate: []string{
			`case\s+number`,
			`docket\s+number`,
			`plaintiff\s+(?:vs?\.?|versus)`,
			`defendant`,
			`court\s+clerk`,
		},
		ContextWords: []string{"court", "judge", "order", "case", "plaintiff", "defendant", "docket"},
	},
	{
		DocumentType: "will",
		Strong: []string{
			`last\s+will\s+and\s+testament`,
			`will\s+and\s+testament`,
			`testator`,
			`executor`,
			`bequeath`,
			`devise`,
		},
		Moderate: []string{
			`probate`,
			`estate\s+administration`,
			`beneficiary`,
			`inheritance`,
			`personal\s+representative`,
		},
		ContextWords: []string{"will", "testament", "executor", "beneficiary", "estate", "probate", "inherit"},
	},
	{
		DocumentType: "power_of_attorney",
		Strong: []string{
			`power\s+of\s+attorney`,
			`attorney-in-fact`,
			`agent\s+authority`,
			`durable\s+power`,
			`healthcare\s+power\s+of\s+attorney`,
			`financial\s+power\s+of\s+attorney`,
		},
		Moderate: []string{
			`principal`,
			`agent`,
			`authority\s+to\s+act`,
			`medical\s+decisions`,
			`financial\s+decisions`,
		},
		ContextWords: []string{"power", "attorney", "agent", "principal", "authority", "decisions", "behalf"},
	},
}
