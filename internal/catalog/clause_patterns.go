// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

func concat(sets ...[]ClausePattern) []ClausePattern {
	var out []ClausePattern
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// generalClauses covers the clause types common to most agreements.
var generalClauses = concat(
	clauseSet("compensation", "high",
		`salary.*?\$[\d,]+(?:\.\d{2})?`,
		`compensation.*?\$[\d,]+(?:\.\d{2})?`,
		`wage.*?\$[\d,]+(?:\.\d{2})?`,
		`pay.*?\$[\d,]+(?:\.\d{2})?`,
		`base.*?(?:salary|pay|compensation).*?\$[\d,]+`,
		`annual.*?(?:salary|compensation).*?\$[\d,]+`,
		`hourly.*?(?:rate|wage).*?\$[\d,]+`,
		`bonus.*?\$[\d,]+`,
		`commission.*?(?:\d+%|\$[\d,]+)`,
	),
	clauseSet("benefits", "medium",
		`health.*?insurance`,
		`dental.*?insurance`,
		`vision.*?insurance`,
		`life.*?insurance`,
		`retirement.*?(?:plan|401k|pension)`,
		`vacation.*?(?:days|time|leave)`,
		`sick.*?(?:days|time|leave)`,
		`paid.*?time.*?off`,
		`holiday.*?pay`,
		`medical.*?coverage`,
	),
	clauseSet("termination", "high",
		`termination.*?(?:without\s+cause|for\s+cause|at\s+will)`,
		`end.*?(?:employment|agreement|contract)`,
		`resignation.*?(?:notice|period)`,
		`severance.*?(?:pay|package)`,
		`notice.*?(?:period|requirement).*?(?:\d+\s*(?:days?|weeks?|months?))`,
		`last.*?day.*?(?:employment|work)`,
		`final.*?(?:paycheck|compensation)`,
		`return.*?(?:property|equipment|materials)`,
	),
	clauseSet("confidentiality", "high",
		`confidential.*?information`,
		`proprietary.*?information`,
		`trade.*?secret`,
		`non-disclosure`,
		`confidentiality.*?(?:agreement|obligation)`,
		`proprietary.*?(?:data|technology|process)`,
		`confidential.*?(?:period|duration|term)`,
		`return.*?confidential.*?(?:information|materials)`,
		`protect.*?confidential`,
	),
	clauseSet("intellectual_property", "high",
		`intellectual.*?property`,
		`inventions.*?(?:assign|belong|ownership)`,
		`work.*?product.*?(?:assign|belong|ownership)`,
		`patent.*?(?:assign|rights|ownership)`,
		`copyright.*?(?:assign|rights|ownership)`,
		`trademark.*?(?:assign|rights|ownership)`,
		`trade.*?secret.*?(?:assign|rights|ownership)`,
		`derivative.*?works?`,
		`work.*?for.*?hire`,
		`assign.*?(?:all|any).*?(?:rights|title|interest)`,
	),
	clauseSet("non_compete", "critical",
		`non-compete`,
		`restraint.*?(?:of\s+)?trade`,
		`competition.*?(?:prohibit|restrict|prevent)`,
		`compete.*?(?:with|against).*?(?:company|employer)`,
		`solicitation.*?(?:customer|client|employee)`,
		`non-solicitation`,
		`geographic.*?(?:restriction|limitation|scope)`,
		`time.*?(?:restriction|limitation|period).*?(?:\d+\s*(?:months?|years?))`,
		`covenant.*?not.*?compete`,
	),
	clauseSet("payment_terms", "high",
		`payment.*?(?:due|terms|schedule)`,
		`invoice.*?(?:due|payment|terms)`,
		`net.*?\d+.*?days?`,
		`payment.*?(?:within|by).*?\d+.*?days?`,
		`late.*?(?:fee|charge|penalty)`,
		`interest.*?(?:rate|charge)`,
		`advance.*?payment`,
		`deposit.*?(?:required|amount)`,
		`milestone.*?payment`,
		`final.*?payment`,
	),
	clauseSet("liability", "high",
		`liability.*?(?:limit|limitation|cap)`,
		`indemnif.*?(?:hold\s+harmless|defend)`,
		`damages.*?(?:limit|limitation|exclude)`,
		`consequential.*?damages`,
		`indirect.*?damages`,
		`punitive.*?damages`,
		`limitation.*?(?:of\s+)?liability`,
		`maximum.*?liability`,
		`exclude.*?(?:warranty|liability)`,
		`as\s+is.*?(?:basis|condition)`,
	),
	clauseSet("dispute_resolution", "medium",
		`dispute.*?(?:resolution|arbitration|mediation)`,
		`arbitration.*?(?:binding|final|exclusive)`,
		`mediation.*?(?:first|required|mandatory)`,
		`governing.*?law`,
		`jurisdiction.*?(?:court|venue)`,
		`choice.*?of.*?law`,
		`venue.*?(?:court|jurisdiction)`,
		`attorney.*?(?:fees|costs)`,
		`litigation.*?(?:costs|expenses)`,
		`class.*?action.*?waiver`,
	),
	clauseSet("renewal_termination", "medium",
		`renewal.*?(?:automatic|auto|term)`,
		`terminate.*?(?:without\s+cause|for\s+convenience)`,
		`expir.*?(?:term|date|period)`,
		`notice.*?(?:termination|cancellation)`,
		`cancellation.*?(?:right|notice|period)`,
		`early.*?termination`,
		`breach.*?(?:material|cure|notice)`,
		`default.*?(?:notice|cure|period)`,
		`survival.*?(?:clause|provision|term)`,
	),
)

// documentClauses holds clause patterns specific to one document type.
var documentClauses = map[string][]ClausePattern{
	"employment": concat(
		clauseSet("probation", "medium",
			`probation.*?period.*?(?:\d+\s*(?:days?|months?))`,
			`trial.*?period.*?(?:\d+\s*(?:days?|months?))`,
			`introductory.*?period`,
		),
		clauseSet("overtime", "medium",
			`overtime.*?(?:exempt|non-exempt|eligible)`,
			`hours.*?(?:per\s+week|weekly|standard)`,
			`time.*?and.*?half`,
			`compensatory.*?time`,
		),
	),
	"lease": concat(
		clauseSet("rent", "critical",
			`rent.*?\$[\d,]+(?:\.\d{2})?`,
			`monthly.*?rent.*?\$[\d,]+`,
			`base.*?rent.*?\$[\d,]+`,
			`additional.*?rent`,
			`rent.*?increase`,
			`escalation.*?clause`,
		),
		clauseSet("security_deposit", "high",
			`security.*?deposit.*?\$[\d,]+`,
			`damage.*?deposit`,
			`last.*?month.*?rent`,
			`refund.*?deposit`,
			`return.*?deposit`,
		),
		clauseSet("maintenance", "medium",
			`maintenance.*?(?:responsibility|obligation)`,
			`repair.*?(?:responsibility|obligation)`,
			`tenant.*?responsible.*?(?:maintenance|repair)`,
			`landlord.*?responsible.*?(?:maintenance|repair)`,
			`common.*?area.*?maintenance`,
		),
	),
	"service": concat(
		clauseSet("scope_of_work", "critical",
			`scope.*?of.*?work`,
			`services.*?(?:include|consist|comprise)`,
			`deliverable`,
			`statement.*?of.*?work`,
			`work.*?product`,
			`milestone`,
			`project.*?description`,
		),
		clauseSet("performance_standards", "high",
			`performance.*?(?:standard|criteria|metric)`,
			`service.*?level.*?agreement`,
			`quality.*?(?:standard|assurance)`,
			`acceptance.*?criteria`,
			`specification`,
			`compliance.*?requirement`,
		),
	),
}
