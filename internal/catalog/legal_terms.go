// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

// legalTerms is the dictionary of recognized legal terms. Order is
// stable so repeated analyses report terms consistently.
var legalTerms = []LegalTerm{
	// Employment & labor
	{Term: "at-will employment", Definition: "Employment that can be terminated by either party at any time without cause", Category: "employment", Importance: "high"},
	{Term: "non-disclosure agreement", Definition: "Agreement to keep confidential information secret", Category: "confidentiality", Importance: "high"},
	{Term: "non-compete clause", Definition: "Agreement not to work for competitors for specified period", Category: "employment", Importance: "high"},
	{Term: "workers compensation", Definition: "Insurance providing medical benefits and wage replacement for work-related injuries", Category: "employment", Importance: "high"},
	{Term: "collective bargaining", Definition: "Negotiation between employers and employee representatives", Category: "employment", Importance: "medium"},
	{Term: "constructive dismissal", Definition: "Forcing employee to resign through intolerable working conditions", Category: "employment", Importance: "medium"},

	// Intellectual property
	{Term: "intellectual property", Definition: "Creations of the mind such as inventions, designs, and artistic works", Category: "intellectual_property", Importance: "high"},
	{Term: "patent", Definition: "Exclusive right to make, use, or sell an invention for limited time", Category: "intellectual_property", Importance: "high"},
	{Term: "trademark", Definition: "Distinctive sign identifying products or services of particular source", Category: "intellectual_property", Importance: "high"},
	{Term: "copyright", Definition: "Exclusive right to reproduce, distribute, and display creative works", Category: "intellectual_property", Importance: "high"},
	{Term: "trade secret", Definition: "Confidential business information providing competitive advantage", Category: "intellectual_property", Importance: "medium"},

	// Financial & banking
	{Term: "liquidated damages", Definition: "Predetermined amount of damages specified in contract", Category: "financial", Importance: "high"},
	{Term: "compound interest", Definition: "Interest calculated on principal plus previously earned interest", Category: "financial", Importance: "medium"},
	{Term: "usury", Definition: "Practice of lending money at unreasonably high interest rates", Category: "financial", Importance: "medium"},
	{Term: "garnishment", Definition: "Legal process to collect debt by withholding portion of debtor's wages", Category: "financial", Importance: "medium"},
	{Term: "bankruptcy", Definition: "Legal process for relief from overwhelming debt", Category: "financial", Importance: "high"},
	{Term: "secured transaction", Definition: "Loan backed by collateral that can be seized if unpaid", Category: "financial", Importance: "high"},
	{Term: "promissory note", Definition: "Written promise to pay specific amount on demand or at specified time", Category: "financial", Importance: "medium"},

	// Contracts & commercial
	{Term: "consideration", Definition: "Something of value exchanged in a contract", Category: "contracts", Importance: "high"},
	{Term: "breach of contract", Definition: "Failure to perform any term of a contract without excuse", Category: "contracts", Importance: "high"},
	{Term: "force majeure", Definition: "Unforeseeable circumstances that prevent fulfillment of contract", Category: "contracts", Importance: "medium"},
	{Term: "severability", Definition: "If one part of contract is invalid, the rest remains enforceable", Category: "contracts", Importance: "medium"},
	{Term: "specific performance", Definition: "Court order requiring party to fulfill contractual obligations", Category: "contracts", Importance: "medium"},
	{Term: "assignment", Definition: "Transfer of rights or obligations under contract to another party", Category: "contracts", Importance: "medium"},
	{Term: "offer and acceptance", Definition: "Essential elements for forming a binding contract", Category: "contracts", Importance: "high"},

	// Invoices & billing
	{Term: "invoice", Definition: "Document requesting payment for goods or services provided", Category: "financial", Importance: "high"},
	{Term: "net terms", Definition: "Payment terms specifying number of days to pay invoice", Category: "financial", Importance: "medium"},
	{Term: "accounts receivable", Definition: "Money owed to business by customers for goods or services delivered", Category: "financial", Importance: "medium"},
	{Term: "late fees", Definition: "Additional charges imposed for overdue payments", Category: "financial", Importance: "medium"},
	{Term: "progress billing", Definition: "Invoicing based on completion of project milestones", Category: "financial", Importance: "medium"},

	// Legal fees & costs
	{Term: "retainer", Definition: "Advance payment to secure services", Category: "legal_fees", Importance: "medium"},
	{Term: "contingency fee", Definition: "Fee paid only if case is won, typically percentage of recovery", Category: "legal_fees", Importance: "medium"},
	{Term: "hourly rate", Definition: "Fee structure based on time spent on matter", Category: "legal_fees", Importance: "high"},
	{Term: "costs", Definition: "Expenses incurred in legal proceedings separate from attorney fees", Category: "legal_fees", Importance: "medium"},
	{Term: "fee shifting", Definition: "Requirement that losing party pay winning party's attorney fees", Category: "legal_fees", Importance: "medium"},

	// Real estate
	{Term: "easement", Definition: "Right to use another's property for specific purpose", Category: "real_estate", Importance: "medium"},
	{Term: "lien", Definition: "Legal claim against property as security for debt", Category: "real_estate", Importance: "high"},
	{Term: "title insurance", Definition: "Insurance protecting against defects in property title", Category: "real_estate", Importance: "medium"},
	{Term: "escrow", Definition: "Third party holding of funds until conditions are met", Category: "real_estate", Importance: "medium"},
	{Term: "deed", Definition: "Legal document transferring ownership of real property", Category: "real_estate", Importance: "high"},
	{Term: "zoning", Definition: "Local laws regulating use of land and buildings", Category: "real_estate", Importance: "medium"},
	{Term: "foreclosure", Definition: "Legal process to seize property for unpaid mortgage", Category: "real_estate", Importance: "high"},

	// Business & corporate
	{Term: "fiduciary duty", Definition: "Legal obligation to act in another's best interest", Category: "business", Importance: "high"},
	{Term: "due diligence", Definition: "Investigation or audit of potential investment or transaction", Category: "business", Importance: "medium"},
	{Term: "material adverse change", Definition: "Significant negative change affecting business or transaction", Category: "business", Importance: "high"},
	{Term: "limited liability", Definition: "Protection of personal assets from business debts and obligations", Category: "business", Importance: "high"},
	{Term: "articles of incorporation", Definition: "Legal document establishing a corporation", Category: "business", Importance: "high"},
	{Term: "shareholder agreement", Definition: "Contract between company shareholders defining rights and obligations", Category: "business", Importance: "medium"},
	{Term: "merger", Definition: "Combination of two or more companies into single entity", Category: "business", Importance: "medium"},

	// Liability & insurance
	{Term: "indemnification", Definition: "Security or protection against legal responsibility for damages", Category: "liability", Importance: "medium"},
	{Term: "liability", Definition: "Legal responsibility for one's acts or omissions", Category: "liability", Importance: "high"},
	{Term: "strict liability", Definition: "Liability without need to prove negligence or fault", Category: "liability", Importance: "medium"},
	{Term: "negligence", Definition: "Failure to exercise reasonable care resulting in harm", Category: "liability", Importance: "high"},
	{Term: "professional liability", Definition: "Liability arising from professional services or advice", Category: "liability", Importance: "medium"},
	{Term: "umbrella policy", Definition: "Insurance providing additional liability coverage beyond primary policies", Category: "insurance", Importance: "low"},

	// Dispute resolution & litigation
	{Term: "arbitration", Definition: "Alternative dispute resolution outside of court system", Category: "dispute_resolution", Importance: "medium"},
	{Term: "mediation", Definition: "Neutral third party assists in negotiating settlement", Category: "dispute_resolution", Importance: "medium"},
	{Term: "discovery", Definition: "Pre-trial process of gathering evidence from opposing party", Category: "litigation", Importance: "medium"},
	{Term: "summary judgment", Definition: "Court ruling without trial when no genuine dispute of material fact", Category: "litigation", Importance: "medium"},
	{Term: "settlement", Definition: "Agreement to resolve dispute without trial", Category: "dispute_resolution", Importance: "high"},
	{Term: "injunction", Definition: "Court order requiring party to do or refrain from doing something", Category: "litigation", Importance: "medium"},

	// Criminal
	{Term: "mens rea", Definition: "Mental state or intent required for criminal liability", Category: "criminal", Importance: "medium"},
	{Term: "probable cause", Definition: "Reasonable belief that crime has been committed", Category: "criminal", Importance: "medium"},
	{Term: "plea bargain", Definition: "Agreement where defendant pleads guilty for reduced charges or sentence", Category: "criminal", Importance: "medium"},
	{Term: "Miranda rights", Definition: "Constitutional rights that must be read to suspects in custody", Category: "criminal", Importance: "medium"},

	// Family
	{Term: "custody", Definition: "Legal right to care for and make decisions about minor child", Category: "family", Importance: "high"},
	{Term: "alimony", Definition: "Financial support paid to former spouse after divorce", Category: "family", Importance: "medium"},
	{Term: "prenuptial agreement", Definition: "Contract entered before marriage defining property rights", Category: "family", Importance: "medium"},
	{Term: "adoption", Definition: "Legal process creating parent-child relationship", Category: "family", Importance: "medium"},

	// Tax
	{Term: "deduction", Definition: "Expense that reduces taxable income", Category: "tax", Importance: "medium"},
	{Term: "tax lien", Definition: "Government claim against property for unpaid taxes", Category: "tax", Importance: "medium"},
	{Term: "basis", Definition: "Original cost of property for tax purposes", Category: "tax", Importance: "medium"},
	{Term: "depreciation", Definition: "Tax deduction for wear and tear of business property", Category: "tax", Importance: "medium"},

	// Immigration
	{Term: "permanent resident", Definition: "Non-citizen authorized to live and work permanently in country", Category: "immigration", Importance: "medium"},
	{Term: "asylum", Definition: "Protection granted to those fleeing persecution", Category: "immigration", Importance: "medium"},
	{Term: "deportation", Definition: "Formal removal of non-citizen from country", Category: "immigration", Importance: "medium"},

	// General
	{Term: "statute of limitations", Definition: "Time limit for bringing legal action", Category: "general", Importance: "medium"},
	{Term: "governing law", Definition: "Which state or country's laws will be used to interpret the contract", Category: "general", Importance: "medium"},
	{Term: "warranty", Definition: "Promise that certain facts or conditions are true", Category: "general", Importance: "medium"},
	{Term: "precedent", Definition: "Legal principle established by court decision", Category: "general", Importance: "medium"},
	{Term: "burden of proof", Definition: "Obligation to prove allegations or charges", Category: "general", Importance: "medium"},
	{Term: "statute", Definition: "Law enacted by legislative body", Category: "general", Importance: "medium"},
	{Term: "common law", Definition: "Law developed through court decisions rather than statutes", Category: "general", Importance: "medium"},

	// Environmental
	{Term: "environmental impact assessment", Definition: "Study of potential environmental effects of proposed project", Category: "environmental", Importance: "medium"},
	{Term: "toxic tort", Definition: "Legal claim for harm caused by exposure to toxic substances", Category: "environmental", Importance: "low"},

	// Healthcare
	{Term: "informed consent", Definition: "Patient's agreement to treatment after understanding risks and benefits", Category: "healthcare", Importance: "medium"},
	{Term: "hipaa", Definition: "Federal law protecting privacy of health information", Category: "healthcare", Importance: "medium"},
	{Term: "medical malpractice", Definition: "Professional negligence by healthcare provider", Category: "healthcare", Importance: "medium"},

	// Technology
	{Term: "terms of service", Definition: "Legal agreement between service provider and user", Category: "technology", Importance: "medium"},
	{Term: "data breach", Definition: "Unauthorized access to or disclosure of personal information", Category: "technology", Importance: "medium"},
	{Term: "privacy policy", Definition: "Statement describing how organization collects and uses personal data", Category: "technology", Importance: "medium"},
}
