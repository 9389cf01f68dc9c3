// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package financial extracts monetary amounts, financial terms, and
// payment schedules from document text.
package financial

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lexiscan/internal/analysis"
)

const (
	amountContext = 50
	termContext   = 100
	dedupDistance = 50
)

// currencyPatterns map currency codes to their textual signatures.
var currencyPatterns = map[string][]string{
	"USD": {
		`\$[\d,.]+`,
		`USD\s*[\d,.]+`,
		`US\s*dollars?\s*[\d,.]+`,
		`[\d,.]+\s*US\s*dollars?`,
	},
	"EUR": {
		`€[\d,.]+`,
		`EUR\s*[\d,.]+`,
		`euros?\s*[\d,.]+`,
		`[\d,.]+\s*euros?`,
	},
	"GBP": {
		`£[\d,.]+`,
		`GBP\s*[\d,.]+`,
		`pounds?\s*sterling\s*[\d,.]+`,
		`[\d,.]+\s*pounds?\s*sterling`,
	},
	"CAD": {
		`CAD\s*[\d,.]+`,
		`C\$[\d,.]+`,
		`Canadian\s*dollars?\s*[\d,.]+`,
		`[\d,.]+\s*Canadian\s*dollars?`,
	},
	"AUD": {
		`AUD\s*[\d,.]+`,
		`A\$[\d,.]+`,
		`Australian\s*dollars?\s*[\d,.]+`,
		`[\d,.]+\s*Australian\s*dollars?`,
	},
	"INR": {
		`₹[\d,.]+`,
		`INR\s*[\d,.]+`,
		`rupees?\s*[\d,.]+`,
		`[\d,.]+\s*rupees?`,
	},
	"JPY": {
		`¥[\d,.]+`,
		`JPY\s*[\d,.]+`,
		`yen\s*[\d,.]+`,
		`[\d,.]+\s*yen`,
	},
}

// financialTerms pair a term type with patterns that tie the term to a
// nearby amount. Term findings are always reported in USD.
var financialTerms = map[string][]string{
	"salary": {
		`salary.*?\$?[\d,.]+`,
		`annual\s+salary.*?\$?[\d,.]+`,
		`base\s+(?:pay|salary).*?\$?[\d,.]+`,
		`compensation\s+package.*?\$?[\d,.]+`,
		`gross\s+income.*?\$?[\d,.]+`,
	},
	"bonus": {
		`bonus.*?\$?[\d,.]+`,
		`signing\s+bonus.*?\$?[\d,.]+`,
		`incentive.*?\$?[\d,.]+`,
		`commission.*?\$?[\d,.]+`,
		`performance\s+bonus.*?\$?[\d,.]+`,
	},
	"penalty": {
		`penalt(?:y|ies).*?\$?[\d,.]+`,
		`fine.*?\$?[\d,.]+`,
		`liquidated\s+damages.*?\$?[\d,.]+`,
		`breach\s+penalty.*?\$?[\d,.]+`,
	},
	"fee": {
		`fee.*?\$?[\d,.]+`,
		`service\s+charge.*?\$?[\d,.]+`,
		`cost.*?\$?[\d,.]+`,
		`charge.*?\$?[\d,.]+`,
		`processing\s+fee.*?\$?[\d,.]+`,
		`administration\s+fee.*?\$?[\d,.]+`,
	},
	"deposit": {
		`deposit.*?\$?[\d,.]+`,
		`security\s+deposit.*?\$?[\d,.]+`,
		`advance\s+payment.*?\$?[\d,.]+`,
		`escrow\s+deposit.*?\$?[\d,.]+`,
	},
	"loan_amount": {
		`loan\s+amount.*?\$?[\d,.]+`,
		`principal\s+sum.*?\$?[\d,.]+`,
		`borrowed\s+sum.*?\$?[\d,.]+`,
	},
}

var schedulePatterns = []string{
	`(?:monthly|weekly|quarterly|annually).*?payment.*?\$?[\d,]+(?:\.\d{2})?`,
	`payment.*?(?:monthly|weekly|quarterly|annually).*?\$?[\d,]+(?:\.\d{2})?`,
	`(?:bi-weekly|biweekly).*?payment.*?\$?[\d,]+(?:\.\d{2})?`,
}

var (
	amountInMatch = regexp.MustCompile(`\$?[\d,]+(?:\.\d{2})?`)
	frequencyRe   = regexp.MustCompile(`(?i)(monthly|weekly|quarterly|annually|bi-weekly|biweekly)`)
	nonAmountRe   = regexp.MustCompile(`[^\d,.]`)
)

type compiledSet struct {
	key     string
	regexes []*regexp.Regexp
}

// Extractor scans text for currency amounts, term-bound amounts, and
// payment schedules. Construct with New.
type Extractor struct {
	currencies []compiledSet
	terms      []compiledSet
	schedules  []*regexp.Regexp
}

// New compiles the financial pattern tables.
func New() *Extractor {
	e := &Extractor{}
	for _, code := range sortedKeys(currencyPatterns) {
		e.currencies = append(e.currencies, compileSet(code, currencyPatterns[code]))
	}
	for _, term := range sortedKeys(financialTerms) {
		e.terms = append(e.terms, compileSet(term, financialTerms[term]))
	}
	for _, p := range schedulePatterns {
		e.schedules = append(e.schedules, regexp.MustCompile("(?i)"+p))
	}
	return e
}

func compileSet(key string, patterns []string) compiledSet {
	set := compiledSet{key: key}
	for _, p := range patterns {
		set.regexes = append(set.regexes, regexp.MustCompile("(?i)"+p))
	}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extract returns the financial items found in text, deduplicated and
// sorted by location.
func (e *Extractor) Extract(text string) []analysis.FinancialItem {
	var items []analysis.FinancialItem
	items = append(items, e.currencyAmounts(text)...)
	items = append(items, e.termAmounts(text)...)
	items = append(items, e.paymentSchedules(text)...)
	items = dedupe(items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Location < items[j].Location })
	return items
}

func (e *Extractor) currencyAmounts(text string) []analysis.FinancialItem {
	var items []analysis.FinancialItem
	for _, set := range e.currencies {
		for _, re := range set.regexes {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				match := text[loc[0]:loc[1]]
				amount, ok := parseAmount(match)
				if !ok {
					continue
				}
				items = append(items, analysis.FinancialItem{
					Type:        "amount",
					Amount:      amount,
					Currency:    set.key,
					Description: "Currency amount: " + match,
					Context:     analysis.Window(text, loc[0], loc[1], amountContext),
					Confidence:  0.8,
					Location:    loc[0],
				})
			}
		}
	}
	return items
}

func (e *Extractor) termAmounts(text string) []analysis.FinancialItem {
	var items []analysis.FinancialItem
	for _, set := range e.terms {
		for _, re := range set.regexes {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				match := text[loc[0]:loc[1]]
				amountStr := amountInMatch.FindString(match)
				if amountStr == "" {
					continue
				}
				amount, ok := parseAmount(amountStr)
				if !ok {
					continue
				}
				items = append(items, analysis.FinancialItem{
					Type:        set.key,
					Amount:      amount,
					Currency:    "USD",
					Description: fmt.Sprintf("%s: %s", titleCase(set.key), match),
					Context:     analysis.Window(text, loc[0], loc[1], termContext),
					Confidence:  0.9,
					Location:    loc[0],
				})
			}
		}
	}
	return items
}

func (e *Extractor) paymentSchedules(text string) []analysis.FinancialItem {
	var items []analysis.FinancialItem
	for _, re := range e.schedules {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			amountStr := amountInMatch.FindString(match)
			if amountStr == "" {
				continue
			}
			amount, ok := parseAmount(amountStr)
			if !ok {
				continue
			}
			frequency := "unknown"
			if f := frequencyRe.FindString(match); f != "" {
				frequency = strings.ToLower(f)
			}
			items = append(items, analysis.FinancialItem{
				Type:        "payment_schedule",
				Amount:      amount,
				Currency:    "USD",
				Description: fmt.Sprintf("%s payment: %s", titleCase(frequency), match),
				Context:     analysis.Window(text, loc[0], loc[1], termContext),
				Confidence:  0.85,
				Location:    loc[0],
				Metadata:    map[string]string{"frequency": frequency},
			})
		}
	}
	return items
}

// parseAmount strips everything but digits, commas, and dots, removes
// the commas, and parses the remainder.
func parseAmount(s string) (float64, bool) {
	cleaned := nonAmountRe.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// dedupe drops items within dedupDistance characters of an already kept
// item when amount and currency match.
func dedupe(items []analysis.FinancialItem) []analysis.FinancialItem {
	if len(items) == 0 {
		return items
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Location < items[j].Location })
	var kept []analysis.FinancialItem
	for _, item := range items {
		duplicate := false
		for _, existing := range kept {
			locDiff := item.Location - existing.Location
			if locDiff < 0 {
				locDiff = -locDiff
			}
			amountDiff := item.Amount - existing.Amount
			if amountDiff < 0 {
				amountDiff = -amountDiff
			}
			if locDiff < dedupDistance && amountDiff < 0.01 && item.Currency == existing.Currency {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, item)
		}
	}
	return kept
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Summary aggregates items by type and currency.
type Summary struct {
	TotalItems    int                `json:"total_items"`
	ByType        map[string]int     `json:"by_type,omitempty"`
	ByCurrency    map[string]int     `json:"by_currency,omitempty"`
	TotalAmounts  map[string]float64 `json:"total_amounts,omitempty"`
	HighestAmount float64            `json:"highest_amount"`
	LowestAmount  float64            `json:"lowest_amount"`
}

// Summarize builds a Summary over extracted items.
func Summarize(items []analysis.FinancialItem) Summary {
	if len(items) == 0 {
		return Summary{}
	}
	s := Summary{
		TotalItems:   len(items),
		ByType:       make(map[string]int),
		ByCurrency:   make(map[string]int),
		TotalAmounts: make(map[string]float64),
		LowestAmount: items[0].Amount,
	}
	for _, item := range items {
		s.ByType[item.Type]++
		s.ByCurrency[item.Currency]++
		s.TotalAmounts[item.Currency] += item.Amount
		if item.Amount > s.HighestAmount {
			s.HighestAmount = item.Amount
		}
		if item.Amount < s.LowestAmount {
			s.LowestAmount = item.Amount
		}
	}
	return s
}
