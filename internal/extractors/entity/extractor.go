// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entity extracts named entities such as people, organizations,
// addresses, and legal references from document text.
//
// Person and organization patterns are case-sensitive where
// capitalization is structural; keyword fragments use inline (?i:)
// groups instead.
package entity

import (
	"regexp"
	"sort"
	"strings"

	"lexiscan/internal/analysis"
)

const contextSize = 100

// entityPattern binds a compiled pattern to its confidence. group is
// the submatch index providing the entity text (0 for the whole
// match); spanGroup, when set, bounds the reported span instead of the
// whole match.
type entityPattern struct {
	re         *regexp.Regexp
	confidence float64
	group      int
	spanGroup  int
}

type typePatterns struct {
	entityType string
	patterns   []entityPattern
}

var allPatterns = []typePatterns{
	{
		entityType: "person",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`\b(?i:Mr\.?|Mrs\.?|Ms\.?|Dr\.?|Prof\.?)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`), confidence: 0.9, group: 1},
			// Name followed by a contractual verb. The verb is matched
			// but excluded from the reported span via spanGroup.
			{re: regexp.MustCompile(`\b(([A-Z][a-z]+\s+[A-Z][a-z]+)(?:\s+(?:Esq\.?|Jr\.?|Sr\.?|II|III))?)\s+(?i:agrees|shall|will|hereby|signed|executed)`), confidence: 0.8, group: 2, spanGroup: 1},
			{re: regexp.MustCompile(`(?i:employee|contractor|individual|person)\s+(?i:named)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`), confidence: 0.85, group: 1},
		},
	},
	{
		entityType: "organization",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`\b([A-Z][A-Za-z\s&]+(?i:Inc\.?|LLC|Corp\.?|Corporation|Company|Co\.?|Ltd\.?|Limited|LP|LLP|Partnership))\b`), confidence: 0.9, group: 1},
			{re: regexp.MustCompile(`\b([A-Z][A-Za-z\s&]+)\s+(?:\("Company"\)|, a corporation|, an LLC)`), confidence: 0.95, group: 1},
			{re: regexp.MustCompile(`(?i:company|corporation|organization|employer|business)\s+(?i:known as)\s+([A-Z][A-Za-z\s&]+)`), confidence: 0.8, group: 1},
		},
	},
	{
		entityType: "address",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s]+(?:Street|St\.?|Avenue|Ave\.?|Road|Rd\.?|Drive|Dr\.?|Lane|Ln\.?|Boulevard|Blvd\.?|Way|Place|Pl\.?|Court|Ct\.?),?\s*[A-Za-z\s]+,?\s*[A-Z]{2}\s*\d{5}(?:-\d{4})?\b`), confidence: 0.9},
			{re: regexp.MustCompile(`(?i)\b(?:P\.?O\.?\s*Box\s*\d+),?\s*[A-Za-z\s]+,?\s*[A-Z]{2}\s*\d{5}(?:-\d{4})?\b`), confidence: 0.85},
		},
	},
	{
		entityType: "phone",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`), confidence: 0.95},
			{re: regexp.MustCompile(`(?i)\b(?:phone|tel|telephone|call).*?(\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`), confidence: 0.8, group: 1},
		},
	},
	{
		entityType: "email",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), confidence: 0.99},
		},
	},
	{
		entityType: "date",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`), confidence: 0.95},
			{re: regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), confidence: 0.9},
			{re: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), confidence: 0.9},
		},
	},
	{
		entityType: "currency",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d{2})?(?:\s*(?:USD|dollars?))?`), confidence: 0.95},
			{re: regexp.MustCompile(`(?i)\b(?:USD|dollars?)\s*[\d,]+(?:\.\d{2})?`), confidence: 0.9},
		},
	},
	{
		entityType: "percentage",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`\b\d+(?:\.\d+)?%`), confidence: 0.95},
			{re: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*percent`), confidence: 0.9},
		},
	},
	{
		entityType: "legal_reference",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`(?i)\b(?:Section|Sec\.?|§)\s*\d+(?:\.\d+)*(?:\([a-z]\))?`), confidence: 0.9},
			{re: regexp.MustCompile(`\b(?i:Article|Art\.?)\s*[IVX]+`), confidence: 0.85},
			{re: regexp.MustCompile(`(?i)\b\d+\s*U\.?S\.?C\.?\s*§?\s*\d+`), confidence: 0.95},
		},
	},
	{
		entityType: "duration",
		patterns: []entityPattern{
			{re: regexp.MustCompile(`(?i)\b\d+\s*(?:years?|months?|weeks?|days?|hours?|minutes?)`), confidence: 0.9},
			{re: regexp.MustCompile(`(?i)\b(?:one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:years?|months?|weeks?|days?)`), confidence: 0.8},
		},
	},
}

var (
	digitRe          = regexp.MustCompile(`\d`)
	currencyAmountRe = regexp.MustCompile(`[\d,]+(?:\.\d{2})?`)
	percentNumberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	personTitleRe    = regexp.MustCompile(`(?i)\b(?:Mr\.?|Mrs\.?|Ms\.?|Dr\.?|Prof\.?|Esq\.?|Jr\.?|Sr\.?)\b`)
	companyTypeRe    = regexp.MustCompile(`(?i)\b(?:Inc\.?|LLC|Corp\.?|Corporation|Company|Co\.?|Ltd\.?|Limited|LP|LLP)\b`)
)

// currencyContexts classify what a currency amount refers to, first
// match wins.
var currencyContexts = []struct {
	name string
	re   *regexp.Regexp
}{
	{"salary", regexp.MustCompile(`(?i)\b(?:salary|wage|pay|compensation|income)\b`)},
	{"fee", regexp.MustCompile(`(?i)\b(?:fee|charge|cost|price)\b`)},
	{"penalty", regexp.MustCompile(`(?i)\b(?:penalty|fine|damages|liquidated)\b`)},
	{"deposit", regexp.MustCompile(`(?i)\b(?:deposit|down payment|security)\b`)},
	{"bonus", regexp.MustCompile(`(?i)\b(?:bonus|incentive|commission)\b`)},
}

// Extractor scans text with the entity pattern tables.
type Extractor struct{}

// New creates an entity Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns all entities found in text, deduplicated and sorted
// by start position.
func (e *Extractor) Extract(text string) []analysis.Entity {
	return e.ExtractTypes(text, nil)
}

// ExtractTypes extracts only the given entity types; nil means all.
func (e *Extractor) ExtractTypes(text string, entityTypes []string) []analysis.Entity {
	wanted := make(map[string]bool)
	for _, t := range entityTypes {
		wanted[t] = true
	}

	var entities []analysis.Entity
	for _, tp := range allPatterns {
		if entityTypes != nil && !wanted[tp.entityType] {
			continue
		}
		entities = append(entities, extractType(text, tp)...)
	}
	entities = dedupe(entities)
	sort.SliceStable(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })
	return entities
}

func extractType(text string, tp typePatterns) []analysis.Entity {
	var entities []analysis.Entity
	for _, p := range tp.patterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]
			if p.spanGroup > 0 && m[2*p.spanGroup] >= 0 {
				start, end = m[2*p.spanGroup], m[2*p.spanGroup+1]
			}
			textStart, textEnd := start, end
			if p.group > 0 {
				if m[2*p.group] < 0 {
					continue
				}
				textStart, textEnd = m[2*p.group], m[2*p.group+1]
			}
			entityText := strings.TrimSpace(text[textStart:textEnd])
			if len(entityText) < 2 {
				continue
			}
			if !validate(entityText, tp.entityType) {
				continue
			}
			context := analysis.Window(text, start, end, contextSize)
			entities = append(entities, analysis.Entity{
				Text:            entityText,
				Type:            tp.entityType,
				Confidence:      p.confidence,
				Start:           start,
				End:             end,
				Context:         context,
				NormalizedValue: normalize(entityText, tp.entityType),
				Metadata:        metadata(entityText, tp.entityType, context),
			})
		}
	}
	return entities
}

func validate(entityText, entityType string) bool {
	switch entityType {
	case "person":
		words := strings.Fields(strings.ToLower(entityText))
		if len(words) < 2 {
			return false
		}
		for _, w := range words {
			if _, ok := commonNames[w]; ok {
				return true
			}
		}
		return false
	case "organization":
		for _, w := range strings.Fields(strings.ToLower(entityText)) {
			if _, ok := companyIndicators[w]; ok {
				return true
			}
		}
		for _, w := range strings.Fields(entityText) {
			if w[0] < 'A' || w[0] > 'Z' {
				return false
			}
		}
		return true
	case "email":
		at := strings.LastIndex(entityText, "@")
		return at > 0 && strings.Contains(entityText[at+1:], ".")
	case "phone":
		return len(digitRe.FindAllString(entityText, -1)) >= 10
	case "currency":
		return currencyAmountRe.MatchString(entityText)
	default:
		return true
	}
}

func normalize(entityText, entityType string) string {
	switch entityType {
	case "phone":
		digits := digitRe.FindAllString(entityText, -1)
		if len(digits) == 10 {
			d := strings.Join(digits, "")
			return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
		}
		if len(digits) == 11 && digits[0] == "1" {
			d := strings.Join(digits, "")
			return "1-(" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
		}
	case "currency":
		if amount := currencyAmountRe.FindString(entityText); amount != "" {
			return "$" + amount
		}
	case "percentage":
		if number := percentNumberRe.FindString(entityText); number != "" {
			return number + "%"
		}
	case "person":
		return titleCase(entityText)
	case "organization":
		return strings.TrimSpace(entityText)
	}
	return entityText
}

func metadata(entityText, entityType, context string) map[string]string {
	switch entityType {
	case "person":
		titles := personTitleRe.FindAllString(context, -1)
		if len(titles) > 0 {
			seen := make(map[string]struct{})
			var unique []string
			for _, t := range titles {
				if _, ok := seen[t]; ok {
					continue
				}
				seen[t] = struct{}{}
				unique = append(unique, t)
			}
			return map[string]string{"titles": strings.Join(unique, ", ")}
		}
	case "organization":
		if t := companyTypeRe.FindString(entityText); t != "" {
			return map[string]string{"company_type": t}
		}
	case "currency":
		for _, cc := range currencyContexts {
			if cc.re.MatchString(context) {
				return map[string]string{"currency_context": cc.name}
			}
		}
	}
	return nil
}

// dedupe resolves overlapping spans in favor of the higher confidence
// entity and drops exact text/type repeats.
func dedupe(entities []analysis.Entity) []analysis.Entity {
	if len(entities) == 0 {
		return entities
	}
	sort.SliceStable(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })
	var kept []analysis.Entity
	for _, ent := range entities {
		duplicate := false
		for i, existing := range kept {
			if ent.Start < existing.End && ent.End > existing.Start {
				if ent.Confidence > existing.Confidence {
					kept = append(kept[:i], kept[i+1:]...)
				} else {
					duplicate = true
				}
				break
			}
			if strings.EqualFold(ent.Text, existing.Text) && ent.Type == existing.Type {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, ent)
		}
	}
	return kept
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		lower := strings.ToLower(string(r[1:]))
		words[i] = strings.ToUpper(string(r[0])) + lower
	}
	return strings.Join(words, " ")
}

// Summary counts entities by type.
func Summary(entities []analysis.Entity) map[string]int {
	counts := make(map[string]int)
	for _, ent := range entities {
		counts[ent.Type]++
	}
	return counts
}

// ByType filters entities by type.
func ByType(entities []analysis.Entity, entityType string) []analysis.Entity {
	var out []analysis.Entity
	for _, ent := range entities {
		if ent.Type == entityType {
			out = append(out, ent)
		}
	}
	return out
}
