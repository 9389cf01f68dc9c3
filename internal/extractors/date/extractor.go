// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package date extracts absolute dates, relative date expressions, and
// deadline-bound dates from document text.
package date

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"lexiscan/internal/analysis"
)

const (
	contextSize         = 50
	deadlineContextSize = 100
	dedupDistance       = 50
)

// Numeric and month-name date formats. Slash and dash numeric dates
// are read as US style month first.
var absolutePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{2})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(\d{1,2}),?\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
}

var relativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d+)\s+days?\s+(?:from|after|before)\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s+weeks?\s+(?:from|after|before)\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s+months?\s+(?:from|after|before)\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s+years?\s+(?:from|after|before)\b`),
	regexp.MustCompile(`(?i)\bwithin\s+(\d+)\s+days?\b`),
	regexp.MustCompile(`(?i)\bwithin\s+(\d+)\s+weeks?\b`),
	regexp.MustCompile(`(?i)\bwithin\s+(\d+)\s+months?\b`),
}

var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)deadline.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
	regexp.MustCompile(`(?i)due.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
	regexp.MustCompile(`(?i)expires?.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
	regexp.MustCompile(`(?i)effective.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
	regexp.MustCompile(`(?i)starts?.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
	regexp.MustCompile(`(?i)ends?.*?(\d{1,2}[/\-]\d{1,2}[/\-]\d{4})`),
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var firstNumber = regexp.MustCompile(`\d+`)

// Extractor finds date references in document text. Now provides the
// base time for resolving relative expressions; it defaults to
// time.Now when nil.
type Extractor struct {
	Now func() time.Time
}

// New creates a date Extractor using the wall clock.
func New() *Extractor {
	return &Extractor{Now: time.Now}
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Extract returns the dates found in text, deduplicated and sorted by
// location.
func (e *Extractor) Extract(text string) []analysis.DateItem {
	var dates []analysis.DateItem
	dates = append(dates, e.absoluteDates(text)...)
	dates = append(dates, e.relativeDates(text)...)
	dates = append(dates, e.deadlineDates(text)...)
	dates = dedupe(dates)
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].Location < dates[j].Location })
	return dates
}

func (e *Extractor) absoluteDates(text string) []analysis.DateItem {
	var dates []analysis.DateItem
	for _, re := range absolutePatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			match := text[m[0]:m[1]]
			groups := submatches(text, m)
			parsed, ok := parseGroups(match, groups)
			if !ok {
				continue
			}
			dates = append(dates, analysis.DateItem{
				Type:         "absolute",
				Date:         parsed,
				OriginalText: match,
				Context:      analysis.Window(text, m[0], m[1], contextSize),
				Location:     m[0],
				Confidence:   0.9,
			})
		}
	}
	return dates
}

func (e *Extractor) relativeDates(text string) []analysis.DateItem {
	var dates []analysis.DateItem
	for _, re := range relativePatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			match := text[m[0]:m[1]]
			resolved, ok := e.resolveRelative(match)
			if !ok {
				continue
			}
			dates = append(dates, analysis.DateItem{
				Type:         "relative",
				Date:         resolved,
				OriginalText: match,
				Context:      analysis.Window(text, m[0], m[1], contextSize),
				Location:     m[0],
				Confidence:   0.7,
			})
		}
	}
	return dates
}

func (e *Extractor) deadlineDates(text string) []analysis.DateItem {
	var dates []analysis.DateItem
	for _, re := range deadlinePatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if m[2] < 0 {
				continue
			}
			match := text[m[0]:m[1]]
			parsed, ok := parseNumericDate(text[m[2]:m[3]])
			if !ok {
				continue
			}
			dates = append(dates, analysis.DateItem{
				Type:         deadlineType(match),
				Date:         parsed,
				OriginalText: match,
				Context:      analysis.Window(text, m[0], m[1], deadlineContextSize),
				Location:     m[0],
				Confidence:   0.85,
			})
		}
	}
	return dates
}

func deadlineType(match string) string {
	lower := strings.ToLower(match)
	switch {
	case strings.Contains(lower, "due"):
		return "due_date"
	case strings.Contains(lower, "expire"):
		return "expiration"
	case strings.Contains(lower, "effective"):
		return "effective_date"
	case strings.Contains(lower, "start"):
		return "start_date"
	case strings.Contains(lower, "end"):
		return "end_date"
	default:
		return "deadline"
	}
}

func submatches(text string, m []int) []string {
	var groups []string
	for i := 2; i < len(m); i += 2 {
		if m[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, text[m[i]:m[i+1]])
	}
	return groups
}

// parseGroups handles numeric and month-name formats. Three numeric
// groups starting with four digits are ISO year first; otherwise month
// first with 2-digit years pivoting at 50.
func parseGroups(match string, groups []string) (time.Time, bool) {
	if strings.ContainsAny(match, "/-.") && allDigits(groups) && len(groups) == 3 {
		var year, month, day int
		if len(groups[0]) == 4 {
			year, _ = strconv.Atoi(groups[0])
			month, _ = strconv.Atoi(groups[1])
			day, _ = strconv.Atoi(groups[2])
		} else {
			month, _ = strconv.Atoi(groups[0])
			day, _ = strconv.Atoi(groups[1])
			year, _ = strconv.Atoi(groups[2])
			if year < 100 {
				if year < 50 {
					year += 2000
				} else {
					year += 1900
				}
			}
		}
		return makeDate(year, month, day)
	}
	return parseMonthNameDate(match, groups)
}

func parseMonthNameDate(match string, groups []string) (time.Time, bool) {
	lower := strings.ToLower(match)
	var month time.Month
	found := false
	for name, m := range monthNames {
		if strings.Contains(lower, name) {
			// Prefer full names over prefixes like "jan" in "january".
			if !found || len(name) > 3 {
				month = m
				found = true
			}
		}
	}
	if !found {
		return time.Time{}, false
	}

	var numbers []int
	for _, g := range groups {
		if n, err := strconv.Atoi(g); err == nil {
			numbers = append(numbers, n)
		}
	}
	day, year := 0, 0
	for _, n := range numbers {
		if day == 0 && n >= 1 && n <= 31 {
			day = n
		}
	}
	for _, n := range numbers {
		if year == 0 && n > 31 {
			year = n
		}
	}
	if day == 0 || year == 0 {
		return time.Time{}, false
	}
	return makeDate(year, int(month), day)
}

// parseNumericDate reads a M/D/YYYY or M-D-YYYY date string.
func parseNumericDate(s string) (time.Time, bool) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return makeDate(year, month, day)
}

// makeDate rejects out-of-range components instead of letting time.Date
// normalize them.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// resolveRelative turns expressions like "30 days from" into a concrete
// date. Months count as 30 days and years as 365.
func (e *Extractor) resolveRelative(match string) (time.Time, bool) {
	lower := strings.ToLower(match)
	numStr := firstNumber.FindString(lower)
	if numStr == "" {
		return time.Time{}, false
	}
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return time.Time{}, false
	}

	var days int
	switch {
	case strings.Contains(lower, "day"):
		days = num
	case strings.Contains(lower, "week"):
		days = num * 7
	case strings.Contains(lower, "month"):
		days = num * 30
	case strings.Contains(lower, "year"):
		days = num * 365
	default:
		return time.Time{}, false
	}

	base := e.now()
	if strings.Contains(lower, "before") {
		return base.AddDate(0, 0, -days), true
	}
	return base.AddDate(0, 0, days), true
}

// ImportantDates groups extracted dates for quick review: deadline and
// due dates, effective dates, and expirations, plus every date split
// into future and past relative to the extractor's clock. A date can
// appear in more than one bucket.
type ImportantDates struct {
	Deadlines       []analysis.DateItem `json:"deadlines,omitempty"`
	EffectiveDates  []analysis.DateItem `json:"effective_dates,omitempty"`
	ExpirationDates []analysis.DateItem `json:"expiration_dates,omitempty"`
	FutureDates     []analysis.DateItem `json:"future_dates,omitempty"`
	PastDates       []analysis.DateItem `json:"past_dates,omitempty"`
}

// ImportantDates buckets dates by type and by time relative to now.
// Each bucket is sorted by date.
func (e *Extractor) ImportantDates(dates []analysis.DateItem) ImportantDates {
	var out ImportantDates
	now := e.now()
	for _, d := range dates {
		switch {
		case strings.Contains(d.Type, "deadline") || strings.Contains(d.Type, "due"):
			out.Deadlines = append(out.Deadlines, d)
		case strings.Contains(d.Type, "effective"):
			out.EffectiveDates = append(out.EffectiveDates, d)
		case strings.Contains(d.Type, "expir"):
			out.ExpirationDates = append(out.ExpirationDates, d)
		}
		if d.Date.After(now) {
			out.FutureDates = append(out.FutureDates, d)
		} else {
			out.PastDates = append(out.PastDates, d)
		}
	}
	for _, bucket := range [][]analysis.DateItem{
		out.Deadlines, out.EffectiveDates, out.ExpirationDates, out.FutureDates, out.PastDates,
	} {
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Date.Before(bucket[j].Date) })
	}
	return out
}

func allDigits(groups []string) bool {
	for _, g := range groups {
		if g == "" {
			return false
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// dedupe drops dates that resolve to the same day within dedupDistance
// characters of an already kept date.
func dedupe(dates []analysis.DateItem) []analysis.DateItem {
	if len(dates) == 0 {
		return dates
	}
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].Location < dates[j].Location })
	var kept []analysis.DateItem
	for _, d := range dates {
		duplicate := false
		for _, existing := range kept {
			diff := d.Location - existing.Location
			if diff < 0 {
				diff = -diff
			}
			if diff < dedupDistance && d.Date.Equal(existing.Date) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, d)
		}
	}
	return kept
}
