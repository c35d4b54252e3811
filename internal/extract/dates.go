package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hisabkitab/bills-tracker/internal/nepali"
)

// dateLayouts is tried in order against a candidate string. Day-first
// layouts come before month-first ones, matching the regional convention
// of the bills this parser sees.
var dateLayouts = []string{
	"02-01-06",
	"02/01/06",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"01-02-2006",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var digitRun = regexp.MustCompile(`\d+`)

var alphaWord = regexp.MustCompile(`[A-Za-z]+`)

// canonicalMonthCase rewrites "JANUARY"/"january" as "January" so the
// month-name layouts can parse them; time.Parse is case-sensitive.
func canonicalMonthCase(s string) string {
	return alphaWord.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}

// ParseDate normalizes a raw date string captured by OCR into a calendar
// date. It handles runs of digits where OCR dropped the separators,
// two-digit years, and Bikram Sambat dates, which are converted to their
// Gregorian equivalent. Returns nil when nothing parseable is found.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if t := parseDigitRun(s); t != nil {
		return t
	}

	cleaned := canonicalMonthCase(strings.Join(strings.Fields(s), " "))
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		return normalizeYear(t)
	}
	return nil
}

// parseDigitRun reconstructs dates whose separators OCR dropped, e.g.
// "04152024" or "0415372024" (a stray token between day and year).
func parseDigitRun(s string) *time.Time {
	if digitRun.ReplaceAllString(s, "") != "" {
		return nil
	}
	run := s

	switch len(run) {
	case 10:
		// MMDD??YYYY with two junk digits, then MMDDYY + 4-digit year tail.
		if t := buildDate(run[6:10], run[0:2], run[2:4]); t != nil {
			return t
		}
		return buildDate(run[4:8], run[0:2], run[2:4])
	case 8:
		// MMDDYYYY first, then DDMMYYYY.
		if t := buildDate(run[4:8], run[0:2], run[2:4]); t != nil {
			return t
		}
		return buildDate(run[4:8], run[2:4], run[0:2])
	default:
		return nil
	}
}

func buildDate(yearS, monthS, dayS string) *time.Time {
	year, _ := strconv.Atoi(yearS)
	month, _ := strconv.Atoi(monthS)
	day, _ := strconv.Atoi(dayS)
	return makeDate(year, month, day)
}

// makeDate validates the components and applies BS conversion for years
// in the Bikram Sambat range.
func makeDate(year, month, day int) *time.Time {
	if month < 1 || month > 12 || day < 1 || day > 32 {
		return nil
	}
	if nepali.IsBSYear(year) {
		t, err := nepali.ToGregorian(year, month, day)
		if err != nil {
			return nil
		}
		return &t
	}
	if year < 1990 || year > 2099 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject overflow like Feb 30 rolling into March.
	if t.Day() != day || int(t.Month()) != month {
		return nil
	}
	return &t
}

// normalizeYear fixes two-digit years that Go's "06" layout maps into
// 1969-1999: a bill dated "81" means BS 2081, not 1981. Dates already in
// the BS range are converted.
func normalizeYear(t time.Time) *time.Time {
	year := t.Year()
	if year >= 1969 && year <= 1999 {
		year += 100
	}
	return makeDate(year, int(t.Month()), t.Day())
}
