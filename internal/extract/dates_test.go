package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymd(t *testing.T, got interface{ Format(string) string }) string {
	t.Helper()
	return got.Format("2006-01-02")
}

func TestParseDateSeparatorFormats(t *testing.T) {
	cases := map[string]string{
		"11/02/2019":      "2019-02-11", // day first
		"10-01-25":        "2025-01-10",
		"2024-04-15":      "2024-04-15",
		"January 5, 2024": "2024-01-05",
		"Jan 5 2024":      "2024-01-05",
		"JANUARY 5, 2024": "2024-01-05", // OCR frequently upper-cases
		"JAN 5 2024":      "2024-01-05",
		"january 5, 2024": "2024-01-05",
	}
	for in, want := range cases {
		got := ParseDate(in)
		require.NotNil(t, got, "input %q", in)
		assert.Equal(t, want, ymd(t, got), "input %q", in)
	}
}

func TestParseDateDigitRuns(t *testing.T) {
	// OCR dropped the separators entirely.
	got := ParseDate("04152024")
	require.NotNil(t, got)
	assert.Equal(t, "2024-04-15", ymd(t, got))

	// Day-first reading when month-first is impossible.
	got = ParseDate("25122023")
	require.NotNil(t, got)
	assert.Equal(t, "2023-12-25", ymd(t, got))

	// Ten digits: stray OCR token between day and year.
	got = ParseDate("0415372024")
	require.NotNil(t, got)
	assert.Equal(t, "2024-04-15", ymd(t, got))
}

func TestParseDateBikramSambat(t *testing.T) {
	// A four-digit year in the BS range is a Nepali calendar date.
	got := ParseDate("2081-01-01")
	require.NotNil(t, got)
	assert.Equal(t, "2024-04-13", ymd(t, got))

	// Two-digit year "81" means BS 2081, not 1981.
	got = ParseDate("01-01-81")
	require.NotNil(t, got)
	assert.Equal(t, "2024-04-13", ymd(t, got))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
	assert.Nil(t, ParseDate("99/99/2024"))
	assert.Nil(t, ParseDate("1234"))
}

func TestDateFindsLabeledDate(t *testing.T) {
	text := `TAX INVOICE
Invoice Date : 11/02/2019
Due Date : 11/03/2019`

	got := Date(text)
	require.NotNil(t, got)
	assert.Equal(t, "2019-02-11", ymd(t, got))
}

func TestDateFindsUpperCaseMonthName(t *testing.T) {
	text := `INVOICE
DATE: JANUARY 5, 2024
TOTAL $10.00`

	got := Date(text)
	require.NotNil(t, got)
	assert.Equal(t, "2024-01-05", ymd(t, got))
}
