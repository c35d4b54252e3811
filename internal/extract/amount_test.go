package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountGrandTotalWins(t *testing.T) {
	text := `subtotal: 100.00
tax: 54.06
$500.00 deposit held
grand total: 154.06`

	got := Amount(text)
	require.NotNil(t, got)
	assert.Equal(t, "154.06", got.String())
}

func TestAmountTotalWithCurrencySymbol(t *testing.T) {
	got := Amount("total $154.06")
	require.NotNil(t, got)
	assert.Equal(t, "154.06", got.String())
}

func TestAmountFromWords(t *testing.T) {
	got := Amount("in words: six thousand nine hundred rupees only")
	require.NotNil(t, got)
	assert.Equal(t, "6900", got.String())
}

func TestAmountLargestGenericFallback(t *testing.T) {
	got := Amount("$12.50 service charge\n$1,234.56 due")
	require.NotNil(t, got)
	assert.Equal(t, "1234.56", got.String())
}

func TestAmountNone(t *testing.T) {
	assert.Nil(t, Amount("no figures on this page"))
}

func TestTaxSumsGSTComponents(t *testing.T) {
	text := `cgst amt: 2563.92
sgst amt: 2563.92`

	got := Tax(text)
	require.NotNil(t, got)
	assert.Equal(t, "5127.84", got.String())
}

func TestTaxGenericPattern(t *testing.T) {
	got := Tax("vat 13% 59,696.00")
	require.NotNil(t, got)
	assert.Equal(t, "59696", got.String())
}

func TestSubtotal(t *testing.T) {
	got := Subtotal("sub-total: 1,500.00")
	require.NotNil(t, got)
	assert.Equal(t, "1500", got.String())
}

func TestWordsToNumber(t *testing.T) {
	cases := map[string]string{
		"six thousand nine hundred":          "6900",
		"one lakh twenty five thousand":      "125000",
		"rupees two hundred fifty only":      "250",
		"thousand":                           "1000",
		"seventy seven":                      "77",
	}
	for in, want := range cases {
		got, ok := wordsToNumber(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got.String(), "input %q", in)
	}

	_, ok := wordsToNumber("gibberish text")
	assert.False(t, ok)
}
