package nepali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGregorianNewYearDays(t *testing.T) {
	cases := []struct {
		year, month, day int
		want             string
	}{
		{2070, 1, 1, "2013-04-14"},
		{2077, 1, 1, "2020-04-13"},
		{2080, 1, 1, "2023-04-14"},
		{2081, 1, 1, "2024-04-13"},
	}
	for _, tc := range cases {
		got, err := ToGregorian(tc.year, tc.month, tc.day)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "BS %d-%02d-%02d", tc.year, tc.month, tc.day)
	}
}

func TestToGregorianMidYear(t *testing.T) {
	// BS 2081-01-15 is 14 days after the 2081 new year.
	got, err := ToGregorian(2081, 1, 15)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-27", got.Format("2006-01-02"))

	// First day of month 2 follows the 31-day first month of 2081.
	got, err = ToGregorian(2081, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestToGregorianRejectsOutOfRange(t *testing.T) {
	_, err := ToGregorian(2069, 1, 1)
	assert.Error(t, err)

	_, err = ToGregorian(2101, 1, 1)
	assert.Error(t, err)

	_, err = ToGregorian(2081, 13, 1)
	assert.Error(t, err)

	// Month 1 of BS 2081 has 31 days.
	_, err = ToGregorian(2081, 1, 32)
	assert.Error(t, err)
}

func TestIsBSYear(t *testing.T) {
	assert.True(t, IsBSYear(2070))
	assert.True(t, IsBSYear(2081))
	assert.True(t, IsBSYear(2100))
	assert.False(t, IsBSYear(2026))
	assert.False(t, IsBSYear(2101))
}
