// Package nepali converts Bikram Sambat (BS) calendar dates to their
// Gregorian equivalents. Coverage is limited to BS years 2070-2100, the
// range the date normalizer reinterprets as BS; the month lengths are
// table data (the BS calendar is observational, not computed).
package nepali

import (
	"fmt"
	"time"
)

// MinYear and MaxYear bound the supported BS year range.
const (
	MinYear = 2070
	MaxYear = 2100
)

// epoch anchors BS 2070-01-01 to its Gregorian date.
var epoch = time.Date(2013, time.April, 14, 0, 0, 0, 0, time.UTC)

// monthDays[y-MinYear][m-1] is the length of month m in BS year y.
var monthDays = [...][12]int{
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2070
	{31, 31, 32, 31, 31, 31, 29, 30, 30, 29, 30, 30}, // 2071
	{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2072
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2073
	{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2074
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2075
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2076
	{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 31}, // 2077
	{31, 31, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}, // 2078
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2079
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2080
	{31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2081
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2082
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2083
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2084
	{31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2085
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2086
	{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2087
	{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2088
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2089
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2090
	{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2091
	{30, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2092
	{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2093
	{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2094
	{31, 31, 32, 31, 31, 31, 30, 29, 30, 30, 30, 30}, // 2095
	{30, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2096
	{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2097
	{31, 31, 32, 31, 31, 31, 29, 30, 29, 30, 29, 31}, // 2098
	{31, 31, 32, 31, 31, 31, 30, 29, 29, 30, 30, 30}, // 2099
	{31, 32, 31, 32, 30, 31, 30, 29, 30, 29, 30, 30}, // 2100
}

// ToGregorian converts a BS date to the corresponding Gregorian date.
func ToGregorian(year, month, day int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("nepali: year %d outside supported range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("nepali: invalid month %d", month)
	}
	days := monthDays[year-MinYear]
	if day < 1 || day > days[month-1] {
		return time.Time{}, fmt.Errorf("nepali: invalid day %d for %d-%02d", day, year, month)
	}

	offset := 0
	for y := MinYear; y < year; y++ {
		for _, d := range monthDays[y-MinYear] {
			offset += d
		}
	}
	for m := 1; m < month; m++ {
		offset += days[m-1]
	}
	offset += day - 1

	return epoch.AddDate(0, 0, offset), nil
}

// IsBSYear reports whether a parsed calendar year should be reinterpreted
// as Bikram Sambat. Gregorian years in this numeric range cannot occur
// on a present-day document, so any bill carrying one is a BS date.
func IsBSYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}
