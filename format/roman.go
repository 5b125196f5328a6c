package format

import "strconv"

var romanMonths = [...]string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// RomanMonth returns the roman numeral used in LP numbers for a month
// 1..12. Out-of-range input echoes the decimal number, matching how the
// LP segment degrades rather than failing.
func RomanMonth(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return romanMonths[month-1]
}
