package precision

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundedValue returns the value a point is compared by.
//
// The display string is the series' value rounded to its reporting
// precision; two readings that display alike must tie, so it wins over the
// stored value. The stored value is used when no display is recorded. The
// second result is false for gaps and unparseable displays.
func RoundedValue(display string, value decimal.NullDecimal) (decimal.Decimal, bool) {
	display = strings.TrimSpace(display)
	if display != "" {
		d, err := decimal.NewFromString(strings.ReplaceAll(display, ",", ""))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	}
	if !value.Valid {
		return decimal.Decimal{}, false
	}
	return value.Decimal, true
}

// Display renders v the way a series with the given number of decimal places
// would display it. Negative places leave v unrounded.
func Display(v decimal.Decimal, places int32) string {
	if places < 0 {
		return v.String()
	}
	return v.StringFixed(places)
}
