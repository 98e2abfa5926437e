package models

import "strings"

// minorUnits maps ISO-4217 currency codes that do not use the common two
// decimal places to their number of minor units. Currencies absent from the
// map use the default of 2.
var minorUnits = map[string]int32{
	"BHD": 3,
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"IQD": 3,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KMF": 0,
	"KRW": 0,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"PYG": 0,
	"RWF": 0,
	"TND": 3,
	"UGX": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,
}

// CurrencyMinorUnits returns the number of decimal places used when
// formatting amounts in the given currency.
func CurrencyMinorUnits(code string) int32 {
	if units, ok := minorUnits[strings.ToUpper(code)]; ok {
		return units
	}
	return 2
}

// IsValidCurrencyCode reports whether the code looks like an ISO-4217
// alphabetic currency code. Only the shape is checked here; whether rates
// exist for the currency is a data question, not a validation one.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
