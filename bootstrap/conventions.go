package bootstrap

// conventionBook is a closed, compile-time table mapping ISO currency codes
// to their BasisConvention. It is never mutated after init and holds no
// pointers, so it is safe to share across concurrent bootstrap calls without
// coordination.
var conventionBook = map[string]BasisConvention{
	"USD": {Currency: "USD", DayCount: "ACT/360", Compounding: CompoundSemiAnnual, PaymentFrequency: 2},
	"EUR": {Currency: "EUR", DayCount: "ACT/360", Compounding: CompoundAnnual, PaymentFrequency: 1},
	"GBP": {Currency: "GBP", DayCount: "ACT/365", Compounding: CompoundSemiAnnual, PaymentFrequency: 2},
	"CHF": {Currency: "CHF", DayCount: "ACT/360", Compounding: CompoundAnnual, PaymentFrequency: 1},
	"JPY": {Currency: "JPY", DayCount: "ACT/365", Compounding: CompoundSemiAnnual, PaymentFrequency: 2},
	"CAD": {Currency: "CAD", DayCount: "ACT/365", Compounding: CompoundSemiAnnual, PaymentFrequency: 2},
	"SGD": {Currency: "SGD", DayCount: "ACT/365", Compounding: CompoundSemiAnnual, PaymentFrequency: 2},
}

// GetConvention returns the BasisConvention for a currency. An unknown or
// empty currency code silently falls back to the USD convention; no error
// is raised, per the core's closed-tag error-handling policy.
func GetConvention(currency string) BasisConvention {
	if conv, ok := conventionBook[currency]; ok {
		return conv
	}
	return conventionBook["USD"]
}
