package constants

import "strings"

// FieldCategory tags a recognized field family on a paystub.
type FieldCategory string

const (
	CategoryDate          FieldCategory = "Date"
	CategoryEarnings      FieldCategory = "Earnings"
	CategoryTaxableWages  FieldCategory = "TaxableWages"
	CategoryDeductions    FieldCategory = "Deductions"
	CategoryOtherBenefits FieldCategory = "OtherBenefits"
)

// Field name prefixes as they appear in extracted records, e.g.
// "Earnings Regular" or "Deductions Federal Income Tax YTD".
const (
	PrefixEarnings      = "Earnings "
	PrefixDeductions    = "Deductions "
	PrefixOtherBenefits = "Other Benefits "
)

// YTDSuffix marks the year-to-date facet of a field.
const YTDSuffix = " YTD"

// Scalar field names.
const (
	FieldPayDate            = "Pay Date"
	FieldPayPeriodBeginning = "Pay Period Beginning"
	FieldPayPeriodEnding    = "Pay Period Ending"
	FieldTaxableWages       = "Taxable Wages This Period"
	FieldSourceFile         = "Source File"
)

// dateFields in their canonical output order.
var dateFields = []string{FieldPayDate, FieldPayPeriodBeginning, FieldPayPeriodEnding}

// DateFieldRank returns the position of a date-category field, or -1.
func DateFieldRank(name string) int {
	for i, f := range dateFields {
		if name == f {
			return i
		}
	}
	return -1
}

// ClassifyField maps an extracted field name back to its category.
// The boolean reports whether the name carries the YTD suffix.
func ClassifyField(name string) (FieldCategory, bool, bool) {
	ytd := strings.HasSuffix(name, YTDSuffix)
	base := strings.TrimSuffix(name, YTDSuffix)
	switch {
	case DateFieldRank(base) >= 0:
		return CategoryDate, ytd, true
	case base == FieldTaxableWages:
		return CategoryTaxableWages, ytd, true
	case strings.HasPrefix(base, PrefixEarnings):
		return CategoryEarnings, ytd, true
	case strings.HasPrefix(base, PrefixDeductions):
		return CategoryDeductions, ytd, true
	case strings.HasPrefix(base, PrefixOtherBenefits):
		return CategoryOtherBenefits, ytd, true
	}
	return "", ytd, false
}
