package paystub

import (
	"regexp"
	"strings"

	"github.com/tolu-akinola/paystub-tracker/constants"
	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

// Rule recognizes one field family in a paystub's recovered text. Rules are
// independent: a rule that finds nothing sets nothing, and no rule ever
// fails.
type Rule interface {
	Name() string
	Extract(text string, rec *entity.Record)
}

// DefaultRules returns the full rule set in record-insertion order.
func DefaultRules() []Rule {
	return []Rule{
		&dateRule{name: "pay-period-beginning", field: constants.FieldPayPeriodBeginning,
			re: regexp.MustCompile(`(?i)Period Beginning:?\s*(\d{1,2}/\d{1,2}/\d{4})`)},
		&dateRule{name: "pay-period-ending", field: constants.FieldPayPeriodEnding,
			re: regexp.MustCompile(`(?i)Period Ending:?\s*(\d{1,2}/\d{1,2}/\d{4})`)},
		&dateRule{name: "pay-date", field: constants.FieldPayDate,
			re: regexp.MustCompile(`(?i)Pay Date:?\s*(\d{1,2}/\d{1,2}/\d{4})`)},
		&earningsRule{},
		&deductionsRule{},
		&taxableWagesRule{},
		&otherBenefitsRule{},
	}
}

// dateRule matches a scalar date field via its anchor phrase.
type dateRule struct {
	name  string
	field string
	re    *regexp.Regexp
}

func (r *dateRule) Name() string { return r.name }

func (r *dateRule) Extract(text string, rec *entity.Record) {
	if m := r.re.FindStringSubmatch(text); m != nil {
		rec.Set(r.field, m[1])
	}
}

// earningsRule parses the Earnings table. The section opens with the
// "rate hours this period year to date" header row. Regular rows carry
// rate and hours before the this-period and YTD cells; stock-grant style
// rows carry the two cells only, and zero-activity rows carry YTD only.
type earningsRule struct{}

func (r *earningsRule) Name() string { return "earnings" }

func (r *earningsRule) Extract(text string, rec *entity.Record) {
	in := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !in {
			if strings.Contains(lower, "rate") && strings.Contains(lower, "hours") &&
				strings.Contains(lower, "this period") {
				in = true
			}
			continue
		}
		if containsAny(line, "Gross Pay", "Federal Income Tax", "Deductions", "Net Check") {
			break
		}
		label, amounts, ok := splitRow(line)
		if !ok || isSummaryLabel(label) {
			continue
		}
		name := constants.PrefixEarnings + label
		switch {
		case len(amounts) >= 4:
			// rate and hours come first; skip them
			rec.Set(name, amounts[2])
			rec.Set(name+constants.YTDSuffix, amounts[3])
		case len(amounts) == 3:
			// hours, this period, YTD (no rate column)
			rec.Set(name, amounts[1])
			rec.Set(name+constants.YTDSuffix, amounts[2])
		case len(amounts) == 2:
			rec.Set(name, amounts[0])
			rec.Set(name+constants.YTDSuffix, amounts[1])
		case len(amounts) == 1:
			// this-period cell blank; the lone value is the YTD balance
			rec.Set(name+constants.YTDSuffix, amounts[0])
		}
	}
}

// deductionsRule parses deduction rows under the Deductions heading. The
// this-period cell always renders with a leading '-' in the output; the YTD
// cell is kept as printed. A row with a single amount is a zero-activity
// line item whose value is the YTD balance.
type deductionsRule struct{}

func (r *deductionsRule) Name() string { return "deductions" }

func (r *deductionsRule) Extract(text string, rec *entity.Record) {
	in := false
	for _, line := range strings.Split(text, "\n") {
		if !in {
			if strings.Contains(line, "Deductions") {
				in = true
			}
			continue
		}
		if containsAny(line, "Other Benefits", "Net Pay", "Net Check", "Important Notes") ||
			strings.Contains(strings.ToLower(line), "federal taxable wages") {
			break
		}
		label, amounts, ok := splitRow(line)
		if !ok || isSummaryLabel(label) {
			continue
		}
		name := constants.PrefixDeductions + label
		switch {
		case len(amounts) >= 2:
			rec.Set(name, ensureNegative(amounts[0]))
			rec.Set(name+constants.YTDSuffix, amounts[1])
		case len(amounts) == 1:
			rec.Set(name+constants.YTDSuffix, amounts[0])
		}
	}
}

// taxableWagesRule matches the "federal taxable wages this period" sentence.
// The amount follows "are" on the same line, trails a '$' on the same line,
// or sits on one of the next few lines after a '$'.
type taxableWagesRule struct{}

func (r *taxableWagesRule) Name() string { return "taxable-wages" }

func (r *taxableWagesRule) Extract(text string, rec *entity.Record) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "federal taxable wages this period") {
			continue
		}
		// Index into lower, slice lower: ToLower can change byte length, so an
		// index found in lower must not be applied to line. Amount characters
		// are case-stable, so scanning the lowered text loses nothing.
		if idx := strings.Index(lower, " are "); idx >= 0 {
			if v, ok := firstAmount(lower[idx+5:]); ok {
				rec.Set(constants.FieldTaxableWages, v)
				return
			}
		}
		if idx := strings.LastIndex(line, "$"); idx >= 0 {
			if v, ok := firstAmount(line[idx+1:]); ok {
				rec.Set(constants.FieldTaxableWages, v)
				return
			}
		}
		for j := i + 1; j < len(lines) && j < i+4; j++ {
			if idx := strings.LastIndex(lines[j], "$"); idx >= 0 {
				if v, ok := firstAmount(lines[j][idx+1:]); ok {
					rec.Set(constants.FieldTaxableWages, v)
					return
				}
			}
		}
		return
	}
}

// otherBenefitsRule parses the "Other Benefits and Information" table. Rows
// there carry no reliable this-period/YTD split; each row that yields a
// label and at least one amount contributes its first amount, and any other
// row shape is ignored.
type otherBenefitsRule struct{}

func (r *otherBenefitsRule) Name() string { return "other-benefits" }

func (r *otherBenefitsRule) Extract(text string, rec *entity.Record) {
	in := false
	for _, line := range strings.Split(text, "\n") {
		if !in {
			if strings.Contains(line, "Other Benefits and") {
				in = true
			}
			continue
		}
		if containsAny(line, "Important Notes", "Basis of pay") {
			break
		}
		label, amounts, ok := splitRow(line)
		if !ok || isSummaryLabel(label) {
			continue
		}
		rec.Set(constants.PrefixOtherBenefits+label, amounts[0])
	}
}

// isSummaryLabel filters totals rows that share the tabular shape of line
// items but are not fields themselves.
func isSummaryLabel(label string) bool {
	switch label {
	case "Net Pay", "Net Check", "Gross Pay", "Total":
		return true
	}
	return false
}

func ensureNegative(v string) string {
	if strings.HasPrefix(v, "-") {
		return v
	}
	return "-" + v
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
