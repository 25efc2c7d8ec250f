package format

import (
	"sort"
	"strings"

	"github.com/tolu-akinola/paystub-tracker/constants"
)

// Canonical output ordering: date fields first, then Earnings, Taxable
// Wages, Deductions and Other Benefits (alphabetical within each), then
// every category's YTD counterparts in the same relative order, then any
// field outside the table, alphabetically. Pure output policy — extraction
// never consults it.

var categoryRank = map[constants.FieldCategory]int{
	constants.CategoryDate:          0,
	constants.CategoryEarnings:      1,
	constants.CategoryTaxableWages:  2,
	constants.CategoryDeductions:    3,
	constants.CategoryOtherBenefits: 4,
}

type sortKey struct {
	block int // 0 = known this-period, 1 = known YTD, 2 = uncovered
	cat   int
	date  int // position within the date category
	label string
}

func keyFor(name string) sortKey {
	cat, ytd, known := constants.ClassifyField(name)
	if !known {
		return sortKey{block: 2, label: name}
	}
	k := sortKey{cat: categoryRank[cat], label: strings.TrimSuffix(name, constants.YTDSuffix)}
	if ytd {
		k.block = 1
	}
	if cat == constants.CategoryDate {
		k.date = constants.DateFieldRank(k.label)
	}
	return k
}

func (a sortKey) less(b sortKey) bool {
	if a.block != b.block {
		return a.block < b.block
	}
	if a.block == 2 {
		return a.label < b.label
	}
	if a.cat != b.cat {
		return a.cat < b.cat
	}
	if a.date != b.date {
		return a.date < b.date
	}
	return a.label < b.label
}

// OrderFields sorts field names into the canonical output order.
func OrderFields(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	keys := make(map[string]sortKey, len(out))
	for _, n := range out {
		keys[n] = keyFor(n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keys[out[i]].less(keys[out[j]])
	})
	return out
}
