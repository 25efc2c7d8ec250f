package pipeline

import (
	"strconv"
	"strings"

	"github.com/tolu-akinola/paystub-tracker/constants"
	"github.com/tolu-akinola/paystub-tracker/internal/format"
)

// forwardFillYTD walks the batch in record order and, for every YTD field,
// fills gaps with the last seen value: a line item with no activity this
// period still has its accumulated balance. A YTD series that decreases is
// reported but never rewritten.
func (p *Pipeline) forwardFillYTD(records []format.LabeledRecord) {
	seen := make(map[string]struct{})
	var fields []string
	for _, lr := range records {
		for _, k := range lr.Record.Keys() {
			if !strings.HasSuffix(k, constants.YTDSuffix) {
				continue
			}
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				fields = append(fields, k)
			}
		}
	}

	for _, field := range fields {
		last := ""
		lastVal := 0.0
		for _, lr := range records {
			cur, ok := lr.Record.Get(field)
			if !ok || strings.TrimSpace(cur) == "" {
				if last != "" {
					lr.Record.Set(field, last)
				}
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(cur, ",", ""), 64)
			if err != nil {
				continue
			}
			if last != "" && v < lastVal-0.01 {
				p.Logger.Warn("pipeline.ytd.decrease",
					"field", field, "from", lastVal, "to", v, "source", lr.Label)
			}
			last, lastVal = cur, v
		}
	}
}
