// Package paystub reconstructs the semantic fields of an ADP-style paystub
// from its recovered plain text. The source layout is columnar; once
// linearized, every field family is located independently by a recognition
// rule keyed to label text, so a malformed section never disturbs the rest.
package paystub

import (
	"log/slog"
	"strings"

	"github.com/tolu-akinola/paystub-tracker/internal/entity"
)

// Extractor applies a fixed rule set to one document's text. It is pure and
// total: it performs no I/O and never returns an error — fields whose rules
// find no match are simply absent from the result.
type Extractor struct {
	rules  []Rule
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger, rules ...Rule) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Extractor{rules: rules, logger: logger}
}

// Extract produces the ordered field mapping for one document. Empty or
// whitespace-only input yields an empty record; the caller decides whether
// zero extracted fields is reportable.
func (e *Extractor) Extract(text string) *entity.Record {
	rec := entity.NewRecord()
	if strings.TrimSpace(text) == "" {
		return rec
	}
	for _, r := range e.rules {
		before := rec.Len()
		r.Extract(text, rec)
		e.logger.Debug("extract.rule", "rule", r.Name(), "fields", rec.Len()-before)
	}
	return rec
}
